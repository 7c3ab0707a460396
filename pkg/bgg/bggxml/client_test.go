package bggxml_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"homecatalog/pkg/bgg"
	"homecatalog/pkg/bgg/bggxml"
	"homecatalog/pkg/domain"
	"homecatalog/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// bunniesXML is a trimmed /thing response used across these tests.
const bunniesXML = `<?xml version="1.0" encoding="utf-8"?>
<items termsofuse="https://boardgamegeek.com/xmlapi/termsofuse">
  <item type="boardgame" id="191004">
    <thumbnail>https://cf.geekdo-images.com/thumb/bunny.jpg</thumbnail>
    <image>https://cf.geekdo-images.com/original/bunny.jpg</image>
    <name type="primary" sortindex="1" value="Bunny Kingdom"/>
    <name type="alternate" sortindex="1" value="Королевство кроликов"/>
    <description>Rabbits conquer a new world.</description>
    <yearpublished value="2017"/>
    <minplayers value="2"/>
    <maxplayers value="4"/>
    <poll name="suggested_numplayers" title="User Suggested Number of Players" totalvotes="59">
      <results numplayers="2">
        <result value="Best" numvotes="7"/>
        <result value="Recommended" numvotes="31"/>
        <result value="Not Recommended" numvotes="12"/>
      </results>
      <results numplayers="3">
        <result value="Best" numvotes="20"/>
        <result value="Recommended" numvotes="25"/>
        <result value="Not Recommended" numvotes="1"/>
      </results>
      <results numplayers="4+">
        <result value="Best" numvotes="18"/>
        <result value="Recommended" numvotes="16"/>
        <result value="Not Recommended" numvotes="3"/>
      </results>
    </poll>
    <playingtime value="60"/>
    <minplaytime value="40"/>
    <minage value="12"/>
    <link type="boardgamecategory" id="1002" value="Card Game"/>
    <link type="boardgamemechanic" id="2041" value="Card Drafting"/>
    <link type="boardgamedesigner" id="9714" value="Richard Garfield"/>
    <link type="boardgamepublisher" id="157" value="iello"/>
    <link type="boardgameexpansion" id="63306" value="Bunny Kingdom: Spider Bunny Promo Card"/>
    <statistics page="1">
      <ratings>
        <ranks>
          <rank type="subtype" id="1" name="boardgame" friendlyname="Board Game Rank" value="385"/>
        </ranks>
      </ratings>
    </statistics>
  </item>
</items>`

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *bggxml.Client {
	return bggxml.New(&http.Client{Transport: fn}, "")
}

func xmlResponse(status int, body string) *http.Response {
	h := http.Header{}
	h.Set("Content-Type", "text/xml; charset=utf-8")

	return &http.Response{
		StatusCode: status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestParseThings(t *testing.T) {
	things, err := bggxml.ParseThings([]byte(bunniesXML))
	require.NoError(t, err)
	require.Len(t, things, 1)

	thing := things[0]
	require.Equal(t, int64(191004), thing.ID)
	require.Equal(t, domain.ThingTypeBoardGame, thing.Type)
	require.Equal(t, "Bunny Kingdom", thing.PrimaryName())
	require.Equal(t, []string{"Королевство кроликов"}, thing.AltNames())
	require.Equal(t, 2017, thing.YearPublished)
	require.Equal(t, 2, thing.MinPlayers)
	require.Equal(t, 4, thing.MaxPlayers)
	require.Equal(t, 60, thing.PlayingTime)
	require.Equal(t, 40, thing.MinPlayTime)
	require.Equal(t, 12, thing.MinAge)
	require.Equal(t, 385, thing.Rank)
}

func TestParseThings_RankSkipsFamilyRanks(t *testing.T) {
	// a family rank listed before the subtype rank must not win, even when
	// it shares the "boardgame" name
	body := strings.Replace(bunniesXML,
		`<rank type="subtype" id="1" name="boardgame" friendlyname="Board Game Rank" value="385"/>`,
		`<rank type="family" id="5497" name="boardgame" friendlyname="Strategy Game Rank" value="7"/>
          <rank type="subtype" id="1" name="boardgame" friendlyname="Board Game Rank" value="385"/>`, 1)

	things, err := bggxml.ParseThings([]byte(body))
	require.NoError(t, err)
	require.Equal(t, 385, things[0].Rank)
}

func TestParseThings_PollsAndLinks(t *testing.T) {
	things, err := bggxml.ParseThings([]byte(bunniesXML))
	require.NoError(t, err)
	thing := things[0]

	poll, ok := thing.Polls.Get("name__iequal", bgg.SuggestedNumPlayersPoll)
	require.True(t, ok)
	require.Equal(t, 59, poll.TotalVotes)
	require.Len(t, poll.Options, 3)

	// three best votes buckets: 7, 20, 18 -> three players wins
	require.Equal(t, 3, thing.BestPlayerCount())

	promo, ok := thing.Links.Get("id", int64(63306))
	require.True(t, ok)
	require.True(t, strings.HasSuffix(promo.Value, "Spider Bunny Promo Card"))

	require.Len(t, thing.Links.Filter("type", "boardgamecategory"), 1)
}

func TestParseThings_Invalid(t *testing.T) {
	t.Run("future year", func(t *testing.T) {
		body := strings.Replace(bunniesXML, `<yearpublished value="2017"/>`, `<yearpublished value="3017"/>`, 1)
		_, err := bggxml.ParseThings([]byte(body))
		require.Error(t, err)
		require.Contains(t, err.Error(), "future")
	})

	t.Run("unknown type", func(t *testing.T) {
		body := strings.Replace(bunniesXML, `type="boardgame" id=`, `type="lawnmower" id=`, 1)
		_, err := bggxml.ParseThings([]byte(body))
		require.Error(t, err)
	})

	t.Run("no names", func(t *testing.T) {
		body := strings.ReplaceAll(bunniesXML, `<name type="primary" sortindex="1" value="Bunny Kingdom"/>`, "")
		body = strings.ReplaceAll(body, `<name type="alternate" sortindex="1" value="Королевство кроликов"/>`, "")
		_, err := bggxml.ParseThings([]byte(body))
		require.Error(t, err)
	})

	t.Run("not xml", func(t *testing.T) {
		_, err := bggxml.ParseThings([]byte("{}"))
		require.Error(t, err)
	})
}

func TestClient_Thing_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "boardgamegeek.com", r.URL.Host)
		require.Equal(t, "/xmlapi2/thing", r.URL.Path)
		require.Equal(t, "191004", r.URL.Query().Get("id"))
		require.Equal(t, "1", r.URL.Query().Get("stats"))

		return xmlResponse(http.StatusOK, bunniesXML), nil
	})

	thing, err := c.Thing(context.Background(), 191004)
	require.NoError(t, err)
	require.Equal(t, "Bunny Kingdom", thing.PrimaryName())
}

func TestClient_Thing_queued202(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return xmlResponse(http.StatusAccepted, ""), nil
	})

	_, err := c.Thing(context.Background(), 191004)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestClient_Thing_rateLimited429(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return xmlResponse(http.StatusTooManyRequests, "slow down"), nil
	})

	_, err := c.Thing(context.Background(), 191004)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_Thing_notFound(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return xmlResponse(http.StatusOK, `<items termsofuse="https://boardgamegeek.com/xmlapi/termsofuse"></items>`), nil
	})

	_, err := c.Thing(context.Background(), 999999999)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestClient_Thing_non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return xmlResponse(http.StatusBadGateway, "upstream bad"), nil
	})

	_, err := c.Thing(context.Background(), 191004)
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
}
