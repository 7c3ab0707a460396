// Package bggxml provides a bgg.Client implementation backed by the public
// BoardGameGeek XML API 2.
package bggxml

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"homecatalog/pkg/bgg"
	"homecatalog/pkg/domain"
	"homecatalog/pkg/serrors"
)

// DefaultBaseURL is the public BGG XML API 2 endpoint.
const DefaultBaseURL = "https://boardgamegeek.com/xmlapi2"

// Client talks to the BGG XML API 2 and fulfills the bgg.Client interface.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to BGG
	baseURL    string       // baseURL without trailing slash
}

// xmlItems mirrors the <items> envelope of a /thing response.
// https://boardgamegeek.com/wiki/page/BGG_XML_API2
type xmlItems struct {
	XMLName xml.Name  `xml:"items"`
	Items   []xmlItem `xml:"item"`
}

type xmlItem struct {
	Type        string    `xml:"type,attr"`
	ID          int64     `xml:"id,attr"`
	Thumbnail   string    `xml:"thumbnail"`
	Image       string    `xml:"image"`
	Description string    `xml:"description"`
	Names       []xmlName `xml:"name"`

	YearPublished xmlValue `xml:"yearpublished"`
	MinPlayers    xmlValue `xml:"minplayers"`
	MaxPlayers    xmlValue `xml:"maxplayers"`
	PlayingTime   xmlValue `xml:"playingtime"`
	MinPlayTime   xmlValue `xml:"minplaytime"`
	MinAge        xmlValue `xml:"minage"`

	Links []xmlLink `xml:"link"`
	Polls []xmlPoll `xml:"poll"`
	Ranks []xmlRank `xml:"statistics>ratings>ranks>rank"`
}

type xmlName struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

// xmlValue covers the <tag value="N"/> elements BGG uses for scalars.
type xmlValue struct {
	Value int `xml:"value,attr"`
}

type xmlLink struct {
	Type  string `xml:"type,attr"`
	ID    int64  `xml:"id,attr"`
	Value string `xml:"value,attr"`
}

type xmlPoll struct {
	Name       string          `xml:"name,attr"`
	Title      string          `xml:"title,attr"`
	TotalVotes int             `xml:"totalvotes,attr"`
	Options    []xmlPollOption `xml:"results"`
}

type xmlPollOption struct {
	NumPlayers string          `xml:"numplayers,attr"`
	Results    []xmlPollResult `xml:"result"`
}

type xmlPollResult struct {
	Value    string `xml:"value,attr"`
	NumVotes int    `xml:"numvotes,attr"`
}

// xmlRank's value attribute is "Not Ranked" for unranked things, hence the
// string type and tolerant parsing.
type xmlRank struct {
	Type  string `xml:"type,attr"`
	ID    int64  `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// Thing fetches a thing (with stats) by id and converts it to the bgg model.
// BGG answers 202 when the request has been queued server-side; that maps to
// serrors.ErrUnavailable so callers retry later. 429 maps to ErrRateLimited
// and an empty item list to ErrNotFound.
func (c *Client) Thing(ctx context.Context, id int64) (*bgg.Thing, error) {
	url := fmt.Sprintf("%s/thing?id=%d&stats=1", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusAccepted {
		return nil, serrors.With(serrors.ErrUnavailable, "bgg queued the request, retry later")
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "bgg rate limited the request")
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("thing request failed with status %d", resp.StatusCode)
	}

	things, err := ParseThings(b)
	if err != nil {
		return nil, err
	}
	if len(things) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, "thing %d not found", id)
	}

	return &things[0], nil
}

// ParseThings decodes a /thing response body into validated things.
func ParseThings(body []byte) ([]bgg.Thing, error) {
	var envelope xmlItems
	if err := xml.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("could not decode things xml: %w", err)
	}

	things := make([]bgg.Thing, 0, len(envelope.Items))
	for i := range envelope.Items {
		thing, err := envelope.Items[i].toThing()
		if err != nil {
			return nil, err
		}

		things = append(things, *thing)
	}

	return things, nil
}

func (item *xmlItem) toThing() (*bgg.Thing, error) {
	thingType := domain.ThingType(item.Type)
	if !thingType.Valid() {
		return nil, fmt.Errorf("thing %d has unknown type %q", item.ID, item.Type)
	}
	if len(item.Names) == 0 {
		return nil, fmt.Errorf("thing %d has no names", item.ID)
	}
	if year := item.YearPublished.Value; year > time.Now().UTC().Year() {
		return nil, fmt.Errorf("thing %d published in the future: %d", item.ID, year)
	}

	thing := bgg.Thing{
		ID:   item.ID,
		Type: thingType,

		Description: item.Description,
		Thumbnail:   item.Thumbnail,
		Image:       item.Image,

		YearPublished: item.YearPublished.Value,
		MinPlayers:    item.MinPlayers.Value,
		MaxPlayers:    item.MaxPlayers.Value,
		PlayingTime:   item.PlayingTime.Value,
		MinPlayTime:   item.MinPlayTime.Value,
		MinAge:        item.MinAge.Value,
		Rank:          overallRank(item.Ranks),
	}

	for _, name := range item.Names {
		thing.Names = append(thing.Names, bgg.Name{
			Type:  bgg.NameType(name.Type),
			Value: name.Value,
		})
	}
	for _, link := range item.Links {
		thing.Links = append(thing.Links, bgg.Link{
			ID:    link.ID,
			Type:  link.Type,
			Value: link.Value,
		})
	}
	for _, poll := range item.Polls {
		p := bgg.Poll{
			Name:       poll.Name,
			Title:      poll.Title,
			TotalVotes: poll.TotalVotes,
		}
		for _, option := range poll.Options {
			o := bgg.PollOption{NumPlayers: option.NumPlayers}
			for _, result := range option.Results {
				o.Results = append(o.Results, bgg.PollResult{
					Value:    result.Value,
					NumVotes: result.NumVotes,
				})
			}
			p.Options = append(p.Options, o)
		}
		thing.Polls = append(thing.Polls, p)
	}

	return &thing, nil
}

// overallRank picks the subtype rank, which BGG publishes as the overall
// rank of the thing; family ranks are skipped and "Not Ranked" yields 0.
func overallRank(ranks []xmlRank) int {
	for _, rank := range ranks {
		if rank.Type != "subtype" {
			continue
		}
		if n, err := strconv.Atoi(rank.Value); err == nil {
			return n
		}
	}

	return 0
}

// Ensure Client conforms to the bgg.Client interface at compile time.
var _ bgg.Client = (*Client)(nil)

// New constructs a Client using the provided http.Client. An empty baseURL
// selects DefaultBaseURL.
func New(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}
