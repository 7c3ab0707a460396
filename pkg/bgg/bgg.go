// Package bgg defines the BoardGameGeek thing model and the client
// abstraction used to fetch it. Implementations live in subpackages
// (bggxml talks to the public XML API 2).
package bgg

import (
	"context"
	"strconv"
	"strings"

	"homecatalog/pkg/domain"
	"homecatalog/pkg/lookup"
)

// NameType distinguishes the primary display name from alternates.
type NameType string

const (
	NameTypePrimary   NameType = "primary"
	NameTypeAlternate NameType = "alternate"
)

// Name is one of the names attached to a thing.
type Name struct {
	Type  NameType
	Value string
}

// Link relates a thing to another BGG entity: a publisher, an artist, a
// category and so on. Type carries the raw BGG link type string, e.g.
// "boardgamepublisher".
type Link struct {
	ID    int64
	Type  string
	Value string
}

// PollResult is a single answer bucket within a poll option.
type PollResult struct {
	Value    string
	NumVotes int
}

// PollOption groups the results for one option of a poll. NumPlayers is only
// set for the suggested_numplayers poll and may carry a trailing "+"
// ("4+" means four or more).
type PollOption struct {
	NumPlayers string
	Results    lookup.List[PollResult]
}

// Poll is a community poll attached to a thing.
type Poll struct {
	Name       string
	Title      string
	TotalVotes int
	Options    []PollOption
}

// SuggestedNumPlayersPoll is the poll name the catalog derives the best
// player count from.
const SuggestedNumPlayersPoll = "suggested_numplayers"

// Thing is a single BGG catalog entry with its names, links and polls.
type Thing struct {
	ID   int64
	Type domain.ThingType

	Names       lookup.List[Name]
	Description string
	Thumbnail   string
	Image       string

	YearPublished int
	MinPlayers    int
	MaxPlayers    int
	PlayingTime   int
	MinPlayTime   int
	MinAge        int
	Rank          int

	Links lookup.List[Link]
	Polls lookup.List[Poll]
}

// PrimaryName returns the thing's primary name, falling back to the first
// name when BGG marks none as primary.
func (t *Thing) PrimaryName() string {
	if name, ok := t.Names.Get("type", string(NameTypePrimary)); ok {
		return name.Value
	}
	if len(t.Names) > 0 {
		return t.Names[0].Value
	}

	return ""
}

// AltNames returns every non-primary name value.
func (t *Thing) AltNames() []string {
	var out []string
	for _, name := range t.Names.Exclude("type", string(NameTypePrimary)) {
		out = append(out, name.Value)
	}

	return out
}

// BestPlayerCount inspects the suggested_numplayers poll and returns the
// player count with the most "Best" votes, or 0 when the poll is missing or
// empty. Counts like "4+" resolve to their numeric prefix.
func (t *Thing) BestPlayerCount() int {
	poll, ok := t.Polls.Get("name", SuggestedNumPlayersPoll)
	if !ok {
		return 0
	}

	best, bestVotes := 0, 0
	for _, option := range poll.Options {
		result, ok := lookup.List[PollResult](option.Results).Get("value__iequal", "Best")
		if !ok {
			continue
		}

		count, err := strconv.Atoi(strings.TrimSuffix(option.NumPlayers, "+"))
		if err != nil {
			continue
		}
		if result.NumVotes > bestVotes {
			best, bestVotes = count, result.NumVotes
		}
	}

	return best
}

// Client is the abstraction for BGG metadata sources.
//
//go:generate mockgen -package mockbgg -source=bgg.go -destination=mock/mockbgg.go *
type Client interface {
	// Thing fetches a single thing by its BGG id.
	Thing(ctx context.Context, id int64) (*Thing, error)
}
