package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemID uniquely identifies a catalog item.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ItemID uuid.UUID

// String returns the canonical UUID form of the id.
func (id ItemID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the id as its canonical UUID string so the type keeps
// uuid's text representation in JSON.
func (id ItemID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText parses a canonical UUID string.
func (id *ItemID) UnmarshalText(text []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(text)
}

// ItemStatus represents the lifecycle state of a catalog item.
type ItemStatus string

const (
	// ItemStatusPending indicates the item has been added but its metadata has
	// not been imported from BoardGameGeek yet.
	ItemStatusPending ItemStatus = "PENDING"
	// ItemStatusActive indicates the import finished and Details is populated.
	ItemStatusActive ItemStatus = "ACTIVE"
	// ItemStatusFailed indicates the import gave up; see LastError and Attempts.
	ItemStatusFailed ItemStatus = "FAILED"
)

// Valid reports whether s is one of the known item statuses.
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusPending, ItemStatusActive, ItemStatusFailed:
		return true
	}

	return false
}

// ThingType classifies a BoardGameGeek thing.
type ThingType string

const (
	ThingTypeBoardGame          ThingType = "boardgame"
	ThingTypeBoardGameAccessory ThingType = "boardgameaccessory"
	ThingTypeBoardGameExpansion ThingType = "boardgameexpansion"
	ThingTypeRPGIssue           ThingType = "rpgissue"
	ThingTypeRPGItem            ThingType = "rpgitem"
	ThingTypeVideoGame          ThingType = "videogame"
)

// Valid reports whether t is one of the known thing types.
func (t ThingType) Valid() bool {
	switch t {
	case ThingTypeBoardGame, ThingTypeBoardGameAccessory, ThingTypeBoardGameExpansion,
		ThingTypeRPGIssue, ThingTypeRPGItem, ThingTypeVideoGame:
		return true
	}

	return false
}

// ItemDetails holds the metadata imported for an item from the
// BoardGameGeek XML API. All fields are optional except Type and Name;
// zero numeric values mean "not published by BGG".
type ItemDetails struct {
	Type        ThingType `json:"type,omitempty"`
	Name        string    `json:"name,omitempty"`
	AltNames    []string  `json:"altNames,omitempty"`
	Description string    `json:"description,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Image       string    `json:"image,omitempty"`

	YearPublished int `json:"yearPublished,omitempty"`
	MinPlayers    int `json:"minPlayers,omitempty"`
	MaxPlayers    int `json:"maxPlayers,omitempty"`
	PlayingTime   int `json:"playingTime,omitempty"`
	MinPlayTime   int `json:"minPlayTime,omitempty"`
	MinAge        int `json:"minAge,omitempty"`

	// BestPlayerCount is derived from the community "suggested_numplayers"
	// poll: the player count with the most "Best" votes.
	BestPlayerCount int `json:"bestPlayerCount,omitempty"`
	// Rank is the overall BGG rank of the thing, 0 when unranked.
	Rank int `json:"rank,omitempty"`
}

// Item represents a single catalog entry and its current state.
type Item struct {
	// ID is the unique identifier of the item.
	ID ItemID `json:"id"`
	// UserID is the identifier of the user who owns the item.
	UserID UserID `json:"userId"`

	// BGGID is the BoardGameGeek thing id the item was added by.
	BGGID int64 `json:"bggId"`
	// Status is the current lifecycle state of the item.
	Status ItemStatus `json:"status"`
	// Details contains the imported metadata; zero value while pending.
	Details ItemDetails `json:"details"`

	// Attempts is the number of import attempts made for this item.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent import error message, if any.
	LastError string `json:"-"`

	// CreatedAt is the time when the item was added to the catalog.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the item was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the item was soft-deleted; zero value means live.
	DeletedAt time.Time `json:"-"`
}
