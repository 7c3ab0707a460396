package domain

import "github.com/google/uuid"

// TagID uniquely identifies a tag.
type TagID uuid.UUID

// String returns the canonical UUID form of the id.
func (id TagID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the id as its canonical UUID string.
func (id TagID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText parses a canonical UUID string.
func (id *TagID) UnmarshalText(text []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(text)
}

// TagKind names a taxonomy a tag belongs to. The kinds mirror the link
// families BoardGameGeek attaches to a thing.
type TagKind string

const (
	TagKindPublisher TagKind = "PUBLISHER"
	TagKindArtist    TagKind = "ARTIST"
	TagKindDesigner  TagKind = "DESIGNER"
	TagKindCategory  TagKind = "CATEGORY"
	TagKindMechanic  TagKind = "MECHANIC"
	TagKindFamily    TagKind = "FAMILY"
)

// Valid reports whether k is one of the known tag kinds.
func (k TagKind) Valid() bool {
	switch k {
	case TagKindPublisher, TagKindArtist, TagKindDesigner,
		TagKindCategory, TagKindMechanic, TagKindFamily:
		return true
	}

	return false
}

// Tag is a single taxonomy entry. Tags are global (not per user) and are
// deduplicated by (Kind, Name).
type Tag struct {
	// ID is the unique identifier of the tag.
	ID TagID `json:"id"`
	// Kind is the taxonomy the tag belongs to.
	Kind TagKind `json:"kind"`
	// Name is the display name, e.g. "Stonemaier Games".
	Name string `json:"name"`
	// BGGID is the id of the BGG link the tag was first seen on.
	BGGID int64 `json:"bggId,omitempty"`
}
