package domain

import "github.com/google/uuid"

// UserID uniquely identifies a catalog owner. The service does not manage
// users itself; IDs arrive as JWT subjects issued by an external identity
// provider.
type UserID uuid.UUID

// String returns the canonical UUID form of the id.
func (id UserID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the id as its canonical UUID string.
func (id UserID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText parses a canonical UUID string.
func (id *UserID) UnmarshalText(text []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(text)
}
