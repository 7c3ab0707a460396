package storage

import (
	"context"

	"homecatalog/pkg/domain"
)

// TagStorage defines operations on the global tag taxonomy and its links to
// items. Tags are deduplicated by (kind, name).
type TagStorage interface {
	// UpsertTags inserts the given tags, reusing existing rows on (kind, name)
	// conflicts, and returns the canonical rows in input order.
	UpsertTags(ctx context.Context, tags ...domain.Tag) ([]domain.Tag, error)
	// LinkItemTags attaches tags to an item, ignoring already-present links.
	LinkItemTags(ctx context.Context, itemID domain.ItemID, tagIDs ...domain.TagID) error
	// ItemTags returns the tags attached to an item ordered by kind then name.
	ItemTags(ctx context.Context, itemID domain.ItemID) ([]domain.Tag, error)
	// Tags lists the taxonomy, optionally filtered by kind, ordered by name and
	// limited by limit.
	Tags(ctx context.Context, kind domain.TagKind, limit uint) ([]domain.Tag, error)
}
