package catalog

import (
	"context"

	"homecatalog/pkg/domain"
)

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Catalog interface {
	// Add stores a new pending item for the given BGG id and enqueues its
	// import job. When a fresh import already exists the item is completed
	// immediately from the stored details.
	Add(ctx context.Context, userID domain.UserID, bggID int64) (*domain.Item, error)
	// Items returns a page of the user's items filtered by optional status,
	// along with the cursor for the next page.
	Items(ctx context.Context,
		userID domain.UserID,
		status domain.ItemStatus,
		cursor string,
		limit uint) ([]domain.Item, string, error)
	// Item fetches a single item with its tags.
	Item(ctx context.Context, userID domain.UserID, itemID domain.ItemID) (*domain.Item, []domain.Tag, error)
	// Delete soft-deletes an item belonging to the user.
	Delete(ctx context.Context, userID domain.UserID, itemID domain.ItemID) error
	// Tags browses the global tag taxonomy, optionally filtered by kind.
	Tags(ctx context.Context, kind domain.TagKind, limit uint) ([]domain.Tag, error)

	// Import runs the worker-side import for a BGG id: fetches the thing,
	// activates all pending items with the derived details and links tags.
	Import(ctx context.Context, bggID int64) error
	// Fail records a permanent import failure for all pending items of the
	// BGG id, honoring the MaxAttempts threshold.
	Fail(ctx context.Context, bggID int64, cause string) error
}
