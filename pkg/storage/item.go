package storage

import (
	"context"
	"time"

	"homecatalog/pkg/domain"
)

// ItemUpdates describes a set of optional fields applied to existing items
// during an update. Only non-nil fields are written.
type ItemUpdates struct {
	// Status is the new status to set.
	Status domain.ItemStatus
	// Details, when provided, replaces the stored imported metadata.
	Details *domain.ItemDetails
	// LastError, when provided, sets the last error text. An empty string
	// clears the column (sets NULL).
	LastError *string
	// MaxAttempts, when provided alongside a Failed status, ensures the status
	// only moves to Failed once the attempts after increment would exceed this
	// threshold. A value <= 0 disables the guard.
	MaxAttempts int
}

// UserItems groups a page of items returned for a user together with an
// optional NextCursor used for pagination.
type UserItems struct {
	// Items contains the current page of catalog items.
	Items []domain.Item
	// NextCursor points to the created_at timestamp to use as the cursor for
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// ItemStorage defines CRUD and query operations for catalog items.
// Implementations must exclude soft-deleted rows from every read.
type ItemStorage interface {
	// StoreItems inserts one or more items and returns the stored rows as they
	// exist in the database (including generated fields).
	StoreItems(ctx context.Context, items ...domain.Item) ([]domain.Item, error)
	// UpdatePendingItemsByBGGID updates every pending item for the given BGG id
	// and returns the updated rows.
	// Notes:
	// - Attempts is incremented by 1 and updated_at is set automatically.
	// - If Status is Failed and MaxAttempts > 0, status only moves to Failed
	//   when the attempts after increment would exceed MaxAttempts; otherwise
	//   it stays Pending.
	UpdatePendingItemsByBGGID(ctx context.Context, bggID int64, updates ItemUpdates) ([]domain.Item, error)
	// PendingItemCountByBGGID returns the number of pending items for the given
	// BGG id across all users.
	PendingItemCountByBGGID(ctx context.Context, bggID int64) (int64, error)
	// UpdateItemByID updates a single item and returns the updated row. Only
	// provided fields are changed; updated_at is set automatically.
	UpdateItemByID(ctx context.Context, id domain.ItemID, updates ItemUpdates) (*domain.Item, error)
	// DeleteItem performs a soft delete for the given item and user and returns
	// the deleted item, or nil when it was not found.
	DeleteItem(ctx context.Context, userID domain.UserID, id domain.ItemID) (*domain.Item, error)
	// UserItems returns a page of items for a user created before the optional
	// cursor time, limited by limit. A non-empty status filters the results.
	UserItems(ctx context.Context,
		userID domain.UserID,
		status domain.ItemStatus,
		cursor time.Time,
		limit uint) (UserItems, error)
	// ItemByID fetches an item by its ID for the given user. Returns nil when
	// not found.
	ItemByID(ctx context.Context, userID domain.UserID, id domain.ItemID) (*domain.Item, error)
	// LastActiveItemByBGGID returns the most recently imported active item for
	// a BGG id across all users, or nil when none exists. The catalog uses it
	// to reuse a finished import instead of fetching BGG again.
	LastActiveItemByBGGID(ctx context.Context, bggID int64) (*domain.Item, error)
}
