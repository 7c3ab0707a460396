package postgres_test

import (
	"context"
	"testing"
	"time"

	"homecatalog/pkg/domain"
	"homecatalog/pkg/storage"
	"homecatalog/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newPendingItem(userID domain.UserID, bggID int64) domain.Item {
	return domain.Item{
		UserID: userID,
		BGGID:  bggID,
		Status: domain.ItemStatusPending,
	}
}

func storeOne(t *testing.T, pg *postgres.PgSQL, item domain.Item) domain.Item {
	t.Helper()
	stored, err := pg.StoreItems(context.Background(), item)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	return stored[0]
}

func TestPgSQL_StoreItems_AndItemByID(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	stored := storeOne(t, pg, newPendingItem(userID, 191004))
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
	require.Equal(t, userID, stored.UserID)
	require.Equal(t, int64(191004), stored.BGGID)
	require.Equal(t, domain.ItemStatusPending, stored.Status)
	require.Zero(t, stored.Attempts)
	require.False(t, stored.CreatedAt.IsZero())

	got, err := pg.ItemByID(ctx, userID, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored.ID, got.ID)

	// not visible to another user
	got, err = pg.ItemByID(ctx, domain.UserID(uuid.New()), stored.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_UpdatePendingItemsByBGGID_Activates(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// two users waiting on the same thing, plus an unrelated pending item
	a := storeOne(t, pg, newPendingItem(domain.UserID(uuid.New()), 191004))
	b := storeOne(t, pg, newPendingItem(domain.UserID(uuid.New()), 191004))
	other := storeOne(t, pg, newPendingItem(domain.UserID(uuid.New()), 266192))

	details := domain.ItemDetails{
		Type:          domain.ThingTypeBoardGame,
		Name:          "Bunny Kingdom",
		YearPublished: 2017,
	}
	updated, err := pg.UpdatePendingItemsByBGGID(ctx, 191004, storage.ItemUpdates{
		Status:  domain.ItemStatusActive,
		Details: &details,
	})
	require.NoError(t, err)
	require.Len(t, updated, 2)
	for _, item := range updated {
		require.Contains(t, []domain.ItemID{a.ID, b.ID}, item.ID)
		require.Equal(t, domain.ItemStatusActive, item.Status)
		require.Equal(t, "Bunny Kingdom", item.Details.Name)
		require.Equal(t, uint(1), item.Attempts)
	}

	// the unrelated item is untouched
	count, err := pg.PendingItemCountByBGGID(ctx, 266192)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
	got, err := pg.ItemByID(ctx, other.UserID, other.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ItemStatusPending, got.Status)
}

func TestPgSQL_UpdatePendingItemsByBGGID_MaxAttemptsGuard(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	storeOne(t, pg, newPendingItem(domain.UserID(uuid.New()), 822))

	lastError := "bgg: rate limited"
	fail := storage.ItemUpdates{
		Status:      domain.ItemStatusFailed,
		LastError:   &lastError,
		MaxAttempts: 2,
	}

	// first failure only bumps attempts, item stays pending
	updated, err := pg.UpdatePendingItemsByBGGID(ctx, 822, fail)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	require.Equal(t, domain.ItemStatusPending, updated[0].Status)
	require.Equal(t, uint(1), updated[0].Attempts)
	require.Equal(t, lastError, updated[0].LastError)

	// second failure crosses the threshold
	updated, err = pg.UpdatePendingItemsByBGGID(ctx, 822, fail)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	require.Equal(t, domain.ItemStatusFailed, updated[0].Status)
	require.Equal(t, uint(2), updated[0].Attempts)

	// no pending items remain, further updates are no-ops
	count, err := pg.PendingItemCountByBGGID(ctx, 822)
	require.NoError(t, err)
	require.Zero(t, count)
	updated, err = pg.UpdatePendingItemsByBGGID(ctx, 822, fail)
	require.NoError(t, err)
	require.Empty(t, updated)
}

func TestPgSQL_UpdateItemByID(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	item := storeOne(t, pg, newPendingItem(domain.UserID(uuid.New()), 266192))

	details := domain.ItemDetails{Type: domain.ThingTypeBoardGame, Name: "Wingspan"}
	updated, err := pg.UpdateItemByID(ctx, item.ID, storage.ItemUpdates{
		Status:  domain.ItemStatusActive,
		Details: &details,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, domain.ItemStatusActive, updated.Status)
	require.Equal(t, "Wingspan", updated.Details.Name)
	require.False(t, updated.UpdatedAt.IsZero())

	// unknown id
	updated, err = pg.UpdateItemByID(ctx, domain.ItemID(uuid.New()), storage.ItemUpdates{
		Status: domain.ItemStatusActive,
	})
	require.NoError(t, err)
	require.Nil(t, updated)
}

func TestPgSQL_DeleteItem(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	item := storeOne(t, pg, newPendingItem(userID, 68448))

	// wrong user cannot delete
	deleted, err := pg.DeleteItem(ctx, domain.UserID(uuid.New()), item.ID)
	require.NoError(t, err)
	require.Nil(t, deleted)

	deleted, err = pg.DeleteItem(ctx, userID, item.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.False(t, deleted.DeletedAt.IsZero())

	// soft-deleted items disappear from reads and repeated deletes
	got, err := pg.ItemByID(ctx, userID, item.ID)
	require.NoError(t, err)
	require.Nil(t, got)
	deleted, err = pg.DeleteItem(ctx, userID, item.ID)
	require.NoError(t, err)
	require.Nil(t, deleted)
}

func TestPgSQL_UserItems_PaginationAndFilter(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	for i := int64(0); i < 5; i++ {
		storeOne(t, pg, newPendingItem(userID, 1000+i))
		// spread created_at so the cursor has distinct values
		time.Sleep(10 * time.Millisecond)
	}
	// another user's item must not leak into the listing
	storeOne(t, pg, newPendingItem(domain.UserID(uuid.New()), 9999))

	page, err := pg.UserItems(ctx, userID, "", time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.NotNil(t, page.NextCursor)
	require.Equal(t, int64(1004), page.Items[0].BGGID)
	require.Equal(t, int64(1003), page.Items[1].BGGID)

	page, err = pg.UserItems(ctx, userID, "", *page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.NotNil(t, page.NextCursor)
	require.Equal(t, int64(1002), page.Items[0].BGGID)

	page, err = pg.UserItems(ctx, userID, "", *page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Nil(t, page.NextCursor)
	require.Equal(t, int64(1000), page.Items[0].BGGID)

	// status filter
	_, err = pg.UpdatePendingItemsByBGGID(ctx, 1000, storage.ItemUpdates{
		Status:  domain.ItemStatusActive,
		Details: &domain.ItemDetails{Type: domain.ThingTypeBoardGame, Name: "x"},
	})
	require.NoError(t, err)
	page, err = pg.UserItems(ctx, userID, domain.ItemStatusActive, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, int64(1000), page.Items[0].BGGID)
}

func TestPgSQL_LastActiveItemByBGGID(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	got, err := pg.LastActiveItemByBGGID(ctx, 191004)
	require.NoError(t, err)
	require.Nil(t, got)

	storeOne(t, pg, newPendingItem(domain.UserID(uuid.New()), 191004))
	details := domain.ItemDetails{Type: domain.ThingTypeBoardGame, Name: "Bunny Kingdom"}
	_, err = pg.UpdatePendingItemsByBGGID(ctx, 191004, storage.ItemUpdates{
		Status:  domain.ItemStatusActive,
		Details: &details,
	})
	require.NoError(t, err)

	got, err = pg.LastActiveItemByBGGID(ctx, 191004)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.ItemStatusActive, got.Status)
	require.Equal(t, "Bunny Kingdom", got.Details.Name)
}
