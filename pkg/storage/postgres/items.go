package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"homecatalog/pkg/domain"
	"homecatalog/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	itemsTable = "items"
)

func (p *PgSQL) StoreItems(ctx context.Context, items ...domain.Item) ([]domain.Item, error) {
	if len(items) == 0 {
		return nil, nil
	}

	pgItems, err := domainItemsToPg(items)
	if err != nil {
		return nil, err
	}

	var result []PgItem
	if err := p.Builder.Insert(itemsTable).
		Rows(pgItems).
		Returning(&PgItem{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store items into pg: %w", err)
	}

	return pgItemsToDomain(result)
}

// updatesRecord translates an ItemUpdates into a goqu record. Attempts is
// incremented and updated_at set on every update.
func updatesRecord(updates storage.ItemUpdates) (goqu.Record, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
		"status":     updates.Status,
	}
	if updates.Details != nil {
		b, err := json.Marshal(updates.Details)
		if err != nil {
			return nil, fmt.Errorf("could not marshal details: %w", err)
		}

		rec["details"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	return rec, nil
}

// UpdatePendingItemsByBGGID updates all pending items for the given BGG id
// with the provided fields and returns the updated rows. When moving to
// Failed with MaxAttempts > 0, status only changes once attempts would exceed
// the threshold; otherwise the row stays pending with just the attempt count
// bumped.
func (p *PgSQL) UpdatePendingItemsByBGGID(ctx context.Context,
	bggID int64,
	updates storage.ItemUpdates) ([]domain.Item, error) {
	rec, err := updatesRecord(updates)
	if err != nil {
		return nil, err
	}
	if updates.Status == domain.ItemStatusFailed && updates.MaxAttempts > 0 {
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts,
			string(domain.ItemStatusFailed))
	}

	var rows []PgItem
	if err := p.Builder.Update(itemsTable).
		Set(rec).Where(
		goqu.I("bgg_id").Eq(bggID),
		goqu.I("status").Eq(string(domain.ItemStatusPending)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgItem{}).Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not update pending items by bgg id in pg: %w", err)
	}

	return pgItemsToDomain(rows)
}

// PendingItemCountByBGGID counts live pending items for the given BGG id
// across all users.
func (p *PgSQL) PendingItemCountByBGGID(ctx context.Context, bggID int64) (int64, error) {
	count, err := p.Builder.From(itemsTable).
		Where(
			goqu.I("bgg_id").Eq(bggID),
			goqu.I("status").Eq(string(domain.ItemStatusPending)),
			goqu.I("deleted_at").IsNull(),
		).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending items by bgg id: %w", err)
	}

	return count, nil
}

// UpdateItemByID updates a single item, ignoring soft-deleted rows, and
// returns the updated row or nil when not found.
func (p *PgSQL) UpdateItemByID(ctx context.Context,
	id domain.ItemID,
	updates storage.ItemUpdates) (*domain.Item, error) {
	rec, err := updatesRecord(updates)
	if err != nil {
		return nil, err
	}

	var row PgItem
	found, err := p.Builder.Update(itemsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgItem{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update item by id in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteItem performs a soft delete by setting deleted_at for the given item
// id and user, returning the deleted record.
func (p *PgSQL) DeleteItem(ctx context.Context, userID domain.UserID, id domain.ItemID) (*domain.Item, error) {
	var row PgItem
	found, err := p.Builder.Update(itemsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgItem{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete item in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserItems returns a page of a user's items filtered by optional status and
// cursor, ordered by created_at DESC, id DESC, with a next cursor when more
// rows remain.
func (p *PgSQL) UserItems(ctx context.Context,
	userID domain.UserID,
	status domain.ItemStatus,
	cursor time.Time,
	limit uint) (storage.UserItems, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(itemsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgItem
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserItems{}, fmt.Errorf("could not fetch user items from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgItemsToDomain(rows)
	if err != nil {
		return storage.UserItems{}, err
	}

	return storage.UserItems{
		Items:      domainRows,
		NextCursor: nextCursor,
	}, nil
}

// ItemByID returns an item by its ID for the given user, excluding
// soft-deleted rows.
func (p *PgSQL) ItemByID(ctx context.Context, userID domain.UserID, id domain.ItemID) (*domain.Item, error) {
	var row PgItem
	found, err := p.Builder.From(itemsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch item by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LastActiveItemByBGGID returns the most recently updated active item for the
// given BGG id across all users, or nil when none exists.
func (p *PgSQL) LastActiveItemByBGGID(ctx context.Context, bggID int64) (*domain.Item, error) {
	var row PgItem
	found, err := p.Builder.From(itemsTable).
		Where(
			goqu.I("bgg_id").Eq(bggID),
			goqu.I("status").Eq(string(domain.ItemStatusActive)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("updated_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last active item by bgg id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
