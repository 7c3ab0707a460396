package postgres

import (
	"context"
	"fmt"

	"homecatalog/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	tagsTable     = "tags"
	itemTagsTable = "item_tags"
)

// UpsertTags inserts the given tags and returns the canonical rows in input
// order. Conflicts on (kind, name) reuse the existing row; bgg_id is refreshed
// so the conflicting rows appear in RETURNING. Duplicate (kind, name) inputs
// collapse to one inserted row, otherwise ON CONFLICT DO UPDATE would touch
// the same row twice within a single statement and Postgres rejects that.
func (p *PgSQL) UpsertTags(ctx context.Context, tags ...domain.Tag) ([]domain.Tag, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(tags))
	pgTags := make([]PgTag, 0, len(tags))
	for _, tag := range tags {
		key := string(tag.Kind) + "\x00" + tag.Name
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		var row PgTag
		row.FromDomain(tag)
		pgTags = append(pgTags, row)
	}

	var rows []PgTag
	if err := p.Builder.Insert(tagsTable).
		Rows(pgTags).
		OnConflict(goqu.DoUpdate("kind, name", goqu.Record{
			"bgg_id": goqu.L("excluded.bgg_id"),
		})).
		Returning(&PgTag{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not upsert tags into pg: %w", err)
	}

	// RETURNING order is not guaranteed, map rows back to input order
	byKey := make(map[string]PgTag, len(rows))
	for _, row := range rows {
		byKey[row.Kind+"\x00"+row.Name] = row
	}

	out := make([]domain.Tag, 0, len(tags))
	for _, tag := range tags {
		row, ok := byKey[string(tag.Kind)+"\x00"+tag.Name]
		if !ok {
			return nil, fmt.Errorf("upsert did not return tag %q/%q", tag.Kind, tag.Name)
		}

		out = append(out, row.ToDomain())
	}

	return out, nil
}

// LinkItemTags attaches tags to an item, ignoring links that already exist.
func (p *PgSQL) LinkItemTags(ctx context.Context, itemID domain.ItemID, tagIDs ...domain.TagID) error {
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]goqu.Record, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, goqu.Record{
			"item_id": uuid.UUID(itemID),
			"tag_id":  uuid.UUID(tagID),
		})
	}

	if _, err := p.Builder.Insert(itemTagsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not link item tags in pg: %w", err)
	}

	return nil
}

// ItemTags returns the tags attached to an item ordered by kind then name.
func (p *PgSQL) ItemTags(ctx context.Context, itemID domain.ItemID) ([]domain.Tag, error) {
	var rows []PgTag
	if err := p.Builder.From(tagsTable).
		Select(goqu.I("tags.id"), goqu.I("tags.kind"), goqu.I("tags.name"), goqu.I("tags.bgg_id")).
		Join(goqu.T(itemTagsTable), goqu.On(goqu.I("item_tags.tag_id").Eq(goqu.I("tags.id")))).
		Where(goqu.I("item_tags.item_id").Eq(uuid.UUID(itemID))).
		Order(goqu.I("tags.kind").Asc(), goqu.I("tags.name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch item tags from pg: %w", err)
	}

	return pgTagsToDomain(rows), nil
}

// Tags lists the taxonomy, optionally filtered by kind, ordered by name.
func (p *PgSQL) Tags(ctx context.Context, kind domain.TagKind, limit uint) ([]domain.Tag, error) {
	ds := p.Builder.From(tagsTable).
		Order(goqu.I("name").Asc()).
		Limit(limit)
	if kind != "" {
		ds = ds.Where(goqu.I("kind").Eq(string(kind)))
	}

	var rows []PgTag
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tags from pg: %w", err)
	}

	return pgTagsToDomain(rows), nil
}
