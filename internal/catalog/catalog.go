// Package catalog implements the item lifecycle: adding pending items,
// importing their metadata from BoardGameGeek and serving reads.
package catalog

import (
	"context"
	"fmt"
	"time"

	"homecatalog/internal/config"
	"homecatalog/pkg/bgg"
	"homecatalog/pkg/domain"
	"homecatalog/pkg/serrors"
	"homecatalog/pkg/storage"
)

// linkKinds maps BGG link types to tag kinds. Link types outside this map
// (implementations, integrations and so on) are not turned into tags.
var linkKinds = map[string]domain.TagKind{
	"boardgamepublisher": domain.TagKindPublisher,
	"boardgameartist":    domain.TagKindArtist,
	"boardgamedesigner":  domain.TagKindDesigner,
	"boardgamecategory":  domain.TagKindCategory,
	"boardgamemechanic":  domain.TagKindMechanic,
	"boardgamefamily":    domain.TagKindFamily,
}

// Options configure how import jobs are enqueued and how results are cached.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker
	// should make when importing a thing before marking its items failed.
	MaxAttempts int
	// ResultCacheTTL is the duration during which an active import makes new
	// items for the same BGG id reuse its details instead of enqueueing a
	// duplicate job.
	ResultCacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:    cfg.Catalog.MaxAttempts,
		ResultCacheTTL: cfg.Catalog.ResultCacheTTL,
	}
}

// catalog is the concrete implementation of the Catalog interface. It
// coordinates persistence with the storage layer, job enqueueing and the BGG
// client.
type catalog struct {
	options Options
	storage storage.Storage
	bgg     bgg.Client
}

// Add stores a new pending item for the given BGG id and user, and attempts
// to enqueue a background job to import it. If a recent active import exists
// for the same id (within ResultCacheTTL), the new item is immediately
// activated with those details.
func (c catalog) Add(ctx context.Context, userID domain.UserID, bggID int64) (*domain.Item, error) {
	if bggID <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "bgg id must be positive")
	}

	var item *domain.Item
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreItems(ctx, domain.Item{
			UserID: userID,
			BGGID:  bggID,
			Status: domain.ItemStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store item: %w", err)
		}
		item = &res[0]

		jobAdded, err := tx.AddJob(ctx, ImportJobArgs{
			BGGID:           bggID,
			maxAttempts:     c.options.MaxAttempts,
			uniqueJobPeriod: c.options.ResultCacheTTL,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		// if a job was not added, another job already exists for this BGG id.
		// river unique jobs prevent duplicate jobs for the same id.
		if !jobAdded {
			// if the existing job already completed, reuse its details for
			// the new item
			last, err := tx.LastActiveItemByBGGID(ctx, bggID)
			if err != nil {
				return fmt.Errorf("could not get last active item: %w", err)
			}

			if last != nil {
				updated, err := tx.UpdateItemByID(ctx, item.ID, storage.ItemUpdates{
					Status:  domain.ItemStatusActive,
					Details: &last.Details,
				})
				if err != nil {
					return fmt.Errorf("could not update item: %w", err)
				}
				if err := c.copyTags(ctx, tx, last.ID, item.ID); err != nil {
					return err
				}
				item = updated
			} // else: the job is in the queue and will be processed soon.
			// The job activates all pending items for the id upon completion.
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not add item: %w", err)
	}

	return item, nil
}

// copyTags links the tags of a source item to a destination item.
func (c catalog) copyTags(ctx context.Context, tx storage.AllStorage, from, to domain.ItemID) error {
	tags, err := tx.ItemTags(ctx, from)
	if err != nil {
		return fmt.Errorf("could not get source item tags: %w", err)
	}
	ids := make([]domain.TagID, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	if err := tx.LinkItemTags(ctx, to, ids...); err != nil {
		return fmt.Errorf("could not link item tags: %w", err)
	}

	return nil
}

// Items returns a page of items for the given user filtered by status.
// It supports cursor-based pagination using an RFC3339 timestamp string and
// returns the next cursor when more results are available.
func (c catalog) Items(ctx context.Context,
	userID domain.UserID,
	status domain.ItemStatus,
	cursor string,
	limit uint) ([]domain.Item, string, error) {
	if status != "" && !status.Valid() {
		return nil, "", serrors.With(serrors.ErrBadRequest, "invalid item status")
	}

	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := c.storage.UserItems(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user items: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Items, next, nil
}

// Item fetches a single item by ID for the given user together with its
// tags. It returns a not-found error when no matching item exists.
func (c catalog) Item(ctx context.Context,
	userID domain.UserID,
	itemID domain.ItemID) (*domain.Item, []domain.Tag, error) {
	item, err := c.storage.ItemByID(ctx, userID, itemID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get item: %w", err)
	}
	if item == nil {
		return nil, nil, serrors.With(serrors.ErrNotFound, "item not found")
	}

	tags, err := c.storage.ItemTags(ctx, itemID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get item tags: %w", err)
	}

	return item, tags, nil
}

// Delete removes an item belonging to the given user. If the item does not
// exist, a not-found error is returned. Jobs are not cancelled here because
// other pending items may still depend on the same BGG id job.
func (c catalog) Delete(ctx context.Context, userID domain.UserID, itemID domain.ItemID) error {
	res, err := c.storage.DeleteItem(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("could not delete item: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "item not found")
	}

	// we don't delete jobs from the queue here because there might be other
	// items depending on the job. the job worker makes sure there are still
	// pending items for the BGG id before processing.

	return nil
}

// Tags browses the global tag taxonomy. An empty kind lists every taxonomy;
// a non-empty kind must be valid.
func (c catalog) Tags(ctx context.Context, kind domain.TagKind, limit uint) ([]domain.Tag, error) {
	if kind != "" && !kind.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid tag kind")
	}

	tags, err := c.storage.Tags(ctx, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get tags: %w", err)
	}

	return tags, nil
}

// detailsFromThing derives the stored item details from a fetched thing.
func detailsFromThing(thing *bgg.Thing) domain.ItemDetails {
	return domain.ItemDetails{
		Type:            thing.Type,
		Name:            thing.PrimaryName(),
		AltNames:        thing.AltNames(),
		Description:     thing.Description,
		Thumbnail:       thing.Thumbnail,
		Image:           thing.Image,
		YearPublished:   thing.YearPublished,
		MinPlayers:      thing.MinPlayers,
		MaxPlayers:      thing.MaxPlayers,
		PlayingTime:     thing.PlayingTime,
		MinPlayTime:     thing.MinPlayTime,
		MinAge:          thing.MinAge,
		BestPlayerCount: thing.BestPlayerCount(),
		Rank:            thing.Rank,
	}
}

// tagsFromThing maps the thing's links to taxonomy tags, skipping link types
// that have no tag kind.
func tagsFromThing(thing *bgg.Thing) []domain.Tag {
	var tags []domain.Tag
	for _, link := range thing.Links {
		kind, ok := linkKinds[link.Type]
		if !ok {
			continue
		}
		tags = append(tags, domain.Tag{
			Kind:  kind,
			Name:  link.Value,
			BGGID: link.ID,
		})
	}

	return tags
}

// Import fetches a thing from BGG and activates all pending items for its id
// with the derived details and tags. When no pending items remain (all were
// deleted or completed by result reuse) the import is skipped without
// touching BGG.
func (c catalog) Import(ctx context.Context, bggID int64) error {
	pending, err := c.storage.PendingItemCountByBGGID(ctx, bggID)
	if err != nil {
		return fmt.Errorf("could not count pending items: %w", err)
	}
	if pending == 0 {
		return nil
	}

	thing, err := c.bgg.Thing(ctx, bggID)
	if err != nil {
		return fmt.Errorf("could not fetch thing %d: %w", bggID, err)
	}

	details := detailsFromThing(thing)

	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		items, err := tx.UpdatePendingItemsByBGGID(ctx, bggID, storage.ItemUpdates{
			Status:  domain.ItemStatusActive,
			Details: &details,
		})
		if err != nil {
			return fmt.Errorf("could not activate pending items: %w", err)
		}
		if len(items) == 0 {
			return nil
		}

		tags, err := tx.UpsertTags(ctx, tagsFromThing(thing)...)
		if err != nil {
			return fmt.Errorf("could not upsert tags: %w", err)
		}
		tagIDs := make([]domain.TagID, 0, len(tags))
		for _, tag := range tags {
			tagIDs = append(tagIDs, tag.ID)
		}

		for _, item := range items {
			if err := tx.LinkItemTags(ctx, item.ID, tagIDs...); err != nil {
				return fmt.Errorf("could not link item tags: %w", err)
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not import thing %d: %w", bggID, err)
	}

	return nil
}

// Fail records an import failure for all pending items of the BGG id. Items
// only move to failed once their attempt count reaches MaxAttempts; before
// that the failure is recorded on the item and it stays pending for the next
// retry.
func (c catalog) Fail(ctx context.Context, bggID int64, cause string) error {
	_, err := c.storage.UpdatePendingItemsByBGGID(ctx, bggID, storage.ItemUpdates{
		Status:      domain.ItemStatusFailed,
		LastError:   &cause,
		MaxAttempts: c.options.MaxAttempts,
	})
	if err != nil {
		return fmt.Errorf("could not fail pending items: %w", err)
	}

	return nil
}

// New creates a new Catalog instance backed by the provided storage and BGG
// client, configured with the given options.
func New(storage storage.Storage, bggClient bgg.Client, options Options) Catalog {
	return &catalog{
		options: options,
		storage: storage,
		bgg:     bggClient,
	}
}
