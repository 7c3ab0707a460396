package postgres_test

import (
	"context"
	"testing"

	"homecatalog/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_UpsertTags_DeduplicatesByKindAndName(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	first, err := pg.UpsertTags(ctx,
		domain.Tag{Kind: domain.TagKindPublisher, Name: "Iello", BGGID: 8923},
		domain.Tag{Kind: domain.TagKindCategory, Name: "Animals", BGGID: 1089},
	)
	require.NoError(t, err)
	require.Len(t, first, 2)
	for _, tag := range first {
		require.NotEqual(t, uuid.Nil, uuid.UUID(tag.ID))
	}

	// upserting the same publisher again returns the existing row
	second, err := pg.UpsertTags(ctx,
		domain.Tag{Kind: domain.TagKindPublisher, Name: "Iello", BGGID: 8923},
		domain.Tag{Kind: domain.TagKindMechanic, Name: "Set Collection", BGGID: 2004},
	)
	require.NoError(t, err)
	require.Len(t, second, 2)
	require.Equal(t, first[0].ID, second[0].ID)
	require.NotEqual(t, first[1].ID, second[1].ID)

	// same name under a different kind is a distinct tag
	third, err := pg.UpsertTags(ctx,
		domain.Tag{Kind: domain.TagKindFamily, Name: "Animals", BGGID: 1},
	)
	require.NoError(t, err)
	require.Len(t, third, 1)
	require.NotEqual(t, first[1].ID, third[0].ID)
}

func TestPgSQL_UpsertTags_DuplicateInput(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// distinct designers can share a display name, producing duplicate
	// (kind, name) pairs in one call; the statement must not fail and both
	// positions must resolve to the same row
	tags, err := pg.UpsertTags(ctx,
		domain.Tag{Kind: domain.TagKindDesigner, Name: "Michael Schacht", BGGID: 86},
		domain.Tag{Kind: domain.TagKindDesigner, Name: "Michael Schacht", BGGID: 104587},
		domain.Tag{Kind: domain.TagKindPublisher, Name: "Abacus", BGGID: 12},
	)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	require.Equal(t, tags[0].ID, tags[1].ID)
	require.NotEqual(t, tags[0].ID, tags[2].ID)
}

func TestPgSQL_LinkItemTags_AndItemTags(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	item := storeOne(t, pg, newPendingItem(domain.UserID(uuid.New()), 191004))
	tags, err := pg.UpsertTags(ctx,
		domain.Tag{Kind: domain.TagKindPublisher, Name: "Iello", BGGID: 8923},
		domain.Tag{Kind: domain.TagKindArtist, Name: "Paul Mafayon", BGGID: 77226},
		domain.Tag{Kind: domain.TagKindCategory, Name: "Animals", BGGID: 1089},
	)
	require.NoError(t, err)

	ids := []domain.TagID{tags[0].ID, tags[1].ID, tags[2].ID}
	require.NoError(t, pg.LinkItemTags(ctx, item.ID, ids...))
	// linking again must be a no-op
	require.NoError(t, pg.LinkItemTags(ctx, item.ID, ids...))

	got, err := pg.ItemTags(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// ordered by kind then name
	require.Equal(t, domain.TagKindArtist, got[0].Kind)
	require.Equal(t, domain.TagKindCategory, got[1].Kind)
	require.Equal(t, domain.TagKindPublisher, got[2].Kind)
}

func TestPgSQL_Tags_ListingAndKindFilter(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	_, err := pg.UpsertTags(ctx,
		domain.Tag{Kind: domain.TagKindMechanic, Name: "Worker Placement", BGGID: 2082},
		domain.Tag{Kind: domain.TagKindMechanic, Name: "Area Majority", BGGID: 2080},
		domain.Tag{Kind: domain.TagKindPublisher, Name: "Stonemaier Games", BGGID: 23202},
	)
	require.NoError(t, err)

	all, err := pg.Tags(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, all, 3)

	mechanics, err := pg.Tags(ctx, domain.TagKindMechanic, 10)
	require.NoError(t, err)
	require.Len(t, mechanics, 2)
	require.Equal(t, "Area Majority", mechanics[0].Name)
	require.Equal(t, "Worker Placement", mechanics[1].Name)

	limited, err := pg.Tags(ctx, domain.TagKindMechanic, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}
