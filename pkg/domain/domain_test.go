package domain_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"homecatalog/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIDsEncodeAsUUIDStrings(t *testing.T) {
	itemID := uuid.New()
	userID := uuid.New()

	raw, err := json.Marshal(domain.Item{
		ID:     domain.ItemID(itemID),
		UserID: domain.UserID(userID),
		BGGID:  191004,
		Status: domain.ItemStatusPending,
	})
	require.NoError(t, err)

	// ids must be canonical uuid strings, not [16]byte arrays
	require.Contains(t, string(raw), fmt.Sprintf(`"id":%q`, itemID.String()))
	require.Contains(t, string(raw), fmt.Sprintf(`"userId":%q`, userID.String()))

	var decoded domain.Item
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, domain.ItemID(itemID), decoded.ID)
	require.Equal(t, domain.UserID(userID), decoded.UserID)
}

func TestTagIDEncodesAsUUIDString(t *testing.T) {
	tagID := uuid.New()

	raw, err := json.Marshal(domain.Tag{
		ID:   domain.TagID(tagID),
		Kind: domain.TagKindMechanic,
		Name: "Worker Placement",
	})
	require.NoError(t, err)
	require.Contains(t, string(raw), fmt.Sprintf(`"id":%q`, tagID.String()))

	var decoded domain.Tag
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, domain.TagID(tagID), decoded.ID)
}

func TestIDUnmarshalRejectsGarbage(t *testing.T) {
	var item domain.Item
	err := json.Unmarshal([]byte(`{"id":"not-a-uuid"}`), &item)
	require.Error(t, err)
}
