package v1handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"homecatalog/internal/api/handler/v1handler"
	"homecatalog/pkg/domain"
	"homecatalog/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListTags(t *testing.T) {
	cat, _, do := newTestAPI(t)

	cat.EXPECT().Tags(gomock.Any(), domain.TagKindMechanic, uint(v1handler.DefaultLimit)).
		Return([]domain.Tag{
			{Kind: domain.TagKindMechanic, Name: "Area Majority"},
			{Kind: domain.TagKindMechanic, Name: "Worker Placement"},
		}, nil)

	rec := do(http.MethodGet, "/tags?kind=MECHANIC", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list v1handler.TagList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Tags, 2)
	require.Equal(t, "Area Majority", list.Tags[0].Name)
}

func TestListTags_InvalidKind(t *testing.T) {
	cat, _, do := newTestAPI(t)

	cat.EXPECT().Tags(gomock.Any(), domain.TagKind("GENRE"), uint(v1handler.DefaultLimit)).
		Return(nil, serrors.With(serrors.ErrBadRequest, "invalid tag kind"))

	rec := do(http.MethodGet, "/tags?kind=GENRE", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTags_EmptyEncodesAsArray(t *testing.T) {
	cat, _, do := newTestAPI(t)

	cat.EXPECT().Tags(gomock.Any(), domain.TagKind(""), uint(v1handler.DefaultLimit)).
		Return(nil, nil)

	rec := do(http.MethodGet, "/tags", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"tags":[]`)
}
