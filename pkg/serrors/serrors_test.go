package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"homecatalog/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("bgg is down")

	e1 := serrors.With(serrors.ErrNotFound, "item %d not found", 42)
	require.Equal(t, "item 42 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrUnavailable, base, "importing item")
	require.Equal(t, "importing item: bgg is down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error())
}

func TestIsMatchesKindAndCause(t *testing.T) {
	base := errors.New("timeout")
	e := serrors.Wrap(serrors.ErrUnavailable, base, "fetching thing")

	require.ErrorIs(t, e, serrors.ErrUnavailable)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrNotFound)
}

func TestIsSurvivesWrapping(t *testing.T) {
	e := fmt.Errorf("outer: %w", serrors.With(serrors.ErrBadRequest, "bad bgg id"))

	require.ErrorIs(t, e, serrors.ErrBadRequest)
}

func TestAccessors(t *testing.T) {
	base := errors.New("root cause")
	e := serrors.Wrap(serrors.ErrConflict, base, "already imported")

	require.Equal(t, serrors.ErrConflict, e.Kind())
	require.Equal(t, "already imported", e.Message())
	require.Equal(t, base, e.Cause())
	require.Equal(t, base, errors.Unwrap(e))
}
