package v1handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"homecatalog/pkg/domain"
	"homecatalog/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateItemRequest is the payload of POST /v1/items.
type CreateItemRequest struct {
	// BGGID is the BoardGameGeek thing id to add to the catalog.
	BGGID int64 `json:"bggId"`
}

// ItemWithTags is an item together with its taxonomy tags, returned by
// GET /v1/items/{id}.
type ItemWithTags struct {
	domain.Item

	Tags []domain.Tag `json:"tags"`
}

// ItemList is a page of items with the cursor for the next page.
type ItemList struct {
	Items []domain.Item `json:"items"`
	// NextCursor is null when there is no next page.
	NextCursor *string `json:"nextCursor"`
}

// itemIDFromRequest parses the itemID URL parameter.
func itemIDFromRequest(r *http.Request) (domain.ItemID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		return domain.ItemID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid item ID")
	}

	return domain.ItemID(id), nil
}

// limitFromRequest parses the limit query parameter, applying the default and
// the cap.
func limitFromRequest(r *http.Request) (uint, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return DefaultLimit, nil
	}

	limit, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || limit == 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid limit")
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return uint(limit), nil
}

// CreateItem schedules a new import for the requested BGG id.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	item, err := h.deps.Catalog.Add(ctx, GetUserIDFromContext(ctx), req.BGGID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, item)
}

// ListItems returns a paginated list of the user's items.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := domain.ItemStatus(r.URL.Query().Get("status"))
	limit, err := limitFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	items, nextCursor, err := h.deps.Catalog.Items(ctx,
		GetUserIDFromContext(ctx),
		status,
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	list := ItemList{Items: items}
	if list.Items == nil {
		list.Items = []domain.Item{}
	}
	if nextCursor != "" {
		list.NextCursor = &nextCursor
	}

	writeJSON(ctx, w, http.StatusOK, list)
}

// GetItem returns a single item with its tags.
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := itemIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	item, tags, err := h.deps.Catalog.Item(ctx, GetUserIDFromContext(ctx), itemID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if tags == nil {
		tags = []domain.Tag{}
	}
	writeJSON(ctx, w, http.StatusOK, ItemWithTags{Item: *item, Tags: tags})
}

// DeleteItem deletes an item by ID.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := itemIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Catalog.Delete(ctx, GetUserIDFromContext(ctx), itemID); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
