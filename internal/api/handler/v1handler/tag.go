package v1handler

import (
	"net/http"

	"homecatalog/pkg/domain"
)

// TagList is the response of GET /v1/tags.
type TagList struct {
	Tags []domain.Tag `json:"tags"`
}

// ListTags browses the tag taxonomy, optionally filtered by kind.
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := limitFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	tags, err := h.deps.Catalog.Tags(ctx, domain.TagKind(r.URL.Query().Get("kind")), limit)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if tags == nil {
		tags = []domain.Tag{}
	}
	writeJSON(ctx, w, http.StatusOK, TagList{Tags: tags})
}
