// Package v1handler implements the v1 JSON API on top of the catalog
// service: item CRUD, tag browsing and bearer-token authentication.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"homecatalog/internal/catalog"
	"homecatalog/pkg/logger"
	"homecatalog/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DefaultLimit is the page size used when the client does not pass one.
const DefaultLimit = 20

// MaxLimit caps the page size a client may request.
const MaxLimit = 100

// Deps carries the service dependencies of the v1 handlers.
type Deps struct {
	Catalog catalog.Catalog
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the chi router for the v1 API. Every route requires a valid
// bearer token.
func (h *Handler) Routes(sec *SecHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(sec.Middleware)

	r.Post("/items", h.CreateItem)
	r.Get("/items", h.ListItems)
	r.Get("/items/{itemID}", h.GetItem)
	r.Delete("/items/{itemID}", h.DeleteItem)
	r.Get("/tags", h.ListTags)

	return r
}

// errorResponse is the error envelope returned by every v1 endpoint.
type errorResponse struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`
	// Code is the machine-readable kind, e.g. "NOT_FOUND".
	Code string `json:"code"`
}

// kindStatus maps semantic error kinds to HTTP status codes.
func kindStatus(k serrors.Kind) int {
	switch k {
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrRateLimited:
		return http.StatusTooManyRequests
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}

// writeError maps err to the error envelope. Semantic errors expose their
// kind and message; everything else is logged and reported as an opaque
// internal error.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Kind() != nil {
		status := kindStatus(serr.Kind())
		if status == http.StatusInternalServerError {
			logger.Error(ctx, "request failed", zap.Error(err))
		}
		msg := serr.Message()
		if msg == "" {
			msg = serr.Kind().Error()
		}
		writeJSON(ctx, w, status, errorResponse{Error: msg, Code: serr.Kind().Error()})

		return
	}

	logger.Error(ctx, "request failed", zap.Error(err))
	writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{
		Error: "internal server error",
		Code:  serrors.ErrInternal.Error(),
	})
}
