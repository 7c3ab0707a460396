package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"homecatalog/internal/config"
	"homecatalog/pkg/domain"
	"homecatalog/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ctxKey is a private context key type to avoid collisions.
type ctxKey string

// userIDKey is the context key under which the authenticated user ID is stored.
const userIDKey ctxKey = "UserID"

// SecHandlerOptions configures the bearer-token security handler.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key used to verify RS256 tokens.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler authenticates requests using RS256-signed bearer tokens whose
// subject carries the user ID.
type SecHandler struct {
	key *rsa.PublicKey
}

// NewSecHandler parses the configured public key and returns a SecHandler.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// Authenticate validates the bearer token and returns the user ID from its
// subject claim.
func (s *SecHandler) Authenticate(token string) (domain.UserID, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return s.key, nil
	})
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "token subject is not a user ID")
	}

	return domain.UserID(userID), nil
}

// Middleware enforces bearer authentication and stores the user ID in the
// request context.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		auth := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		userID, err := s.Authenticate(token)
		if err != nil {
			writeError(ctx, w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, userIDKey, userID)))
	})
}

// GetUserIDFromContext returns the authenticated user ID stored by the
// middleware, or the zero ID when the request is unauthenticated.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(userIDKey).(domain.UserID)

	return userID
}
