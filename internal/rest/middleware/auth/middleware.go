// Package auth resolves the calling user for REST requests.
package auth

import (
	"context"
	"net/http"
	"strconv"

	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

type userIDCtxKey struct{}

// FromContext retrieves the authenticated user ID from context.
// Returns 0 and false when no user is attached.
func FromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDCtxKey{}).(int64)
	return userID, ok
}

// Middleware extracts the authenticated user from the X-User-ID header.
// The platform gateway authenticates requests and forwards the resolved
// user ID; this service trusts that header.
type Middleware struct {
	logger *zap.Logger
}

// New creates a new auth middleware.
func New(logger *zap.Logger) *Middleware {
	return &Middleware{
		logger: logger.Named("auth_middleware"),
	}
}

// AsRESTMiddleware returns a bunrouter middleware handler that rejects
// requests without a valid user ID.
func (m *Middleware) AsRESTMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		header := req.Header.Get("X-User-ID")
		if header == "" {
			http.Error(w, "Missing X-User-ID header", http.StatusUnauthorized)
			return nil
		}

		userID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || userID <= 0 {
			m.logger.Debug("Rejected request with invalid user ID",
				zap.String("value", header))
			http.Error(w, "Invalid X-User-ID header", http.StatusUnauthorized)

			return nil
		}

		ctx := context.WithValue(req.Context(), userIDCtxKey{}, userID)

		return next(w, req.WithContext(ctx))
	}
}
