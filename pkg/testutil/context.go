package testutil

import (
	"context"
	"net/http"

	"clubhub/internal/platform/middleware"
)

// WithUserID adds a user ID to the request context, simulating what the
// auth middleware does for authenticated requests.
func WithUserID(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.ContextKeyUserID, userID)
	return req.WithContext(ctx)
}

// WithEmail adds the authenticated email to the request context.
func WithEmail(req *http.Request, email string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.ContextKeyEmail, email)
	return req.WithContext(ctx)
}

// WithContextValue adds an arbitrary key-value pair to the request context.
func WithContextValue(req *http.Request, key, value any) *http.Request {
	ctx := context.WithValue(req.Context(), key, value)
	return req.WithContext(ctx)
}
