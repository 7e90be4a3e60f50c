package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mssola/useragent"
)

type contextKeyDevice struct{}

// ContextKeyDevice is exported for use in handlers.
var ContextKeyDevice = contextKeyDevice{}

// GetDevice retrieves the parsed device label from the context.
func GetDevice(ctx context.Context) string {
	device, ok := ctx.Value(ContextKeyDevice).(string)
	if !ok {
		return ""
	}
	return device
}

// WithDevice injects a device label into a context. Useful for unit tests
// that don't run the full middleware chain.
func WithDevice(ctx context.Context, device string) context.Context {
	return context.WithValue(ctx, ContextKeyDevice, device)
}

// Device derives a coarse browser/OS label from the User-Agent header so
// sign-in and role-change events can be attributed to a client in the logs.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua := useragent.New(r.UserAgent())
		name, version := ua.Browser()
		label := "unknown"
		if name != "" {
			label = fmt.Sprintf("%s/%s (%s)", name, version, ua.OS())
		}
		ctx := context.WithValue(r.Context(), ContextKeyDevice, label)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
