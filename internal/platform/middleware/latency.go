package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"clubhub/internal/platform/metrics"
)

// Latency records per-route request latency. Mounted after the router has
// matched so the chi route pattern is available as a bounded label.
func Latency(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			pattern := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					pattern = p
				}
			}
			if m != nil {
				m.ObserveRequest(pattern, r.Method, float64(time.Since(start).Microseconds())/1000.0)
			}
		})
	}
}
