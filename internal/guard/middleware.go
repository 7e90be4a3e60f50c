package guard

import (
	"net/http"

	"clubhub/internal/platform/metrics"
	"clubhub/internal/profile"
	"clubhub/internal/session"
	"clubhub/pkg/platform/httputil"
)

// SessionSource provides the current session state; satisfied by
// *session.Manager.
type SessionSource interface {
	State() session.State
}

// Middleware translates guard decisions into HTTP behavior for API routes:
// loading becomes 503 with Retry-After, redirects become 303 with a JSON
// body carrying the location, pending approval is 403 with its own error
// code so clients can show the interstitial, and authorized falls through
// to the wrapped handler.
func Middleware(source SessionSource, requiredRole profile.Role, mtr *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := Evaluate(source.State(), requiredRole)
			if mtr != nil {
				mtr.GuardDecisions.WithLabelValues(string(decision.Kind)).Inc()
			}

			switch decision.Kind {
			case Loading:
				w.Header().Set("Retry-After", "1")
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "loading",
				})
			case Redirect:
				w.Header().Set("Location", decision.Path)
				httputil.WriteJSON(w, http.StatusSeeOther, map[string]string{
					"redirect_to": decision.Path,
				})
			case PendingApproval:
				httputil.WriteJSON(w, http.StatusForbidden, map[string]string{
					"error":             "pending_approval",
					"error_description": "account is awaiting school approval",
				})
			case Authorized:
				next.ServeHTTP(w, r)
			}
		})
	}
}
