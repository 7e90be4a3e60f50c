// Package httptransport assembles the feature routers into the serving
// surface. Business logic lives in the feature packages; this layer only
// mounts them and adds the operational endpoints.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"clubhub/pkg/platform/httputil"
)

// Registrar is implemented by every feature handler package.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter mounts the given feature handlers and the operational routes.
func NewRouter(registrars ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	for _, reg := range registrars {
		reg.Register(r)
	}
	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
