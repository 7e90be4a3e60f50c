// Package handler exposes the session state over HTTP so clients can render
// the right screen and landing route after sign-in.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"clubhub/internal/guard"
	"clubhub/internal/identity"
	"clubhub/internal/platform/metrics"
	"clubhub/internal/platform/middleware"
	"clubhub/internal/profile"
	"clubhub/internal/session"
	"clubhub/pkg/platform/httputil"
)

// Session is the slice of the session manager the handler needs.
type Session interface {
	State() session.State
	RefreshUserData(ctx context.Context)
}

// Handler serves the session endpoints. Unlike the feature surfaces these
// are not behind the guard: a loading or pending session must still be able
// to ask where it stands.
type Handler struct {
	logger    *slog.Logger
	session   Session
	metrics   *metrics.Metrics
	validator middleware.TokenValidator
}

func New(
	sess Session,
	logger *slog.Logger,
	metrics *metrics.Metrics,
	validator middleware.TokenValidator) *Handler {
	return &Handler{
		logger:    logger,
		session:   sess,
		metrics:   metrics,
		validator: validator,
	}
}

// Register registers the session routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	sessionRouter := chi.NewRouter()
	sessionRouter.Use(middleware.Recovery(h.logger))
	sessionRouter.Use(middleware.RequestID)
	sessionRouter.Use(middleware.Logger(h.logger))
	sessionRouter.Use(middleware.Timeout(10 * time.Second))
	sessionRouter.Use(middleware.Latency(h.metrics))
	sessionRouter.Use(middleware.RequireAuth(h.validator, h.logger))

	sessionRouter.Get("/", h.handleGetSession)
	sessionRouter.Post("/refresh", h.handleRefresh)

	r.Mount("/session", sessionRouter)
}

type stateResponse struct {
	Loading     bool               `json:"loading"`
	Identity    *identity.Identity `json:"identity,omitempty"`
	Profile     *profile.Profile   `json:"profile,omitempty"`
	LastFetchAt *time.Time         `json:"last_fetch_at,omitempty"`
	RedirectTo  string             `json:"redirect_to,omitempty"`
}

// handleGetSession reports the session snapshot plus the route the client
// should land on. A ?redirectTo= query wins when it is a safe relative path,
// otherwise the role dashboard applies.
func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	st := h.session.State()

	resp := stateResponse{
		Loading:  st.Loading,
		Identity: st.Identity,
		Profile:  st.Profile,
	}
	if !st.LastFetchAt.IsZero() {
		t := st.LastFetchAt
		resp.LastFetchAt = &t
	}
	if st.SignedIn() && !st.Loading {
		if target := session.RedirectURL(r.URL.Query()); target != "" {
			resp.RedirectTo = target
		} else {
			role := profile.RoleUnset
			if st.Profile != nil {
				role = st.Profile.Role
			}
			resp.RedirectTo = guard.DashboardPath(role)
		}
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// handleRefresh asks the manager for fresh profile data and returns the
// resulting snapshot. The manager still applies its staleness window.
func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	h.session.RefreshUserData(r.Context())

	st := h.session.State()
	resp := stateResponse{
		Loading:  st.Loading,
		Identity: st.Identity,
		Profile:  st.Profile,
	}
	if !st.LastFetchAt.IsZero() {
		t := st.LastFetchAt
		resp.LastFetchAt = &t
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
