// Package handler exposes sign-in and sign-out over HTTP. Successful
// sign-in returns a bearer token for the API surface; the session manager
// learns about the identity change through the provider subscription.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"clubhub/internal/identity"
	"clubhub/internal/platform/metrics"
	"clubhub/internal/platform/middleware"
	dErrors "clubhub/pkg/domain-errors"
	"clubhub/pkg/platform/httputil"
)

const accessTokenTTL = time.Hour

type Handler struct {
	logger   *slog.Logger
	provider *identity.LocalProvider
	tokens   *identity.TokenService
	metrics  *metrics.Metrics
}

func New(
	provider *identity.LocalProvider,
	tokens *identity.TokenService,
	logger *slog.Logger,
	metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:   logger,
		provider: provider,
		tokens:   tokens,
		metrics:  metrics,
	}
}

// Register registers the auth routes with the chi router. These routes are
// public; sign-out works on whatever identity is current.
func (h *Handler) Register(r chi.Router) {
	authRouter := chi.NewRouter()
	authRouter.Use(middleware.Recovery(h.logger))
	authRouter.Use(middleware.RequestID)
	authRouter.Use(middleware.Logger(h.logger))
	authRouter.Use(middleware.Timeout(10 * time.Second))
	authRouter.Use(middleware.ContentTypeJSON)
	authRouter.Use(middleware.Latency(h.metrics))
	authRouter.Use(middleware.Device)

	authRouter.Post("/login", h.handleLogin)
	authRouter.Post("/logout", h.handleLogout)

	r.Mount("/auth", authRouter)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
	ExpiresIn   int                `json:"expires_in"`
	Identity    *identity.Identity `json:"identity"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "email and password are required"))
		return
	}

	ident, err := h.provider.SignIn(req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "sign-in rejected",
			"request_id", middleware.GetRequestID(ctx),
			"device", middleware.GetDevice(ctx),
		)
		httputil.WriteError(w, err)
		return
	}

	token, err := h.tokens.Issue(ident, accessTokenTTL)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue token",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to issue token"))
		return
	}

	if h.metrics != nil {
		h.metrics.SignIns.Inc()
	}
	h.logger.InfoContext(ctx, "signed in",
		"user_id", ident.ID,
		"device", middleware.GetDevice(ctx),
	)
	httputil.WriteJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(accessTokenTTL.Seconds()),
		Identity:    ident,
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.provider.SignOut()
	if h.metrics != nil {
		h.metrics.SignOuts.Inc()
	}
	w.WriteHeader(http.StatusNoContent)
}
