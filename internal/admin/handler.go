package admin

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"clubhub/internal/guard"
	"clubhub/internal/platform/metrics"
	"clubhub/internal/platform/middleware"
	"clubhub/internal/profile"
	dErrors "clubhub/pkg/domain-errors"
	"clubhub/pkg/platform/httputil"
)

// Handler serves the admin endpoints. The whole surface sits behind the
// admin role gate.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	session   guard.SessionSource
	metrics   *metrics.Metrics
	validator middleware.TokenValidator
}

func NewHandler(
	service *Service,
	session guard.SessionSource,
	logger *slog.Logger,
	metrics *metrics.Metrics,
	validator middleware.TokenValidator) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		session:   session,
		metrics:   metrics,
		validator: validator,
	}
}

// Register registers the admin routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	adminRouter := chi.NewRouter()
	adminRouter.Use(middleware.Recovery(h.logger))
	adminRouter.Use(middleware.RequestID)
	adminRouter.Use(middleware.Logger(h.logger))
	adminRouter.Use(middleware.Timeout(30 * time.Second))
	adminRouter.Use(middleware.ContentTypeJSON)
	adminRouter.Use(middleware.Latency(h.metrics))
	adminRouter.Use(middleware.RequireAuth(h.validator, h.logger))
	adminRouter.Use(guard.Middleware(h.session, profile.RoleAdmin, h.metrics))

	adminRouter.Put("/users/{userID}/role", h.handleAssignRole)

	r.Mount("/admin", adminRouter)
}

type assignRoleRequest struct {
	Role     string `json:"role"`
	SchoolID string `json:"school_id"`
}

func (h *Handler) handleAssignRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req assignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	p, err := h.service.AssignRole(ctx, chi.URLParam(r, "userID"), profile.Role(req.Role), req.SchoolID)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "failed to assign role",
				"request_id", middleware.GetRequestID(ctx),
				"error", err.Error(),
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}
