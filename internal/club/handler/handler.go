package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"clubhub/internal/club"
	"clubhub/internal/guard"
	"clubhub/internal/platform/metrics"
	"clubhub/internal/platform/middleware"
	"clubhub/internal/profile"
	dErrors "clubhub/pkg/domain-errors"
	"clubhub/pkg/platform/httputil"
)

// Service defines the club operations the handler depends on.
type Service interface {
	CreateClub(ctx context.Context, actor *profile.Profile, req club.CreateClubRequest) (*club.Club, error)
	GetClub(ctx context.Context, id string) (*club.Club, error)
	ListClubs(ctx context.Context, schoolID string) ([]*club.Club, error)
	UpdateClub(ctx context.Context, actor *profile.Profile, id string, req club.UpdateClubRequest) (*club.Club, error)
	DeleteClub(ctx context.Context, actor *profile.Profile, id string) error
	AddEvent(ctx context.Context, actor *profile.Profile, clubID string, e *club.Event) (*club.Event, error)
	ListEvents(ctx context.Context, clubID string) ([]*club.Event, error)
	DeleteEvent(ctx context.Context, actor *profile.Profile, clubID, eventID string) error
	RequestJoin(ctx context.Context, actor *profile.Profile, clubID string) (*club.Membership, error)
	ApproveMember(ctx context.Context, actor *profile.Profile, clubID, userID string) (*club.Membership, error)
	Leave(ctx context.Context, actor *profile.Profile, clubID string) error
	ListMembers(ctx context.Context, clubID string) ([]*club.Membership, error)
}

// Handler serves the club endpoints. Access is gated by the session guard;
// per-record rules such as ownership live in the service.
type Handler struct {
	logger    *slog.Logger
	clubs     Service
	session   guard.SessionSource
	metrics   *metrics.Metrics
	validator middleware.TokenValidator
}

func New(
	clubs Service,
	session guard.SessionSource,
	logger *slog.Logger,
	metrics *metrics.Metrics,
	validator middleware.TokenValidator) *Handler {
	return &Handler{
		logger:    logger,
		clubs:     clubs,
		session:   session,
		metrics:   metrics,
		validator: validator,
	}
}

// Register registers the club routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	clubRouter := chi.NewRouter()
	clubRouter.Use(middleware.Recovery(h.logger))
	clubRouter.Use(middleware.RequestID)
	clubRouter.Use(middleware.Logger(h.logger))
	clubRouter.Use(middleware.Timeout(30 * time.Second))
	clubRouter.Use(middleware.ContentTypeJSON)
	clubRouter.Use(middleware.Latency(h.metrics))
	clubRouter.Use(middleware.RequireAuth(h.validator, h.logger))
	clubRouter.Use(guard.Middleware(h.session, profile.RoleUnset, h.metrics))

	clubRouter.Get("/", h.handleListClubs)
	clubRouter.Post("/", h.handleCreateClub)
	clubRouter.Get("/{clubID}", h.handleGetClub)
	clubRouter.Put("/{clubID}", h.handleUpdateClub)
	clubRouter.Delete("/{clubID}", h.handleDeleteClub)
	clubRouter.Get("/{clubID}/events", h.handleListEvents)
	clubRouter.Post("/{clubID}/events", h.handleAddEvent)
	clubRouter.Delete("/{clubID}/events/{eventID}", h.handleDeleteEvent)
	clubRouter.Get("/{clubID}/members", h.handleListMembers)
	clubRouter.Post("/{clubID}/members", h.handleRequestJoin)
	clubRouter.Put("/{clubID}/members/{userID}", h.handleApproveMember)
	clubRouter.Delete("/{clubID}/members/me", h.handleLeave)

	r.Mount("/clubs", clubRouter)
}

// actor returns the profile of the signed-in user, which may be nil while
// the account is not yet provisioned.
func (h *Handler) actor() *profile.Profile {
	return h.session.State().Profile
}

func (h *Handler) handleListClubs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := h.actor()
	if actor == nil || actor.SchoolID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "a school-linked profile is required"))
		return
	}

	clubs, err := h.clubs.ListClubs(ctx, actor.SchoolID)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to list clubs", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, clubs)
}

func (h *Handler) handleCreateClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req club.CreateClubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	c, err := h.clubs.CreateClub(ctx, h.actor(), req)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to create club", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleGetClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, err := h.clubs.GetClub(ctx, chi.URLParam(r, "clubID"))
	if err != nil {
		h.writeServiceError(ctx, w, "failed to get club", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleUpdateClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req club.UpdateClubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	c, err := h.clubs.UpdateClub(ctx, h.actor(), chi.URLParam(r, "clubID"), req)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to update club", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.clubs.DeleteClub(ctx, h.actor(), chi.URLParam(r, "clubID")); err != nil {
		h.writeServiceError(ctx, w, "failed to delete club", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addEventRequest struct {
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
	Location string    `json:"location"`
}

func (h *Handler) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req addEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	e, err := h.clubs.AddEvent(ctx, h.actor(), chi.URLParam(r, "clubID"), &club.Event{
		Title:    req.Title,
		StartsAt: req.StartsAt,
		Location: req.Location,
	})
	if err != nil {
		h.writeServiceError(ctx, w, "failed to add event", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, e)
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	events, err := h.clubs.ListEvents(ctx, chi.URLParam(r, "clubID"))
	if err != nil {
		h.writeServiceError(ctx, w, "failed to list events", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}

func (h *Handler) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	err := h.clubs.DeleteEvent(ctx, h.actor(), chi.URLParam(r, "clubID"), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeServiceError(ctx, w, "failed to delete event", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	members, err := h.clubs.ListMembers(ctx, chi.URLParam(r, "clubID"))
	if err != nil {
		h.writeServiceError(ctx, w, "failed to list members", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, members)
}

func (h *Handler) handleRequestJoin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	m, err := h.clubs.RequestJoin(ctx, h.actor(), chi.URLParam(r, "clubID"))
	if err != nil {
		h.writeServiceError(ctx, w, "failed to request membership", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, m)
}

func (h *Handler) handleApproveMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	m, err := h.clubs.ApproveMember(ctx, h.actor(), chi.URLParam(r, "clubID"), chi.URLParam(r, "userID"))
	if err != nil {
		h.writeServiceError(ctx, w, "failed to approve membership", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) handleLeave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.clubs.Leave(ctx, h.actor(), chi.URLParam(r, "clubID")); err != nil {
		h.writeServiceError(ctx, w, "failed to leave club", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg,
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, err)
}
