package club

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"clubhub/internal/platform/metrics"
	"clubhub/internal/profile"
	dErrors "clubhub/pkg/domain-errors"
	stringsutil "clubhub/pkg/platform/strings"
)

// Service holds the club business rules. Role gating for whole screens is
// the route guard's job; the service only enforces per-record rules like
// ownership.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(mtr *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = mtr }
}

func NewService(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("club store is required")
	}
	svc := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// CreateClubRequest carries the fields a creator controls.
type CreateClubRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func (s *Service) CreateClub(ctx context.Context, actor *profile.Profile, req CreateClubRequest) (*Club, error) {
	if actor == nil || actor.SchoolID == "" {
		return nil, dErrors.New(dErrors.CodeForbidden, "a school-linked profile is required")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "club name is required")
	}

	c := &Club{
		ID:          uuid.NewString(),
		SchoolID:    actor.SchoolID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Tags:        normalizeTags(req.Tags),
		OwnerID:     actor.ID,
	}
	if err := s.store.SaveClub(ctx, c); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save club")
	}

	if s.metrics != nil {
		s.metrics.ClubsCreated.Inc()
	}
	s.logger.InfoContext(ctx, "club created",
		"club_id", c.ID,
		"school_id", c.SchoolID,
		"owner_id", c.OwnerID,
	)
	return c, nil
}

func (s *Service) GetClub(ctx context.Context, id string) (*Club, error) {
	c, err := s.store.GetClub(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load club")
	}
	return c, nil
}

func (s *Service) ListClubs(ctx context.Context, schoolID string) ([]*Club, error) {
	clubs, err := s.store.ListClubs(ctx, schoolID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list clubs")
	}
	return clubs, nil
}

// UpdateClubRequest only touches the mutable presentation fields.
type UpdateClubRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func (s *Service) UpdateClub(ctx context.Context, actor *profile.Profile, id string, req UpdateClubRequest) (*Club, error) {
	c, err := s.GetClub(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrAdmin(actor, c); err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		c.Name = name
	}
	c.Description = strings.TrimSpace(req.Description)
	c.Tags = normalizeTags(req.Tags)

	if err := s.store.SaveClub(ctx, c); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save club")
	}
	return c, nil
}

func (s *Service) DeleteClub(ctx context.Context, actor *profile.Profile, id string) error {
	c, err := s.GetClub(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireOwnerOrAdmin(actor, c); err != nil {
		return err
	}
	if err := s.store.DeleteClub(ctx, id); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete club")
	}
	s.logger.InfoContext(ctx, "club deleted", "club_id", id, "actor_id", actor.ID)
	return nil
}

func (s *Service) AddEvent(ctx context.Context, actor *profile.Profile, clubID string, e *Event) (*Event, error) {
	c, err := s.GetClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrAdmin(actor, c); err != nil {
		return nil, err
	}
	if strings.TrimSpace(e.Title) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "event title is required")
	}

	e.ID = uuid.NewString()
	e.ClubID = clubID
	if err := s.store.SaveEvent(ctx, e); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save event")
	}
	return e, nil
}

func (s *Service) ListEvents(ctx context.Context, clubID string) ([]*Event, error) {
	if _, err := s.GetClub(ctx, clubID); err != nil {
		return nil, err
	}
	events, err := s.store.ListEvents(ctx, clubID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list events")
	}
	return events, nil
}

func (s *Service) DeleteEvent(ctx context.Context, actor *profile.Profile, clubID, eventID string) error {
	c, err := s.GetClub(ctx, clubID)
	if err != nil {
		return err
	}
	if err := s.requireOwnerOrAdmin(actor, c); err != nil {
		return err
	}
	if err := s.store.DeleteEvent(ctx, eventID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete event")
	}
	return nil
}

// RequestJoin opens a pending membership for the actor.
func (s *Service) RequestJoin(ctx context.Context, actor *profile.Profile, clubID string) (*Membership, error) {
	if actor == nil || actor.SchoolID == "" {
		return nil, dErrors.New(dErrors.CodeForbidden, "a school-linked profile is required")
	}
	c, err := s.GetClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if c.SchoolID != actor.SchoolID {
		return nil, dErrors.New(dErrors.CodeForbidden, "club belongs to another school")
	}
	if _, err := s.store.GetMembership(ctx, clubID, actor.ID); err == nil {
		return nil, dErrors.New(dErrors.CodeConflict, "membership already exists")
	}

	m := &Membership{ClubID: clubID, UserID: actor.ID, Status: MembershipPending}
	if err := s.store.SaveMembership(ctx, m); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save membership")
	}
	return m, nil
}

// ApproveMember moves a pending membership to approved. Only the club owner
// or an admin may approve.
func (s *Service) ApproveMember(ctx context.Context, actor *profile.Profile, clubID, userID string) (*Membership, error) {
	c, err := s.GetClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrAdmin(actor, c); err != nil {
		return nil, err
	}

	m, err := s.store.GetMembership(ctx, clubID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load membership")
	}

	m.Status = MembershipApproved
	if err := s.store.SaveMembership(ctx, m); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save membership")
	}
	return m, nil
}

// Leave removes the actor's membership, pending or approved.
func (s *Service) Leave(ctx context.Context, actor *profile.Profile, clubID string) error {
	if actor == nil {
		return dErrors.New(dErrors.CodeForbidden, "a profile is required")
	}
	if err := s.store.DeleteMembership(ctx, clubID, actor.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete membership")
	}
	return nil
}

func (s *Service) ListMembers(ctx context.Context, clubID string) ([]*Membership, error) {
	if _, err := s.GetClub(ctx, clubID); err != nil {
		return nil, err
	}
	members, err := s.store.ListMemberships(ctx, clubID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list memberships")
	}
	return members, nil
}

func (s *Service) requireOwnerOrAdmin(actor *profile.Profile, c *Club) error {
	if actor == nil {
		return dErrors.New(dErrors.CodeForbidden, "a profile is required")
	}
	if actor.Role == profile.RoleAdmin || actor.ID == c.OwnerID {
		return nil
	}
	return dErrors.New(dErrors.CodeForbidden, "only the club owner or an admin may do this")
}

func normalizeTags(tags []string) []string {
	return stringsutil.DedupeAndTrimLower(tags)
}
