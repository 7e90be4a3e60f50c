// Package admin implements school administration operations, currently
// role assignment. Role changes are announced on the shared broadcast
// channel so running sessions refresh their cached profile.
package admin

import (
	"context"
	"errors"
	"log/slog"

	"clubhub/internal/broadcast"
	"clubhub/internal/profile"
	dErrors "clubhub/pkg/domain-errors"
)

type Service struct {
	profiles profile.Store
	channel  broadcast.Channel
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(profiles profile.Store, channel broadcast.Channel, opts ...Option) (*Service, error) {
	if profiles == nil {
		return nil, errors.New("profile store is required")
	}
	if channel == nil {
		return nil, errors.New("broadcast channel is required")
	}
	svc := &Service{profiles: profiles, channel: channel, logger: slog.Default()}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// AssignRole sets a user's role and school link. A missing profile is
// provisioned on the spot so admins can approve accounts that signed in
// before the school linked them.
func (s *Service) AssignRole(ctx context.Context, userID string, role profile.Role, schoolID string) (*profile.Profile, error) {
	if userID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user id is required")
	}
	if role != profile.RoleUnset && !role.Known() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "unknown role")
	}

	p, err := s.profiles.GetProfile(ctx, userID)
	switch {
	case errors.Is(err, profile.ErrNotFound):
		p = &profile.Profile{ID: userID}
	case err != nil:
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}

	p.Role = role
	if schoolID != "" {
		p.SchoolID = schoolID
	}
	if err := s.profiles.SaveProfile(ctx, p); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save profile")
	}

	// The write has landed; a failed announcement only delays other
	// sessions until their cache goes stale.
	if err := s.channel.Publish(ctx, broadcast.RoleChange{UserID: userID}); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish role change",
			"user_id", userID,
			"error", err.Error(),
		)
	} else {
		s.logger.InfoContext(ctx, "role assigned",
			"user_id", userID,
			"role", string(role),
			"school_id", p.SchoolID,
		)
	}
	return p, nil
}
