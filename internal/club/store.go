package club

import (
	"context"

	dErrors "clubhub/pkg/domain-errors"
)

// ErrNotFound keeps storage-specific 404s consistent across club store
// implementations.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "club record not found")

// Store persists clubs, events, and memberships.
type Store interface {
	SaveClub(ctx context.Context, c *Club) error
	GetClub(ctx context.Context, id string) (*Club, error)
	ListClubs(ctx context.Context, schoolID string) ([]*Club, error)
	DeleteClub(ctx context.Context, id string) error

	SaveEvent(ctx context.Context, e *Event) error
	ListEvents(ctx context.Context, clubID string) ([]*Event, error)
	DeleteEvent(ctx context.Context, id string) error

	SaveMembership(ctx context.Context, m *Membership) error
	GetMembership(ctx context.Context, clubID, userID string) (*Membership, error)
	ListMemberships(ctx context.Context, clubID string) ([]*Membership, error)
	DeleteMembership(ctx context.Context, clubID, userID string) error
}
