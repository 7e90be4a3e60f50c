package profile

import (
	"context"

	dErrors "clubhub/pkg/domain-errors"
)

// ErrNotFound keeps storage-specific 404s consistent across store
// implementations. A missing profile is not a transport failure; the session
// core treats it as "not yet provisioned".
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "profile not found")

// Store is the document-store collaborator the session core reads profiles
// from. Implementations must return ErrNotFound when no document exists and
// a distinct error for transport failures.
type Store interface {
	GetProfile(ctx context.Context, id string) (*Profile, error)
	SaveProfile(ctx context.Context, p *Profile) error
}
