package session

import (
	"time"

	"clubhub/internal/identity"
	"clubhub/internal/profile"
)

// State is the externally observable session tuple. It is recomputed and
// replaced as a whole on every transition; consumers never see a partially
// updated value.
//
// Loading true does not imply Profile is nil: a stale profile may be shown
// while a refresh is in flight. Once Loading is false, the state reflects
// the most recent fetch attempt's outcome.
type State struct {
	Identity    *identity.Identity
	Profile     *profile.Profile
	Loading     bool
	LastFetchAt time.Time
}

// SignedIn reports whether an identity is established.
func (s State) SignedIn() bool {
	return s.Identity != nil
}
