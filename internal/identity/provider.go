// Package identity models the authentication provider side of the system:
// the minimal signed-in identity, the subscription stream the session
// manager observes, and the local email/password provider used by the
// server.
package identity

// Identity is the provider's minimal proof of sign-in, distinct from the
// richer application profile stored in the document store.
type Identity struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// Provider is the authentication collaborator observed by the session
// manager. Subscribe fires the callback once with the current state, then on
// every sign-in and sign-out. A nil identity means signed out. The returned
// function removes the subscription.
//
// Providers deliver at most one notification at a time; callbacks for a
// given subscriber never run concurrently.
type Provider interface {
	Subscribe(fn func(*Identity)) (unsubscribe func())
}
