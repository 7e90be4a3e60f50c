package identity

import (
	"sync"

	dErrors "clubhub/pkg/domain-errors"
)

// Account is a credential record known to the local provider. The profile
// document in the document store is a separate record keyed by the same ID.
type Account struct {
	ID            string
	Email         string
	PasswordHash  string
	EmailVerified bool
}

// LocalProvider is an in-process email/password authentication provider.
// It owns the current identity and fans sign-in/sign-out notifications out
// to subscribers.
type LocalProvider struct {
	mu          sync.Mutex
	accounts    map[string]Account // keyed by email
	current     *Identity
	subscribers map[int]func(*Identity)
	nextSubID   int

	// notifyMu serializes deliveries so subscribers observe sign-in/out
	// events one at a time, in order.
	notifyMu sync.Mutex
}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{
		accounts:    make(map[string]Account),
		subscribers: make(map[int]func(*Identity)),
	}
}

// Register adds or replaces an account.
func (p *LocalProvider) Register(account Account) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.accounts[account.Email] = account
}

// SignIn verifies the credentials and makes the matching identity current.
// All subscribers are notified before SignIn returns.
func (p *LocalProvider) SignIn(email, password string) (*Identity, error) {
	p.mu.Lock()
	account, ok := p.accounts[email]
	p.mu.Unlock()
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}
	if err := VerifyPassword(password, account.PasswordHash); err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}

	ident := &Identity{
		ID:            account.ID,
		Email:         account.Email,
		EmailVerified: account.EmailVerified,
	}

	p.mu.Lock()
	p.current = ident
	p.mu.Unlock()

	p.notify(ident)
	return ident, nil
}

// SignOut clears the current identity and notifies subscribers.
func (p *LocalProvider) SignOut() {
	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()

	p.notify(nil)
}

// Current returns the identity that is signed in right now, or nil.
func (p *LocalProvider) Current() *Identity {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Subscribe registers a callback, firing it immediately with the current
// state per the Provider contract.
func (p *LocalProvider) Subscribe(fn func(*Identity)) func() {
	p.mu.Lock()
	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = fn
	current := p.current
	p.mu.Unlock()

	p.notifyMu.Lock()
	fn(current)
	p.notifyMu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subscribers, id)
	}
}

func (p *LocalProvider) notify(ident *Identity) {
	p.mu.Lock()
	fns := make([]func(*Identity), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()
	for _, fn := range fns {
		fn(ident)
	}
}
