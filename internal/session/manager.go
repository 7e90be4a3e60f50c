package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"clubhub/internal/broadcast"
	"clubhub/internal/identity"
	"clubhub/internal/platform/config"
	"clubhub/internal/platform/metrics"
	"clubhub/internal/profile"
)

// Manager is the single authority for "who is signed in and what is their
// profile right now". It reconciles the identity provider's event stream
// with the document store and the single-slot profile cache, and publishes
// the resulting State by whole-value swap.
//
// Transitions: before the provider's first callback the state is loading
// with no identity. A nil identity from the provider clears the cache and
// publishes the signed-out state. A non-nil identity triggers a forced
// fetch; on success the profile is cached and published, on failure the
// manager degrades to the cached profile when one matches, or publishes a
// nil profile meaning "not yet provisioned" — never a sign-out.
type Manager struct {
	provider identity.Provider
	store    profile.Store
	channel  broadcast.Channel
	cache    *ProfileCache

	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
	staleAfter time.Duration
	now        func() time.Time

	state atomic.Pointer[State]

	// mu serializes transitions; current tracks the identity as of the
	// latest provider event so late fetch results can be discarded, and
	// fetchGen is bumped by every forced fetch so results that predate the
	// forcing event are discarded too.
	mu       sync.Mutex
	current  *identity.Identity
	fetchGen uint64
	flight   singleflight.Group

	watchMu     sync.Mutex
	watchers    map[int]func(State)
	nextWatchID int

	unsubProvider func()
	unsubChannel  func()
	fetches       sync.WaitGroup
}

// Option configures a Manager.
type Option func(*Manager)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

func WithMetrics(mtr *metrics.Metrics) Option {
	return func(m *Manager) { m.metrics = mtr }
}

// WithStaleAfter overrides the voluntary-refresh staleness window.
func WithStaleAfter(d time.Duration) Option {
	return func(m *Manager) { m.staleAfter = d }
}

// WithClock injects a time source for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(provider identity.Provider, store profile.Store, channel broadcast.Channel, opts ...Option) *Manager {
	m := &Manager{
		provider:   provider,
		store:      store,
		channel:    channel,
		cache:      NewProfileCache(),
		logger:     slog.Default(),
		tracer:     otel.Tracer("clubhub/session"),
		staleAfter: config.ProfileStaleAfter,
		now:        time.Now,
		watchers:   make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(m)
	}
	// Before the provider's first callback nothing is known yet.
	m.state.Store(&State{Loading: true})
	return m
}

// Start subscribes to the identity provider and the role-change channel.
// The provider fires immediately with the current identity, so the state is
// resolved past its initial loading value before Start returns.
func (m *Manager) Start(ctx context.Context) {
	m.unsubChannel = m.channel.Subscribe(func(change broadcast.RoleChange) {
		m.handleRoleChange(ctx, change)
	})
	m.unsubProvider = m.provider.Subscribe(func(ident *identity.Identity) {
		m.handleIdentity(ctx, ident)
	})
}

// Close unsubscribes from both event sources and waits for in-flight
// fetches to drain.
func (m *Manager) Close() {
	if m.unsubProvider != nil {
		m.unsubProvider()
	}
	if m.unsubChannel != nil {
		m.unsubChannel()
	}
	m.fetches.Wait()
}

// State returns the current session state.
func (m *Manager) State() State {
	return *m.state.Load()
}

// Watch registers a callback invoked on every state publication. The
// returned function removes the watcher.
func (m *Manager) Watch(fn func(State)) func() {
	m.watchMu.Lock()
	defer m.watchMu.Unlock()
	id := m.nextWatchID
	m.nextWatchID++
	m.watchers[id] = fn

	return func() {
		m.watchMu.Lock()
		defer m.watchMu.Unlock()
		delete(m.watchers, id)
	}
}

// RefreshUserData re-fetches the profile when the last fetch is older than
// the staleness window; within the window it is a no-op. Consumers call
// this on navigation without worrying about redundant round-trips.
func (m *Manager) RefreshUserData(ctx context.Context) {
	st := m.State()
	if st.Identity == nil {
		return
	}
	if m.now().Sub(st.LastFetchAt) <= m.staleAfter {
		return
	}
	m.fetch(ctx, st.Identity, false)
}

func (m *Manager) handleIdentity(ctx context.Context, ident *identity.Identity) {
	m.mu.Lock()
	m.current = ident

	if ident == nil {
		m.cache.Clear()
		st := State{}
		m.state.Store(&st)
		m.mu.Unlock()
		m.notify(st)
		return
	}

	// The previous identity's profile must not leak across a sign-in.
	st := State{Identity: ident, Loading: true}
	m.state.Store(&st)
	m.mu.Unlock()
	m.notify(st)

	m.fetches.Add(1)
	go func() {
		defer m.fetches.Done()
		m.fetch(ctx, ident, true)
	}()
}

func (m *Manager) handleRoleChange(ctx context.Context, change broadcast.RoleChange) {
	m.mu.Lock()
	current := m.current
	m.mu.Unlock()
	if current == nil || current.ID != change.UserID {
		return
	}

	if m.metrics != nil {
		m.metrics.RoleChangeEvents.Inc()
	}
	m.logger.InfoContext(ctx, "role change broadcast received; forcing profile fetch",
		"user_id", change.UserID,
	)
	// Role changes must take effect immediately, so this bypasses the
	// staleness window entirely.
	m.fetch(ctx, current, true)
}

// fetch reads the profile for the given identity and publishes the outcome,
// unless the identity changed or a forced fetch superseded this one while it
// was in flight. A forced fetch must observe store writes made before its
// trigger, so it detaches any in-flight singleflight call for the user
// (joining one could return data read before the triggering write) and bumps
// the generation so the detached call's result cannot publish over it.
func (m *Manager) fetch(ctx context.Context, ident *identity.Identity, forced bool) {
	m.mu.Lock()
	if forced {
		m.flight.Forget(ident.ID)
		m.fetchGen++
	}
	gen := m.fetchGen
	m.mu.Unlock()

	p, err := m.fetchProfile(ctx, ident.ID)
	fetchedAt := m.now()

	m.mu.Lock()
	if m.current == nil || m.current.ID != ident.ID || gen != m.fetchGen {
		m.mu.Unlock()
		// Expected during normal navigation, not an error.
		if m.metrics != nil {
			m.metrics.DiscardedFetches.Inc()
		}
		return
	}

	var st State
	switch {
	case err == nil:
		m.cache.Set(p)
		st = State{Identity: m.current, Profile: p, LastFetchAt: fetchedAt}
		if m.metrics != nil {
			m.metrics.ProfileFetches.WithLabelValues("ok").Inc()
		}
	default:
		if errors.Is(err, profile.ErrNotFound) {
			if m.metrics != nil {
				m.metrics.ProfileFetches.WithLabelValues("not_found").Inc()
			}
		} else {
			if m.metrics != nil {
				m.metrics.ProfileFetches.WithLabelValues("error").Inc()
			}
			m.logger.WarnContext(ctx, "profile fetch failed; falling back to cache",
				"user_id", ident.ID,
				"error", err,
			)
		}

		if entry := m.cache.Get(ident.ID); entry != nil {
			// Availability over freshness: keep the user signed in on
			// stale data rather than logging them out.
			st = State{Identity: m.current, Profile: entry.Profile, LastFetchAt: fetchedAt}
			if m.metrics != nil {
				m.metrics.ProfileCacheHits.Inc()
				m.metrics.StaleFallbacks.Inc()
			}
		} else {
			// No document and nothing cached: signed in but not yet
			// provisioned. The route guard decides what that means.
			st = State{Identity: m.current, LastFetchAt: fetchedAt}
			if m.metrics != nil {
				m.metrics.ProfileCacheMiss.Inc()
			}
		}
	}

	m.state.Store(&st)
	m.mu.Unlock()
	m.notify(st)
}

// fetchProfile reads the document store, deduplicating concurrent fetches
// for the same user through singleflight.
func (m *Manager) fetchProfile(ctx context.Context, userID string) (*profile.Profile, error) {
	v, err, _ := m.flight.Do(userID, func() (any, error) {
		ctx, span := m.tracer.Start(ctx, "session.fetch_profile",
			trace.WithAttributes(attribute.String("user.id", userID)))
		defer span.End()

		p, err := m.store.GetProfile(ctx, userID)
		if err != nil && !errors.Is(err, profile.ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, "profile fetch failed")
		}
		return p, err
	})
	p, _ := v.(*profile.Profile)
	return p, err
}

func (m *Manager) notify(st State) {
	m.watchMu.Lock()
	fns := make([]func(State), 0, len(m.watchers))
	for _, fn := range m.watchers {
		fns = append(fns, fn)
	}
	m.watchMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}
