// Package memory provides the in-memory profile store used in development
// and tests. It intentionally favors clarity over performance.
package memory

import (
	"context"
	"sync"

	"clubhub/internal/profile"
)

type InMemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]profile.Profile
}

func New() *InMemoryProfileStore {
	return &InMemoryProfileStore{profiles: make(map[string]profile.Profile)}
}

func (s *InMemoryProfileStore) GetProfile(_ context.Context, id string) (*profile.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[id]; ok {
		return p.Clone(), nil
	}
	return nil, profile.ErrNotFound
}

func (s *InMemoryProfileStore) SaveProfile(_ context.Context, p *profile.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = *p
	return nil
}

// Delete removes a profile. Used by tests to simulate a document disappearing
// between fetches.
func (s *InMemoryProfileStore) Delete(_ context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, id)
}
