// Package memory provides the in-memory club store used in development and
// tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"clubhub/internal/club"
)

type membershipKey struct {
	clubID string
	userID string
}

type InMemoryClubStore struct {
	mu          sync.RWMutex
	clubs       map[string]club.Club
	events      map[string]club.Event
	memberships map[membershipKey]club.Membership
}

func New() *InMemoryClubStore {
	return &InMemoryClubStore{
		clubs:       make(map[string]club.Club),
		events:      make(map[string]club.Event),
		memberships: make(map[membershipKey]club.Membership),
	}
}

func (s *InMemoryClubStore) SaveClub(_ context.Context, c *club.Club) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clubs[c.ID] = *c
	return nil
}

func (s *InMemoryClubStore) GetClub(_ context.Context, id string) (*club.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.clubs[id]; ok {
		cp := c
		return &cp, nil
	}
	return nil, club.ErrNotFound
}

func (s *InMemoryClubStore) ListClubs(_ context.Context, schoolID string) ([]*club.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*club.Club
	for _, c := range s.clubs {
		if c.SchoolID == schoolID {
			cp := c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryClubStore) DeleteClub(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clubs[id]; !ok {
		return club.ErrNotFound
	}
	delete(s.clubs, id)
	for eid, e := range s.events {
		if e.ClubID == id {
			delete(s.events, eid)
		}
	}
	for key := range s.memberships {
		if key.clubID == id {
			delete(s.memberships, key)
		}
	}
	return nil
}

func (s *InMemoryClubStore) SaveEvent(_ context.Context, e *club.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID] = *e
	return nil
}

func (s *InMemoryClubStore) ListEvents(_ context.Context, clubID string) ([]*club.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*club.Event
	for _, e := range s.events {
		if e.ClubID == clubID {
			cp := e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

func (s *InMemoryClubStore) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return club.ErrNotFound
	}
	delete(s.events, id)
	return nil
}

func (s *InMemoryClubStore) SaveMembership(_ context.Context, m *club.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memberships[membershipKey{m.ClubID, m.UserID}] = *m
	return nil
}

func (s *InMemoryClubStore) GetMembership(_ context.Context, clubID, userID string) (*club.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.memberships[membershipKey{clubID, userID}]; ok {
		cp := m
		return &cp, nil
	}
	return nil, club.ErrNotFound
}

func (s *InMemoryClubStore) ListMemberships(_ context.Context, clubID string) ([]*club.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*club.Membership
	for key, m := range s.memberships {
		if key.clubID == clubID {
			cp := m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (s *InMemoryClubStore) DeleteMembership(_ context.Context, clubID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := membershipKey{clubID, userID}
	if _, ok := s.memberships[key]; !ok {
		return club.ErrNotFound
	}
	delete(s.memberships, key)
	return nil
}
