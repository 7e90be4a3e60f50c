package session

import (
	"sync"
	"time"

	"clubhub/internal/profile"
)

// CacheEntry is the single cached profile plus its write timestamp.
type CacheEntry struct {
	Profile   *profile.Profile
	FetchedAt time.Time
}

// ProfileCache is a single-slot cache of the last successfully fetched
// profile, keyed implicitly by the profile's own ID. An entry whose profile
// ID does not match the requested identity is a logical miss, never an
// error. The slot does not survive process restarts; durability is the
// document store's job.
type ProfileCache struct {
	mu    sync.Mutex
	entry *CacheEntry
	now   func() time.Time
}

func NewProfileCache() *ProfileCache {
	return &ProfileCache{now: time.Now}
}

// Get returns a copy of the cached entry only when it belongs to the given
// identity; nil otherwise.
func (c *ProfileCache) Get(identityID string) *CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entry == nil || c.entry.Profile == nil || c.entry.Profile.ID != identityID {
		return nil
	}
	return &CacheEntry{
		Profile:   c.entry.Profile.Clone(),
		FetchedAt: c.entry.FetchedAt,
	}
}

// Set overwrites the slot with the given profile. Every write is a full
// replacement; there are no partial updates.
func (c *ProfileCache) Set(p *profile.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = &CacheEntry{Profile: p.Clone(), FetchedAt: c.now()}
}

// Clear empties the slot. Called on sign-out.
func (c *ProfileCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = nil
}
