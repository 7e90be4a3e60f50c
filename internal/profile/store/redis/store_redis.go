// Package redis provides the Redis-backed profile store. Profiles are stored
// as JSON documents keyed by user ID, matching the document-store shape the
// session core expects.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"clubhub/internal/profile"
	dErrors "clubhub/pkg/domain-errors"
)

var getProfileDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "clubhub_profile_get_duration_ms",
	Help:    "Latency of profile document reads in milliseconds",
	Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
})

const profileKeyPrefix = "users:"

// RedisProfileStore is a Redis-backed implementation of profile.Store for
// deployments where multiple instances share profile documents.
type RedisProfileStore struct {
	client *redis.Client
}

func New(client *redis.Client) *RedisProfileStore {
	return &RedisProfileStore{client: client}
}

func (s *RedisProfileStore) GetProfile(ctx context.Context, id string) (*profile.Profile, error) {
	start := time.Now()
	defer func() {
		getProfileDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	raw, err := s.client.Get(ctx, profileKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, profile.ErrNotFound
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "profile read failed")
	}

	var p profile.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "profile document is malformed")
	}
	return &p, nil
}

func (s *RedisProfileStore) SaveProfile(ctx context.Context, p *profile.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "profile encode failed")
	}
	if err := s.client.Set(ctx, profileKeyPrefix+p.ID, raw, 0).Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "profile write failed")
	}
	return nil
}
