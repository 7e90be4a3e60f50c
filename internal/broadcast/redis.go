package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
)

// RedisChannel carries role-change events over Redis pub/sub so every server
// instance sharing the Redis deployment sees them.
type RedisChannel struct {
	client *redis.Client
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
	stops  []func()
}

func NewRedisChannel(client *redis.Client, logger *slog.Logger) *RedisChannel {
	return &RedisChannel{client: client, logger: logger}
}

func (c *RedisChannel) Publish(ctx context.Context, change RoleChange) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return err
	}
	return c.client.Publish(ctx, UserRoleChanged, payload).Err()
}

// Subscribe opens a dedicated Redis subscription serviced by its own
// goroutine. Malformed payloads are logged and dropped.
func (c *RedisChannel) Subscribe(fn func(RoleChange)) func() {
	ctx, cancel := context.WithCancel(context.Background())
	pubsub := c.client.Subscribe(ctx, UserRoleChanged)

	go func() {
		for msg := range pubsub.Channel() {
			var change RoleChange
			if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
				c.logger.Warn("dropping malformed role-change payload",
					"channel", UserRoleChanged,
					"error", err,
				)
				continue
			}
			fn(change)
		}
	}()

	stop := func() {
		cancel()
		_ = pubsub.Close()
	}

	c.mu.Lock()
	c.stops = append(c.stops, stop)
	c.mu.Unlock()

	return stop
}

// Close tears down all live subscriptions.
func (c *RedisChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	for _, stop := range c.stops {
		stop()
	}
	return nil
}
