// Package broadcast carries cross-instance invalidation events. The session
// core only depends on the Channel interface, so the same logic runs whether
// the transport is the in-process bus, Redis pub/sub, or Kafka.
package broadcast

import "context"

// UserRoleChanged is the event channel name for role/permission changes.
const UserRoleChanged = "userRoleChanged"

// RoleChange announces that a user's role or school linkage was modified and
// any cached profile for that user must be re-fetched immediately.
type RoleChange struct {
	UserID string `json:"user_id"`
}

// Channel is an at-most-once, best-effort pub/sub fan-out. Subscribers
// receive events published after they subscribe; delivery order is
// per-publisher FIFO. The returned function removes the subscription.
type Channel interface {
	Publish(ctx context.Context, change RoleChange) error
	Subscribe(fn func(RoleChange)) (unsubscribe func())
}
