package broadcast

import (
	"context"
	"sync"
)

// Bus is the in-process Channel used by single-instance deployments and
// tests. Delivery is synchronous: Publish returns after every subscriber has
// seen the event.
type Bus struct {
	mu          sync.Mutex
	subscribers map[int]func(RoleChange)
	nextSubID   int
}

func NewBus() *Bus {
	return &Bus{subscribers: make(map[int]func(RoleChange))}
}

func (b *Bus) Publish(_ context.Context, change RoleChange) error {
	b.mu.Lock()
	fns := make([]func(RoleChange), 0, len(b.subscribers))
	for _, fn := range b.subscribers {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(change)
	}
	return nil
}

func (b *Bus) Subscribe(fn func(RoleChange)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextSubID
	b.nextSubID++
	b.subscribers[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subscribers, id)
	}
}
