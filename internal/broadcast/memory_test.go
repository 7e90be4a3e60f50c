package broadcast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()

	var first, second []RoleChange
	bus.Subscribe(func(c RoleChange) { first = append(first, c) })
	bus.Subscribe(func(c RoleChange) { second = append(second, c) })

	require.NoError(t, bus.Publish(context.Background(), RoleChange{UserID: "u1"}))

	assert.Equal(t, []RoleChange{{UserID: "u1"}}, first)
	assert.Equal(t, []RoleChange{{UserID: "u1"}}, second)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	var seen int
	unsubscribe := bus.Subscribe(func(RoleChange) { seen++ })

	require.NoError(t, bus.Publish(context.Background(), RoleChange{UserID: "u1"}))
	unsubscribe()
	require.NoError(t, bus.Publish(context.Background(), RoleChange{UserID: "u1"}))

	assert.Equal(t, 1, seen)
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	assert.NoError(t, bus.Publish(context.Background(), RoleChange{UserID: "nobody"}))
}
