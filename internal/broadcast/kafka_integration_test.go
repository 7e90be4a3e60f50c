//go:build integration

package broadcast_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"clubhub/internal/broadcast"
	"clubhub/internal/platform/config"
	"clubhub/pkg/testutil/containers"
)

func TestKafkaChannel_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	rp := containers.GetManager().GetRedpanda(t)

	channel, err := broadcast.NewKafkaChannel(config.KafkaConfig{
		Brokers: rp.Brokers,
		Topic:   "userRoleChanged",
		GroupID: "clubhub-test",
	}, slog.Default())
	require.NoError(t, err)
	defer channel.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = channel.Run(ctx) }()

	received := make(chan broadcast.RoleChange, 1)
	channel.Subscribe(func(c broadcast.RoleChange) { received <- c })

	require.NoError(t, channel.Publish(ctx, broadcast.RoleChange{UserID: "u1"}))

	select {
	case change := <-received:
		require.Equal(t, "u1", change.UserID)
	case <-time.After(30 * time.Second):
		t.Fatal("timed out waiting for role-change event")
	}
}
