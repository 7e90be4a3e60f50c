package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubhub/internal/profile"
)

func TestInMemoryProfileStore(t *testing.T) {
	ctx := context.Background()
	store := New()

	t.Run("missing profile returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetProfile(ctx, "missing")
		assert.ErrorIs(t, err, profile.ErrNotFound)
	})

	t.Run("save then get returns a copy", func(t *testing.T) {
		p := &profile.Profile{
			ID:       "u1",
			Role:     profile.RoleStudent,
			SchoolID: "s1",
			Email:    "u1@example.com",
		}
		require.NoError(t, store.SaveProfile(ctx, p))

		got, err := store.GetProfile(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, p, got)

		got.Role = profile.RoleAdmin
		again, err := store.GetProfile(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, profile.RoleStudent, again.Role, "mutating a returned profile must not affect the store")
	})

	t.Run("delete removes the document", func(t *testing.T) {
		store.Delete(ctx, "u1")
		_, err := store.GetProfile(ctx, "u1")
		assert.ErrorIs(t, err, profile.ErrNotFound)
	})
}
