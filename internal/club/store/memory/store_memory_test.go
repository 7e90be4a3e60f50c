package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubhub/internal/club"
)

func TestClubRoundTrip(t *testing.T) {
	store := New()
	ctx := context.Background()

	c := &club.Club{ID: "c1", SchoolID: "s1", Name: "Chess Club", OwnerID: "u1"}
	require.NoError(t, store.SaveClub(ctx, c))

	got, err := store.GetClub(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, c, got)

	_, err = store.GetClub(ctx, "missing")
	assert.ErrorIs(t, err, club.ErrNotFound)
}

func TestListClubsFiltersBySchool(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.SaveClub(ctx, &club.Club{ID: "c2", SchoolID: "s1", Name: "Robotics"}))
	require.NoError(t, store.SaveClub(ctx, &club.Club{ID: "c1", SchoolID: "s1", Name: "Chess"}))
	require.NoError(t, store.SaveClub(ctx, &club.Club{ID: "c3", SchoolID: "s2", Name: "Drama"}))

	clubs, err := store.ListClubs(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, "Chess", clubs[0].Name)
	assert.Equal(t, "Robotics", clubs[1].Name)
}

func TestDeleteClubCascades(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.SaveClub(ctx, &club.Club{ID: "c1", SchoolID: "s1", Name: "Chess"}))
	require.NoError(t, store.SaveEvent(ctx, &club.Event{ID: "e1", ClubID: "c1", Title: "Tournament"}))
	require.NoError(t, store.SaveMembership(ctx, &club.Membership{ClubID: "c1", UserID: "u1", Status: club.MembershipPending}))

	require.NoError(t, store.DeleteClub(ctx, "c1"))

	_, err := store.GetClub(ctx, "c1")
	assert.ErrorIs(t, err, club.ErrNotFound)
	_, err = store.GetMembership(ctx, "c1", "u1")
	assert.ErrorIs(t, err, club.ErrNotFound)

	events, err := store.ListEvents(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestMembershipLifecycle(t *testing.T) {
	store := New()
	ctx := context.Background()

	m := &club.Membership{ClubID: "c1", UserID: "u1", Status: club.MembershipPending}
	require.NoError(t, store.SaveMembership(ctx, m))

	m.Status = club.MembershipApproved
	require.NoError(t, store.SaveMembership(ctx, m))

	got, err := store.GetMembership(ctx, "c1", "u1")
	require.NoError(t, err)
	assert.Equal(t, club.MembershipApproved, got.Status)

	require.NoError(t, store.DeleteMembership(ctx, "c1", "u1"))
	assert.ErrorIs(t, store.DeleteMembership(ctx, "c1", "u1"), club.ErrNotFound)
}
