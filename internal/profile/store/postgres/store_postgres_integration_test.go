//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"clubhub/internal/profile"
	pgstore "clubhub/internal/profile/store/postgres"
	"clubhub/pkg/testutil/containers"
)

type PostgresProfileStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *pgstore.PostgresProfileStore
}

func TestPostgresProfileStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresProfileStoreSuite))
}

func (s *PostgresProfileStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.pg = mgr.GetPostgres(s.T())
	s.Require().NoError(pgstore.Migrate(context.Background(), s.pg.DB))
	s.store = pgstore.New(s.pg.DB)
}

func (s *PostgresProfileStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateAll(context.Background(), "users"))
}

func (s *PostgresProfileStoreSuite) TestGetProfile_NotFound() {
	_, err := s.store.GetProfile(context.Background(), "missing")
	s.Require().ErrorIs(err, profile.ErrNotFound)
}

func (s *PostgresProfileStoreSuite) TestSaveAndGetProfile_RoundTrip() {
	ctx := context.Background()
	p := &profile.Profile{
		ID:          "u1",
		Role:        profile.RoleAdmin,
		SchoolID:    "s1",
		DisplayName: "Principal Skinner",
		Email:       "skinner@example.com",
		PhotoURL:    "https://cdn.example.com/skinner.png",
	}
	s.Require().NoError(s.store.SaveProfile(ctx, p))

	got, err := s.store.GetProfile(ctx, "u1")
	s.Require().NoError(err)
	s.Equal(p, got)
}

func (s *PostgresProfileStoreSuite) TestSaveProfile_NullableFields() {
	ctx := context.Background()
	// A freshly provisioned profile has no role or school yet.
	p := &profile.Profile{ID: "u2", Email: "u2@example.com"}
	s.Require().NoError(s.store.SaveProfile(ctx, p))

	got, err := s.store.GetProfile(ctx, "u2")
	s.Require().NoError(err)
	s.Equal(profile.RoleUnset, got.Role)
	s.Empty(got.SchoolID)
}

func (s *PostgresProfileStoreSuite) TestSaveProfile_Upsert() {
	ctx := context.Background()
	p := &profile.Profile{ID: "u3", Role: profile.RoleStudent, Email: "u3@example.com"}
	s.Require().NoError(s.store.SaveProfile(ctx, p))

	p.Role = profile.RoleTeacher
	p.SchoolID = "s9"
	s.Require().NoError(s.store.SaveProfile(ctx, p))

	got, err := s.store.GetProfile(ctx, "u3")
	s.Require().NoError(err)
	s.Equal(profile.RoleTeacher, got.Role)
	s.Equal("s9", got.SchoolID)
}
