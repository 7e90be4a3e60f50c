//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"clubhub/internal/club"
	pgstore "clubhub/internal/club/store/postgres"
	"clubhub/pkg/testutil/containers"
)

type PostgresClubStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	pool  *pgxpool.Pool
	store *pgstore.PostgresClubStore
}

func TestPostgresClubStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresClubStoreSuite))
}

func (s *PostgresClubStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.pg = mgr.GetPostgres(s.T())

	pool, err := pgstore.Open(context.Background(), s.pg.URL)
	s.Require().NoError(err)
	s.pool = pool

	s.Require().NoError(pgstore.Migrate(context.Background(), pool))
	s.store = pgstore.New(pool)
}

func (s *PostgresClubStoreSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresClubStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateAll(context.Background(), "club_memberships", "club_events", "clubs"))
}

func (s *PostgresClubStoreSuite) TestGetClub_NotFound() {
	_, err := s.store.GetClub(context.Background(), "missing")
	s.Require().ErrorIs(err, club.ErrNotFound)
}

func (s *PostgresClubStoreSuite) TestSaveAndGetClub_RoundTrip() {
	ctx := context.Background()
	c := &club.Club{
		ID:          "c1",
		SchoolID:    "s1",
		Name:        "Chess Club",
		Description: "Weekly chess meetups",
		Tags:        []string{"chess", "games"},
		OwnerID:     "u1",
	}
	s.Require().NoError(s.store.SaveClub(ctx, c))

	got, err := s.store.GetClub(ctx, "c1")
	s.Require().NoError(err)
	s.Equal(c, got)
}

func (s *PostgresClubStoreSuite) TestSaveClub_UpsertKeepsOwner() {
	ctx := context.Background()
	c := &club.Club{ID: "c2", SchoolID: "s1", Name: "Robotics", OwnerID: "u1"}
	s.Require().NoError(s.store.SaveClub(ctx, c))

	c.Name = "Robotics & Engineering"
	c.OwnerID = "someone-else"
	s.Require().NoError(s.store.SaveClub(ctx, c))

	got, err := s.store.GetClub(ctx, "c2")
	s.Require().NoError(err)
	s.Equal("Robotics & Engineering", got.Name)
	s.Equal("u1", got.OwnerID)
}

func (s *PostgresClubStoreSuite) TestListClubs_FiltersBySchool() {
	ctx := context.Background()
	s.Require().NoError(s.store.SaveClub(ctx, &club.Club{ID: "c1", SchoolID: "s1", Name: "Chess", OwnerID: "u1"}))
	s.Require().NoError(s.store.SaveClub(ctx, &club.Club{ID: "c2", SchoolID: "s1", Name: "Robotics", OwnerID: "u1"}))
	s.Require().NoError(s.store.SaveClub(ctx, &club.Club{ID: "c3", SchoolID: "s2", Name: "Drama", OwnerID: "u2"}))

	clubs, err := s.store.ListClubs(ctx, "s1")
	s.Require().NoError(err)
	s.Require().Len(clubs, 2)
	s.Equal("Chess", clubs[0].Name)
	s.Equal("Robotics", clubs[1].Name)
}

func (s *PostgresClubStoreSuite) TestDeleteClub_CascadesEventsAndMemberships() {
	ctx := context.Background()
	s.Require().NoError(s.store.SaveClub(ctx, &club.Club{ID: "c1", SchoolID: "s1", Name: "Chess", OwnerID: "u1"}))
	s.Require().NoError(s.store.SaveEvent(ctx, &club.Event{
		ID:       "e1",
		ClubID:   "c1",
		Title:    "Tournament",
		StartsAt: time.Now().UTC().Truncate(time.Second),
	}))
	s.Require().NoError(s.store.SaveMembership(ctx, &club.Membership{ClubID: "c1", UserID: "u2", Status: club.MembershipPending}))

	s.Require().NoError(s.store.DeleteClub(ctx, "c1"))

	_, err := s.store.GetClub(ctx, "c1")
	s.Require().ErrorIs(err, club.ErrNotFound)
	_, err = s.store.GetMembership(ctx, "c1", "u2")
	s.Require().ErrorIs(err, club.ErrNotFound)

	events, err := s.store.ListEvents(ctx, "c1")
	s.Require().NoError(err)
	s.Empty(events)
}

func (s *PostgresClubStoreSuite) TestEvents_OrderedByStart() {
	ctx := context.Background()
	s.Require().NoError(s.store.SaveClub(ctx, &club.Club{ID: "c1", SchoolID: "s1", Name: "Chess", OwnerID: "u1"}))

	base := time.Now().UTC().Truncate(time.Second)
	s.Require().NoError(s.store.SaveEvent(ctx, &club.Event{ID: "e2", ClubID: "c1", Title: "Later", StartsAt: base.Add(time.Hour)}))
	s.Require().NoError(s.store.SaveEvent(ctx, &club.Event{ID: "e1", ClubID: "c1", Title: "Sooner", StartsAt: base}))

	events, err := s.store.ListEvents(ctx, "c1")
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal("Sooner", events[0].Title)
	s.Equal("Later", events[1].Title)
}

func (s *PostgresClubStoreSuite) TestMembership_Lifecycle() {
	ctx := context.Background()
	s.Require().NoError(s.store.SaveClub(ctx, &club.Club{ID: "c1", SchoolID: "s1", Name: "Chess", OwnerID: "u1"}))

	m := &club.Membership{ClubID: "c1", UserID: "u2", Status: club.MembershipPending}
	s.Require().NoError(s.store.SaveMembership(ctx, m))

	m.Status = club.MembershipApproved
	s.Require().NoError(s.store.SaveMembership(ctx, m))

	got, err := s.store.GetMembership(ctx, "c1", "u2")
	s.Require().NoError(err)
	s.Equal(club.MembershipApproved, got.Status)

	s.Require().NoError(s.store.DeleteMembership(ctx, "c1", "u2"))
	s.Require().ErrorIs(s.store.DeleteMembership(ctx, "c1", "u2"), club.ErrNotFound)
}
