// Package postgres persists clubs, events, and memberships in PostgreSQL
// through a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clubhub/internal/club"
)

type PostgresClubStore struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *PostgresClubStore {
	return &PostgresClubStore{pool: pool}
}

// Open connects a pool to the given URL and verifies it with a ping.
func Open(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return pool, nil
}

// Migrate creates the club tables if they do not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS clubs (
			id TEXT PRIMARY KEY,
			school_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			tags TEXT[] NOT NULL DEFAULT '{}',
			owner_id TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS clubs_school_id_idx ON clubs (school_id)`,
		`CREATE TABLE IF NOT EXISTS club_events (
			id TEXT PRIMARY KEY,
			club_id TEXT NOT NULL REFERENCES clubs (id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			starts_at TIMESTAMPTZ NOT NULL,
			location TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS club_memberships (
			club_id TEXT NOT NULL REFERENCES clubs (id) ON DELETE CASCADE,
			user_id TEXT NOT NULL,
			status TEXT NOT NULL,
			PRIMARY KEY (club_id, user_id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run club migration: %w", err)
		}
	}
	return nil
}

func (s *PostgresClubStore) SaveClub(ctx context.Context, c *club.Club) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO clubs (id, school_id, name, description, tags, owner_id)
		VALUES ($1, $2, $3, $4, COALESCE($5, '{}'), $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    description = EXCLUDED.description,
		    tags = EXCLUDED.tags
	`, c.ID, c.SchoolID, c.Name, c.Description, c.Tags, c.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to save club: %w", err)
	}
	return nil
}

func (s *PostgresClubStore) GetClub(ctx context.Context, id string) (*club.Club, error) {
	var c club.Club
	row := s.pool.QueryRow(ctx, `
		SELECT id, school_id, name, description, tags, owner_id
		FROM clubs
		WHERE id = $1
	`, id)
	err := row.Scan(&c.ID, &c.SchoolID, &c.Name, &c.Description, &c.Tags, &c.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, club.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get club: %w", err)
	}
	return &c, nil
}

func (s *PostgresClubStore) ListClubs(ctx context.Context, schoolID string) ([]*club.Club, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, school_id, name, description, tags, owner_id
		FROM clubs
		WHERE school_id = $1
		ORDER BY name, id
	`, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	defer rows.Close()

	var clubs []*club.Club
	for rows.Next() {
		var c club.Club
		if err := rows.Scan(&c.ID, &c.SchoolID, &c.Name, &c.Description, &c.Tags, &c.OwnerID); err != nil {
			return nil, fmt.Errorf("failed to scan club: %w", err)
		}
		clubs = append(clubs, &c)
	}
	return clubs, rows.Err()
}

func (s *PostgresClubStore) DeleteClub(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM clubs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete club: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return club.ErrNotFound
	}
	return nil
}

func (s *PostgresClubStore) SaveEvent(ctx context.Context, e *club.Event) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO club_events (id, club_id, title, starts_at, location)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title,
		    starts_at = EXCLUDED.starts_at,
		    location = EXCLUDED.location
	`, e.ID, e.ClubID, e.Title, e.StartsAt, e.Location)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (s *PostgresClubStore) ListEvents(ctx context.Context, clubID string) ([]*club.Event, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, club_id, title, starts_at, location
		FROM club_events
		WHERE club_id = $1
		ORDER BY starts_at, id
	`, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*club.Event
	for rows.Next() {
		var e club.Event
		if err := rows.Scan(&e.ID, &e.ClubID, &e.Title, &e.StartsAt, &e.Location); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}

func (s *PostgresClubStore) DeleteEvent(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM club_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return club.ErrNotFound
	}
	return nil
}

func (s *PostgresClubStore) SaveMembership(ctx context.Context, m *club.Membership) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO club_memberships (club_id, user_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (club_id, user_id) DO UPDATE
		SET status = EXCLUDED.status
	`, m.ClubID, m.UserID, string(m.Status))
	if err != nil {
		return fmt.Errorf("failed to save membership: %w", err)
	}
	return nil
}

func (s *PostgresClubStore) GetMembership(ctx context.Context, clubID, userID string) (*club.Membership, error) {
	var (
		m      club.Membership
		status string
	)
	row := s.pool.QueryRow(ctx, `
		SELECT club_id, user_id, status
		FROM club_memberships
		WHERE club_id = $1 AND user_id = $2
	`, clubID, userID)
	err := row.Scan(&m.ClubID, &m.UserID, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, club.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	m.Status = club.MembershipStatus(status)
	return &m, nil
}

func (s *PostgresClubStore) ListMemberships(ctx context.Context, clubID string) ([]*club.Membership, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT club_id, user_id, status
		FROM club_memberships
		WHERE club_id = $1
		ORDER BY user_id
	`, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var members []*club.Membership
	for rows.Next() {
		var (
			m      club.Membership
			status string
		)
		if err := rows.Scan(&m.ClubID, &m.UserID, &status); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		m.Status = club.MembershipStatus(status)
		members = append(members, &m)
	}
	return members, rows.Err()
}

func (s *PostgresClubStore) DeleteMembership(ctx context.Context, clubID, userID string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM club_memberships WHERE club_id = $1 AND user_id = $2`, clubID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return club.ErrNotFound
	}
	return nil
}
