// Package postgres provides the postgres-backed profile store.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/lib/pq"

	"clubhub/internal/profile"
	dErrors "clubhub/pkg/domain-errors"
)

// PostgresProfileStore persists profiles in a users table. Nullable columns
// map onto the optional profile fields.
type PostgresProfileStore struct {
	db *sql.DB
}

func New(db *sql.DB) *PostgresProfileStore {
	return &PostgresProfileStore{db: db}
}

// Open connects to postgres using the lib/pq driver.
func Open(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates the users table when absent. Kept as executable schema so
// tests and local runs need no external migration step.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id           TEXT PRIMARY KEY,
			role         TEXT,
			school_id    TEXT,
			display_name TEXT,
			email        TEXT NOT NULL,
			photo_url    TEXT
		)`)
	return err
}

func (s *PostgresProfileStore) GetProfile(ctx context.Context, id string) (*profile.Profile, error) {
	var (
		p           profile.Profile
		role        sql.NullString
		schoolID    sql.NullString
		displayName sql.NullString
		photoURL    sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, role, school_id, display_name, email, photo_url
		FROM users WHERE id = $1`, id,
	).Scan(&p.ID, &role, &schoolID, &displayName, &p.Email, &photoURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, profile.ErrNotFound
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "profile read failed")
	}

	p.Role = profile.Role(role.String)
	p.SchoolID = schoolID.String
	p.DisplayName = displayName.String
	p.PhotoURL = photoURL.String
	return &p, nil
}

func (s *PostgresProfileStore) SaveProfile(ctx context.Context, p *profile.Profile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, role, school_id, display_name, email, photo_url)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, NULLIF($6, ''))
		ON CONFLICT (id) DO UPDATE SET
			role = EXCLUDED.role,
			school_id = EXCLUDED.school_id,
			display_name = EXCLUDED.display_name,
			email = EXCLUDED.email,
			photo_url = EXCLUDED.photo_url`,
		p.ID, string(p.Role), p.SchoolID, p.DisplayName, p.Email, p.PhotoURL)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "profile write failed")
	}
	return nil
}
