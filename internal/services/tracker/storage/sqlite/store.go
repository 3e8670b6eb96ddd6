// Package sqlite implements the profile catalog on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/louisbranch/hitpoints/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/hitpoints/internal/services/tracker/storage"
	"github.com/louisbranch/hitpoints/internal/services/tracker/storage/sqlite/migrations"
)

// Store is the SQLite-backed profile catalog.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ storage.ProfileStore = (*Store)(nil)

// Open opens (creating if needed) the catalog at path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.ProfilesFS, "profiles"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the underlying SQLite database.
//
// Close is nil-safe so callers can defer it in all startup paths.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutProfile inserts or replaces a profile and its parts in one transaction.
func (s *Store) PutProfile(ctx context.Context, profile storage.Profile) error {
	name := strings.TrimSpace(profile.Name)
	if name == "" {
		return storage.ErrNameRequired
	}
	now := s.now().UTC()
	createdAt := profile.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put profile %s: %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO profiles (name, source, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET source = excluded.source, updated_at = excluded.updated_at`,
		name, profile.Source, createdAt.UnixMilli(), now.UnixMilli(),
	); err != nil {
		return fmt.Errorf("put profile %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM profile_parts WHERE profile_name = ?`, name); err != nil {
		return fmt.Errorf("clear profile parts %s: %w", name, err)
	}
	for _, part := range profile.Parts {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO profile_parts (profile_name, part, value, severed) VALUES (?, ?, ?, ?)`,
			name, part.Part, part.Value, boolToInt(part.Severed),
		); err != nil {
			return fmt.Errorf("put profile part %s/%s: %w", name, part.Part, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit profile %s: %w", name, err)
	}
	return nil
}

// GetProfile returns the named profile with its parts ordered by name.
func (s *Store) GetProfile(ctx context.Context, name string) (storage.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.Profile{}, storage.ErrNameRequired
	}

	var (
		profile   storage.Profile
		createdAt int64
		updatedAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT name, source, created_at, updated_at FROM profiles WHERE name = ?`, name,
	).Scan(&profile.Name, &profile.Source, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Profile{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Profile{}, fmt.Errorf("get profile %s: %w", name, err)
	}
	profile.CreatedAt = time.UnixMilli(createdAt).UTC()
	profile.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT part, value, severed FROM profile_parts WHERE profile_name = ? ORDER BY part`, name)
	if err != nil {
		return storage.Profile{}, fmt.Errorf("list profile parts %s: %w", name, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			part    storage.ProfilePart
			severed int
		)
		if err := rows.Scan(&part.Part, &part.Value, &severed); err != nil {
			return storage.Profile{}, fmt.Errorf("scan profile part %s: %w", name, err)
		}
		part.Severed = severed != 0
		profile.Parts = append(profile.Parts, part)
	}
	if err := rows.Err(); err != nil {
		return storage.Profile{}, fmt.Errorf("iterate profile parts %s: %w", name, err)
	}
	return profile, nil
}

// ListProfiles returns all profile names in lexical order.
func (s *Store) ListProfiles(ctx context.Context) ([]string, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT name FROM profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan profile name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
