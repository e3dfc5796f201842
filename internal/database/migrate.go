package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Migration is one versioned schema change. Versions are applied in order
// and recorded in schema_migrations so each runs once.
type Migration struct {
	Version int
	Name    string
	Stmts   []string
}

// Migrations is the schema history of the booking directory.
var Migrations = []Migration{
	{
		Version: 1,
		Name:    "create venues",
		Stmts: []string{`CREATE TABLE IF NOT EXISTS venues (
	id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	name                VARCHAR(120) NOT NULL,
	city                VARCHAR(120) NOT NULL,
	state               VARCHAR(120) NOT NULL,
	address             VARCHAR(120) NOT NULL,
	phone               VARCHAR(120) NOT NULL DEFAULT '',
	image_link          VARCHAR(500) NOT NULL DEFAULT '',
	genres              JSON NOT NULL,
	website             VARCHAR(500) NOT NULL DEFAULT '',
	facebook_link       VARCHAR(500) NOT NULL DEFAULT '',
	seeking_talent      BOOLEAN NOT NULL DEFAULT FALSE,
	seeking_description VARCHAR(500) NOT NULL DEFAULT '',
	INDEX idx_venues_location (state, city)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	},
	{
		Version: 2,
		Name:    "create artists",
		Stmts: []string{`CREATE TABLE IF NOT EXISTS artists (
	id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	name                VARCHAR(120) NOT NULL,
	city                VARCHAR(120) NOT NULL,
	state               VARCHAR(120) NOT NULL,
	phone               VARCHAR(120) NOT NULL DEFAULT '',
	genres              JSON NOT NULL,
	image_link          VARCHAR(500) NOT NULL DEFAULT '',
	website             VARCHAR(500) NOT NULL DEFAULT '',
	facebook_link       VARCHAR(500) NOT NULL DEFAULT '',
	seeking_venue       BOOLEAN NOT NULL DEFAULT FALSE,
	seeking_description VARCHAR(500) NOT NULL DEFAULT '',
	INDEX idx_artists_name (name)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	},
	{
		Version: 3,
		Name:    "create shows",
		Stmts: []string{`CREATE TABLE IF NOT EXISTS shows (
	id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	venue_id   BIGINT UNSIGNED NOT NULL,
	artist_id  BIGINT UNSIGNED NOT NULL,
	start_time DATETIME NOT NULL,
	INDEX idx_shows_venue_start (venue_id, start_time),
	INDEX idx_shows_artist_start (artist_id, start_time),
	CONSTRAINT fk_shows_venue FOREIGN KEY (venue_id) REFERENCES venues (id) ON DELETE RESTRICT,
	CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists (id) ON DELETE RESTRICT
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	},
}

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    INT NOT NULL PRIMARY KEY,
	name       VARCHAR(120) NOT NULL,
	applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// Migrate applies every migration newer than the recorded schema version and
// returns the names of the ones it ran. MySQL commits DDL implicitly, so each
// migration is recorded right after its statements succeed.
func Migrate(ctx context.Context, db *sql.DB) ([]string, error) {
	return apply(ctx, db, Migrations)
}

func apply(ctx context.Context, db *sql.DB, migrations []Migration) ([]string, error) {
	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}
	var current int
	if err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return nil, fmt.Errorf("read schema version: %w", err)
	}
	applied := make([]string, 0)
	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		for _, stmt := range m.Stmts {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return applied, fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
			}
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version, name) VALUES (?, ?)`, m.Version, m.Name); err != nil {
			return applied, fmt.Errorf("record migration %d: %w", m.Version, err)
		}
		applied = append(applied, fmt.Sprintf("%03d_%s", m.Version, m.Name))
	}
	return applied, nil
}
