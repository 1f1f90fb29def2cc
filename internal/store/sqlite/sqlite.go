package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/msomdec/edutrack/internal/store/sqlite/migrations"
)

// DB is a SQLite-backed key to JSON document store. It implements
// domain.Store and domain.Database.
type DB struct {
	sdb *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	sdb, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := sdb.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		sdb.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := sdb.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		sdb.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Set a reasonable connection pool for SQLite.
	sdb.SetMaxOpenConns(1)

	if err := sdb.PingContext(context.Background()); err != nil {
		sdb.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{sdb: sdb}, nil
}

// Migrate applies all unapplied schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.sdb)
}

// Close closes the underlying database handle.
func (d *DB) Close() error {
	return d.sdb.Close()
}

// Load decodes the document stored under key into dest. A missing key or a
// document that no longer decodes yields (false, nil): callers keep their
// defaults and corruption is logged rather than propagated.
func (d *DB) Load(ctx context.Context, key string, dest any) (bool, error) {
	var raw []byte
	err := d.sdb.QueryRowContext(ctx,
		`SELECT value FROM store WHERE key = ?`, key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query store key %q: %w", key, err)
	}

	if !json.Valid(raw) {
		slog.Warn("discarding corrupt store record", "key", key)
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		slog.Warn("discarding store record of unexpected shape", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// Save encodes value as JSON and durably replaces any prior document for key.
func (d *DB) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode store key %q: %w", key, err)
	}

	_, err = d.sdb.ExecContext(ctx,
		`INSERT INTO store (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save store key %q: %w", key, err)
	}
	return nil
}
