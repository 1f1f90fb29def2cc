package domain

import "context"

// Database defines lifecycle operations for the underlying persistence
// backend. Each implementation (SQLite, in-memory, etc.) owns its own
// migration strategy, ensuring the entire backend is swappable.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}

// Store is the single I/O boundary of the core: a key to JSON document store.
//
// Load decodes the document stored under key into dest and reports whether a
// usable value was found. A missing key or a document that fails to decode
// yields (false, nil) so callers start from their defaults instead of failing.
// Save encodes value as JSON and durably replaces any prior document for the
// key; the write completes (or errors) before Save returns.
type Store interface {
	Load(ctx context.Context, key string, dest any) (bool, error)
	Save(ctx context.Context, key string, value any) error
}
