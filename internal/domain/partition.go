package domain

import "context"

// PartitionRepository is the per-user CRUD contract over one entry kind.
// Lists are ordered by insertion; view ordering is re-derived on read.
type PartitionRepository[T any] interface {
	// List returns the user's entries; an absent partition is an empty list.
	List(ctx context.Context, userID string) ([]T, error)
	// Init creates an empty list for a fresh user id.
	Init(ctx context.Context, userID string) error
	// Add assigns a fresh id and appends, creating the list if absent.
	Add(ctx context.Context, userID string, entry T) (T, error)
	// Update replaces the matching entry by apply(entry); silent no-op when
	// the id is absent.
	Update(ctx context.Context, userID, id string, apply func(T) T) error
	// Delete removes the matching entry; idempotent.
	Delete(ctx context.Context, userID, id string) error
	// DeleteAll removes the user's entire list, map key included.
	DeleteAll(ctx context.Context, userID string) error
}
