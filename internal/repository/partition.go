package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/msomdec/edutrack/internal/domain"
)

// Entry is implemented by partitioned record types. Entries are stored by
// value; WithID returns a copy with its id set.
type Entry[T any] interface {
	EntryID() string
	WithID(id string) T
}

// Partition stores ordered per-user lists of one entry kind as a single
// store record mapping userID to []T. Deleting a user's list removes the map
// key entirely; a later write lazily recreates an empty list.
type Partition[T Entry[T]] struct {
	mu    sync.Mutex
	store domain.Store
	key   string
}

func newPartition[T Entry[T]](store domain.Store, key string) *Partition[T] {
	return &Partition[T]{store: store, key: key}
}

// List returns the user's entries in insertion order.
// An absent partition is an empty list.
func (p *Partition[T]) List(ctx context.Context, userID string) ([]T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(m[userID]), nil
}

// Init creates an empty list for a fresh user id. Existing lists are kept.
func (p *Partition[T]) Init(ctx context.Context, userID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, err := p.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := m[userID]; ok {
		return nil
	}
	m[userID] = []T{}
	return p.save(ctx, m)
}

// Add assigns a fresh id to entry and appends it to the user's list,
// creating the list if absent. The stored entry is returned.
func (p *Partition[T]) Add(ctx context.Context, userID string, entry T) (T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var zero T
	m, err := p.load(ctx)
	if err != nil {
		return zero, err
	}

	entry = entry.WithID(uuid.NewString())
	m[userID] = append(m[userID], entry)
	if err := p.save(ctx, m); err != nil {
		return zero, err
	}
	return entry, nil
}

// Update replaces the entry with the given id by apply(entry).
// A missing id is a silent no-op, not an error.
func (p *Partition[T]) Update(ctx context.Context, userID, id string, apply func(T) T) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, err := p.load(ctx)
	if err != nil {
		return err
	}

	list := m[userID]
	for i, e := range list {
		if e.EntryID() == id {
			list[i] = apply(e)
			m[userID] = list
			return p.save(ctx, m)
		}
	}
	return nil
}

// Delete removes the entry with the given id. Deleting an absent id is a
// no-op, so Delete is idempotent.
func (p *Partition[T]) Delete(ctx context.Context, userID, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, err := p.load(ctx)
	if err != nil {
		return err
	}

	list := m[userID]
	for i, e := range list {
		if e.EntryID() == id {
			m[userID] = append(list[:i:i], list[i+1:]...)
			return p.save(ctx, m)
		}
	}
	return nil
}

// DeleteAll removes the user's entire list, map key included.
func (p *Partition[T]) DeleteAll(ctx context.Context, userID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, err := p.load(ctx)
	if err != nil {
		return err
	}
	delete(m, userID)
	return p.save(ctx, m)
}

func (p *Partition[T]) load(ctx context.Context) (map[string][]T, error) {
	m := make(map[string][]T)
	if _, err := p.store.Load(ctx, p.key, &m); err != nil {
		return nil, fmt.Errorf("load %s: %w", p.key, err)
	}
	if m == nil { // stored document was JSON null
		m = make(map[string][]T)
	}
	return m, nil
}

func (p *Partition[T]) save(ctx context.Context, m map[string][]T) error {
	if err := p.store.Save(ctx, p.key, m); err != nil {
		return fmt.Errorf("save %s: %w", p.key, err)
	}
	return nil
}
