// Package memory provides an in-memory domain.Store used by tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Store keeps documents as raw JSON in a map, so values round-trip through
// encoding exactly like a real backend would.
type Store struct {
	mu   sync.Mutex
	data map[string][]byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Load(ctx context.Context, key string, dest any) (bool, error) {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}

	if !json.Valid(raw) {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *Store) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode store key %q: %w", key, err)
	}

	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

// SeedRaw plants a raw document under key, bypassing encoding.
// Tests use it to simulate corrupt records.
func (s *Store) SeedRaw(key string, raw []byte) {
	s.mu.Lock()
	s.data[key] = append([]byte(nil), raw...)
	s.mu.Unlock()
}
