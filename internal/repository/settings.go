package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/msomdec/edutrack/internal/domain"
)

// Settings implements domain.SettingsRepository. It carries the legacy
// global dark-mode flag kept for backward compatibility with data written
// before preferences became per-user.
type Settings struct {
	mu    sync.Mutex
	store domain.Store
}

// NewSettings creates a store-backed Settings.
func NewSettings(store domain.Store) *Settings {
	return &Settings{store: store}
}

// LegacyDark returns the global flag; a missing record defaults to light.
func (s *Settings) LegacyDark(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var dark bool
	if _, err := s.store.Load(ctx, darkKey, &dark); err != nil {
		return false, fmt.Errorf("load %s: %w", darkKey, err)
	}
	return dark, nil
}

func (s *Settings) SetLegacyDark(ctx context.Context, dark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, darkKey, dark); err != nil {
		return fmt.Errorf("save %s: %w", darkKey, err)
	}
	return nil
}
