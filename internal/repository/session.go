package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/msomdec/edutrack/internal/domain"
)

// Session implements domain.SessionRepository. The record holds the
// logged-in user's snapshot, or JSON null while nobody is logged in, which
// is also what a missing record decodes to.
type Session struct {
	mu    sync.Mutex
	store domain.Store
}

// NewSession creates a store-backed Session.
func NewSession(store domain.Store) *Session {
	return &Session{store: store}
}

func (s *Session) Current(ctx context.Context) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *domain.User
	if _, err := s.store.Load(ctx, sessionKey, &user); err != nil {
		return nil, fmt.Errorf("load %s: %w", sessionKey, err)
	}
	return user, nil
}

func (s *Session) Set(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, sessionKey, user); err != nil {
		return fmt.Errorf("save %s: %w", sessionKey, err)
	}
	return nil
}

func (s *Session) Clear(ctx context.Context) error {
	return s.Set(ctx, nil)
}
