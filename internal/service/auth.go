package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/msomdec/edutrack/internal/domain"
)

// AuthService handles registration, login, the active session, and theme
// preferences. The active session decides which data partition every other
// service operates on.
type AuthService struct {
	users       domain.UserRepository
	session     domain.SessionRepository
	settings    domain.SettingsRepository
	classes     domain.PartitionRepository[domain.ClassEntry]
	assignments domain.PartitionRepository[domain.AssignmentEntry]
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	users domain.UserRepository,
	session domain.SessionRepository,
	settings domain.SettingsRepository,
	classes domain.PartitionRepository[domain.ClassEntry],
	assignments domain.PartitionRepository[domain.AssignmentEntry],
) *AuthService {
	return &AuthService{
		users:       users,
		session:     session,
		settings:    settings,
		classes:     classes,
		assignments: assignments,
	}
}

// Register creates a new account, initializes its empty class and assignment
// lists, and makes it the active session. A blank display name defaults to
// the username.
func (s *AuthService) Register(ctx context.Context, username, password, name string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	displayName := strings.TrimSpace(name)
	if displayName == "" {
		displayName = username
	}

	user := &domain.User{
		Username: username,
		Password: password,
		Name:     displayName,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.classes.Init(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("init class list: %w", err)
	}
	if err := s.assignments.Init(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("init assignment list: %w", err)
	}

	if err := s.session.Set(ctx, user); err != nil {
		return nil, fmt.Errorf("set session: %w", err)
	}

	return user, nil
}

// Login verifies credentials and makes the matching user the active session.
// The user's stored dark preference becomes the active theme.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := s.session.Set(ctx, user); err != nil {
		return nil, fmt.Errorf("set session: %w", err)
	}

	return user, nil
}

// Logout clears the session and resets the active theme to light.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := s.settings.SetLegacyDark(ctx, false); err != nil {
		return fmt.Errorf("reset theme: %w", err)
	}
	return nil
}

// Current returns the active user, or nil when no session is active.
func (s *AuthService) Current(ctx context.Context) (*domain.User, error) {
	return s.session.Current(ctx)
}

// ActiveUserID returns the active partition key: the logged-in user's id,
// or the guest sentinel.
func (s *AuthService) ActiveUserID(ctx context.Context) (string, error) {
	user, err := s.session.Current(ctx)
	if err != nil {
		return "", err
	}
	if user == nil {
		return domain.GuestUserID, nil
	}
	return user.ID, nil
}

// Theme returns whether the active theme is dark. A logged-in user's stored
// preference wins; otherwise the legacy global flag applies.
func (s *AuthService) Theme(ctx context.Context) (bool, error) {
	user, err := s.session.Current(ctx)
	if err != nil {
		return false, err
	}
	if user != nil {
		return user.DarkPreference, nil
	}
	return s.settings.LegacyDark(ctx)
}

// SetDarkPreference persists the theme choice: onto the active user's record
// (and the session snapshot) when logged in, onto the legacy global flag
// otherwise. The logged-in path never touches the global flag.
func (s *AuthService) SetDarkPreference(ctx context.Context, dark bool) error {
	user, err := s.session.Current(ctx)
	if err != nil {
		return err
	}

	if user == nil {
		if err := s.settings.SetLegacyDark(ctx, dark); err != nil {
			return fmt.Errorf("set theme: %w", err)
		}
		return nil
	}

	updated, err := s.users.SetDarkPreference(ctx, user.ID, dark)
	if err != nil {
		return fmt.Errorf("set dark preference: %w", err)
	}
	if err := s.session.Set(ctx, updated); err != nil {
		return fmt.Errorf("refresh session: %w", err)
	}
	return nil
}
