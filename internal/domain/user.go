package domain

import "context"

// User represents a registered account. Passwords are stored and compared in
// plain form: the planner is a local single-machine tool and its account
// records are not a security boundary.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	DarkPreference bool   `json:"dark"`
}

// UserRepository defines persistence operations for the user directory.
type UserRepository interface {
	// Create assigns a fresh id and stores the user.
	// Returns ErrDuplicateUsername when the username is already taken.
	Create(ctx context.Context, user *User) error
	// GetByCredentials returns the user matching both fields exactly,
	// or ErrNotFound.
	GetByCredentials(ctx context.Context, username, password string) (*User, error)
	// SetDarkPreference persists the theme preference onto the matching
	// user record and returns the updated record, or ErrNotFound.
	SetDarkPreference(ctx context.Context, userID string, dark bool) (*User, error)
}
