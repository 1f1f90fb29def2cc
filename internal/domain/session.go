package domain

import "context"

// GuestUserID is the partition key used while no session is active.
const GuestUserID = "guest"

// SessionRepository persists the active session as a snapshot of the
// logged-in user, so a restart resumes where the user left off.
type SessionRepository interface {
	// Current returns the active user, or nil when no session is active.
	Current(ctx context.Context) (*User, error)
	Set(ctx context.Context, user *User) error
	Clear(ctx context.Context) error
}
