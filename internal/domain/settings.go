package domain

import "context"

// SettingsRepository persists the legacy global dark-mode flag. The flag
// predates per-user preferences and is consulted only while nobody is
// logged in; a logged-in user's stored preference always wins.
type SettingsRepository interface {
	LegacyDark(ctx context.Context) (bool, error)
	SetLegacyDark(ctx context.Context, dark bool) error
}
