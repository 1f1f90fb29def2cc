package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/edutrack/internal/domain"
	"github.com/msomdec/edutrack/internal/repository"
	"github.com/msomdec/edutrack/internal/store/memory"
)

func seedUser(t *testing.T, d *repository.UserDirectory, username, password string) *domain.User {
	t.Helper()
	user := &domain.User{Username: username, Password: password, Name: username}
	if err := d.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return user
}

func TestUserDirectory_CreateAssignsUniqueIDs(t *testing.T) {
	d := repository.NewUserDirectory(memory.New())

	alice := seedUser(t, d, "alice", "pw1")
	bob := seedUser(t, d, "bob", "pw2")

	if alice.ID == "" || bob.ID == "" {
		t.Fatal("expected ids to be assigned")
	}
	if alice.ID == bob.ID {
		t.Fatalf("expected distinct ids, both were %q", alice.ID)
	}
}

func TestUserDirectory_CreateRejectsDuplicateUsername(t *testing.T) {
	d := repository.NewUserDirectory(memory.New())
	ctx := context.Background()

	seedUser(t, d, "alice", "original")

	err := d.Create(ctx, &domain.User{Username: "alice", Password: "other"})
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	// The rejected create must not have touched the existing account.
	got, err := d.GetByCredentials(ctx, "alice", "original")
	if err != nil {
		t.Fatalf("GetByCredentials: %v", err)
	}
	if got.Password != "original" {
		t.Fatalf("expected original account intact, got %+v", got)
	}
}

func TestUserDirectory_UsernamesAreCaseSensitive(t *testing.T) {
	d := repository.NewUserDirectory(memory.New())

	seedUser(t, d, "alice", "pw")
	if err := d.Create(context.Background(), &domain.User{Username: "Alice", Password: "pw"}); err != nil {
		t.Fatalf("expected differently-cased username to be accepted, got %v", err)
	}
}

func TestUserDirectory_GetByCredentials(t *testing.T) {
	d := repository.NewUserDirectory(memory.New())
	ctx := context.Background()

	alice := seedUser(t, d, "alice", "secret")

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"exact match", "alice", "secret", nil},
		{"wrong password", "alice", "nope", domain.ErrNotFound},
		{"unknown user", "carol", "secret", domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.GetByCredentials(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetByCredentials: %v", err)
			}
			if got.ID != alice.ID {
				t.Fatalf("expected alice, got %+v", got)
			}
		})
	}
}

func TestUserDirectory_SetDarkPreference(t *testing.T) {
	d := repository.NewUserDirectory(memory.New())
	ctx := context.Background()

	alice := seedUser(t, d, "alice", "pw")

	updated, err := d.SetDarkPreference(ctx, alice.ID, true)
	if err != nil {
		t.Fatalf("SetDarkPreference: %v", err)
	}
	if !updated.DarkPreference {
		t.Fatal("expected returned user to carry the new preference")
	}

	got, err := d.GetByCredentials(ctx, "alice", "pw")
	if err != nil {
		t.Fatalf("GetByCredentials: %v", err)
	}
	if !got.DarkPreference {
		t.Fatal("expected preference to be persisted")
	}
}

func TestUserDirectory_SetDarkPreferenceUnknownID(t *testing.T) {
	d := repository.NewUserDirectory(memory.New())

	_, err := d.SetDarkPreference(context.Background(), "no-such-id", true)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
