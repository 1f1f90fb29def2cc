package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/msomdec/edutrack/internal/domain"
)

// UserDirectory implements domain.UserRepository over the store's user list
// record. Usernames are unique and compared case-sensitively.
type UserDirectory struct {
	mu    sync.Mutex
	store domain.Store
}

// NewUserDirectory creates a store-backed UserDirectory.
func NewUserDirectory(store domain.Store) *UserDirectory {
	return &UserDirectory{store: store}
}

func (d *UserDirectory) Create(ctx context.Context, user *domain.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	users, err := d.load(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Username == user.Username {
			return domain.ErrDuplicateUsername
		}
	}

	user.ID = uuid.NewString()
	users = append(users, *user)
	return d.save(ctx, users)
}

func (d *UserDirectory) GetByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	users, err := d.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username == username && u.Password == password {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (d *UserDirectory) SetDarkPreference(ctx context.Context, userID string, dark bool) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	users, err := d.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == userID {
			users[i].DarkPreference = dark
			if err := d.save(ctx, users); err != nil {
				return nil, err
			}
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (d *UserDirectory) load(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if _, err := d.store.Load(ctx, usersKey, &users); err != nil {
		return nil, fmt.Errorf("load %s: %w", usersKey, err)
	}
	return users, nil
}

func (d *UserDirectory) save(ctx context.Context, users []domain.User) error {
	if err := d.store.Save(ctx, usersKey, users); err != nil {
		return fmt.Errorf("save %s: %w", usersKey, err)
	}
	return nil
}
