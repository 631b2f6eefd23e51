package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jzembower/balance/internal/domain"
	"github.com/jzembower/balance/internal/repository"
)

// Manager resolves the installation's user, creating and persisting one
// on first use. Constructed once at startup and passed to whoever needs
// user context; there is no global instance.
type Manager struct {
	users    repository.UserRepo
	testMode bool
}

// NewManager creates a Manager backed by the given user store.
func NewManager(users repository.UserRepo, testMode bool) *Manager {
	return &Manager{users: users, testMode: testMode}
}

// CurrentUser returns the stored user, creating one if none exists yet.
func (m *Manager) CurrentUser(ctx context.Context) (*domain.User, error) {
	u, err := m.users.Get(ctx)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	name := "User"
	if m.testMode {
		name = "Test User"
	}
	u = &domain.User{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		TestMode:  m.testMode,
	}
	if err := m.users.Upsert(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return u, nil
}
