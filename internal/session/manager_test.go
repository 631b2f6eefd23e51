package session

import (
	"context"
	"testing"

	"github.com/jzembower/balance/internal/repository"
	"github.com/jzembower/balance/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_CreatesUserOnFirstUse(t *testing.T) {
	users := repository.NewSQLiteUserRepo(testutil.NewTestDB(t))
	mgr := NewManager(users, true)

	u, err := mgr.CurrentUser(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Test User", u.Name)
	assert.True(t, u.TestMode)
	assert.False(t, u.CreatedAt.IsZero())

	// persisted, not just returned
	stored, err := users.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, u.ID, stored.ID)
}

func TestManager_ReturnsSameUserAcrossCalls(t *testing.T) {
	users := repository.NewSQLiteUserRepo(testutil.NewTestDB(t))
	mgr := NewManager(users, false)

	first, err := mgr.CurrentUser(context.Background())
	require.NoError(t, err)
	second, err := mgr.CurrentUser(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "User", first.Name)
	assert.False(t, first.TestMode)
}
