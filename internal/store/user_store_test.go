package store_test

import (
	"context"
	"testing"
	"time"

	"shortlink-manager/internal/model"
	"shortlink-manager/internal/store"
	"shortlink-manager/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore(t *testing.T) {
	s := store.NewUserStore(testutils.NewSQLite(t))
	ctx := context.Background()

	user := &model.User{Username: "alice", IsActive: true}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, s.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	dup := &model.User{Username: "alice", PasswordHash: "x"}
	assert.ErrorIs(t, s.Create(ctx, dup), store.ErrUsernameTaken)

	byName, err := s.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.True(t, byName.CheckPassword("secret123"))

	byID, err := s.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.Nil(t, byID.LastLogin)

	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.TouchLastLogin(ctx, user.ID, at))
	byID, err = s.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID.LastLogin)
	assert.True(t, byID.LastLogin.Equal(at))

	_, err = s.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
