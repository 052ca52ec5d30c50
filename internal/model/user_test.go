package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Password(t *testing.T) {
	var u User
	require.NoError(t, u.SetPassword("secret123"))

	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.True(t, u.CheckPassword("secret123"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestUser_BeforeCreateAssignsUUID(t *testing.T) {
	u := User{Username: "alice"}
	require.NoError(t, u.BeforeCreate(nil))

	_, err := uuid.Parse(u.ID)
	assert.NoError(t, err)

	existing := User{ID: "fixed-id"}
	require.NoError(t, existing.BeforeCreate(nil))
	assert.Equal(t, "fixed-id", existing.ID, "已有 ID 不应被覆盖")
}
