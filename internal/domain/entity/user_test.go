package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewUser_EpochSentinel(t *testing.T) {
	user := NewUser("test", "digest", false)

	assert.Equal(t, int64(0), user.ID)
	assert.Equal(t, "test", user.Username)
	assert.Equal(t, "digest", user.PasswordHash)
	assert.True(t, user.CreatedAt.Equal(EpochSentinel))
	assert.True(t, user.UpdatedAt.Equal(EpochSentinel))
	assert.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), EpochSentinel)
}

func TestNewUser_AutoTimestamp(t *testing.T) {
	before := time.Now().UTC()
	user := NewUser("test", "digest", true)
	after := time.Now().UTC()

	assert.False(t, user.CreatedAt.Before(before))
	assert.False(t, user.CreatedAt.After(after))
	assert.True(t, user.CreatedAt.Equal(user.UpdatedAt))
}

func TestUser_Public(t *testing.T) {
	user := &User{
		ID:           1,
		Username:     "test",
		PasswordHash: "digest",
		CreatedAt:    EpochSentinel,
		UpdatedAt:    EpochSentinel,
	}

	public := user.Public()

	assert.Equal(t, int64(1), public.ID)
	assert.Equal(t, "test", public.Username)
}
