package errors

import (
	"testing"

	"signup/internal/errors"

	"github.com/stretchr/testify/assert"
)

// Detail-carrying copies built through WithDetails and message wrapping must
// stay matchable against their base sentinel.
func TestBaseError_Is_SurvivesWithDetailsAndWrapping(t *testing.T) {
	err := ErrUsernameAlreadyExists.
		WithDetails("test").
		WrapMessage("user registration failed")

	assert.True(t, errors.Is(err, ErrUsernameAlreadyExists))

	err = ErrUserNotFound.
		WithDetails("1").
		WrapMessage("failed to load user after insert")

	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestBaseError_Is_DistinctKindsDoNotMatch(t *testing.T) {
	err := ErrUserInsertFailed.
		WithDetails("username already taken by a concurrent registration").
		WrapMessage("failed to insert user")

	assert.True(t, errors.Is(err, ErrUserInsertFailed))
	assert.False(t, errors.Is(err, ErrUsernameAlreadyExists))
	assert.False(t, errors.Is(err, ErrUserNotFound))
	assert.False(t, errors.Is(ErrUserNotFound, errors.New("user not found")))
}

func TestWithDetails_CopiesWithoutMutatingBase(t *testing.T) {
	detailed := ErrUsernameAlreadyExists.WithDetails("test")

	assert.Equal(t, "test", detailed.Details())
	assert.Empty(t, ErrUsernameAlreadyExists.Details())
	assert.Equal(t, ErrUsernameAlreadyExists.ErrorCode(), detailed.ErrorCode())
	assert.Equal(t, ErrUsernameAlreadyExists.HTTPCode(), detailed.HTTPCode())
}

func TestDatabaseExecuteError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "failed to insert user")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
}
