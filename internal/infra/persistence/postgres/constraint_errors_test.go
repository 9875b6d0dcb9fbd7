package postgres

import (
	"testing"

	domainerrors "signup/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapInsertError_UniqueViolation(t *testing.T) {
	err := mapInsertError(gorm.ErrDuplicatedKey)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserInsertFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "USER_INSERT_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "concurrent registration")
}

func TestMapInsertError_NotNullViolation(t *testing.T) {
	err := mapInsertError(errors.New(`ERROR: null value in column "username" violates not-null constraint (SQLSTATE 23502)`))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserInsertFailed))
}

// Any other store fault on insert, like a dropped connection, is still the
// insert-failure kind with the cause carried in the details.
func TestMapInsertError_GenericFailure(t *testing.T) {
	err := mapInsertError(errors.New("connection refused"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserInsertFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "USER_INSERT_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "connection refused")
}
