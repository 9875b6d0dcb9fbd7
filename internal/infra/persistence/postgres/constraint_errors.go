package postgres

import (
	"strings"

	domainerrors "signup/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mapInsertError translates a failed insert into the domain taxonomy. Every
// insert failure is an insert-failure kind; the details only distinguish the
// constraint cases from generic store faults.
func mapInsertError(err error) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrUserInsertFailed.
			WithDetails("username already taken by a concurrent registration").
			WrapMessage("failed to insert user")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrUserInsertFailed.WrapMessage("missing required user information")
	}

	return domainerrors.ErrUserInsertFailed.
		WithDetails(err.Error()).
		WrapMessage("failed to insert user")
}

// Helper functions for PostgreSQL error checking. TranslateError is enabled
// on the GORM session, so constraint violations arrive as GORM sentinels.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
