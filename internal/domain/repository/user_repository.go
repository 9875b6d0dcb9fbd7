// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"signup/internal/domain/entity"
)

// ErrUserNotFound is returned when no row matches the requested identifier or
// username. For the registration pre-check this sentinel is the positive
// "username available" signal, not a failure.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
// Each call is independently atomic against the store; no cross-call
// transaction is assumed.
type UserRepository interface {
	// Insert persists a new record, ignoring any ID on the input, with the
	// timestamps exactly as supplied by the caller. It returns the
	// store-assigned identifier and also writes it back onto the entity.
	Insert(ctx context.Context, user *entity.User) (int64, error)

	// FindByID retrieves a single user by their primary identifier.
	// Returns ErrUserNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by the unique username column.
	// Returns ErrUserNotFound when no row matches.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
