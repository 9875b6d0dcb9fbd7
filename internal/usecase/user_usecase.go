// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"signup/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// The password arrives as plaintext, is hashed inside the use case, and the
// input is discarded after the call.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's public information.
type RegisterOutput struct {
	User *entity.PublicUser
}

// GetUserOutput returns a stored user's public information.
type GetUserOutput struct {
	User *entity.PublicUser
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register runs the registration flow: uniqueness pre-check, password
	// hashing, insert, and canonical re-read. autoTimestamp selects between
	// wall-clock timestamps and the fixed epoch sentinel; it is an explicit
	// parameter so the flow stays deterministic in tests.
	Register(ctx context.Context, input *RegisterInput, autoTimestamp bool) (*RegisterOutput, error)

	// GetUser fetches the public projection of a stored user by identifier.
	GetUser(ctx context.Context, id int64) (*GetUserOutput, error)
}
