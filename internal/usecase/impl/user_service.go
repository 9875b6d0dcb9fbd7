// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "signup/internal/delivery/context"
	"signup/internal/domain/entity"
	domainerrors "signup/internal/domain/errors"
	"signup/internal/domain/repository"
	"signup/internal/domain/service"
	"signup/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface. It holds no mutable
// state of its own; all shared state lives in the store behind the
// repository interface, so concurrent registrations for different usernames
// proceed independently.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process. Steps run
// strictly in order and short-circuit on the first failure; no compensating
// action is taken for a hash that was computed before a failed insert.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput, autoTimestamp bool) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting user registration", slog.String("username", input.Username))

	// 1. Uniqueness pre-check. ErrUserNotFound is the designed success path
	// here; a returned row means the username is taken. Any other store
	// failure is propagated instead of being conflated with availability.
	_, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		srv.log(ctx).Warn("Username already registered", slog.String("username", input.Username))

		return nil, domainerrors.ErrUsernameAlreadyExists.
			WithDetails(input.Username).
			WrapMessage("user registration failed")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Failed to check username availability", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check username availability")
	}

	// 2. Hash the password. Fatal for the request; never retried.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	// 3-4. Build the unpersisted record and insert it. The store assigns the
	// identifier; timestamps are whatever the entity constructor chose.
	newUser := entity.NewUser(input.Username, hashedPassword, autoTimestamp)

	insertedID, err := srv.userRepo.Insert(ctx, newUser)
	if err != nil {
		srv.log(ctx).Error("Failed to insert user", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to insert user during registration")
	}

	// 5. Re-read the canonical persisted row. A miss immediately after a
	// successful insert is an integrity fault.
	storedUser, err := srv.userRepo.FindByID(ctx, insertedID)
	if err != nil {
		srv.log(ctx).Error("Failed to load user after insert", slog.Int64("userID", insertedID), slog.Any("error", err))

		return nil, domainerrors.ErrUserNotFound.
			WithDetails(strconv.FormatInt(insertedID, 10)).
			WrapMessage("failed to load user after insert")
	}

	srv.log(ctx).Debug("User registered successfully", slog.Int64("userID", storedUser.ID))

	// 6. Map to the public projection; the password digest never crosses
	// the service boundary.
	return &usecase.RegisterOutput{User: storedUser.Public()}, nil
}

// GetUser fetches the public projection of a stored user by identifier.
func (srv *userService) GetUser(ctx context.Context, id int64) (*usecase.GetUserOutput, error) {
	srv.log(ctx).Debug("Getting user", slog.Int64("userID", id))

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.
				WithDetails(strconv.FormatInt(id, 10)).
				WrapMessage("failed to get user")
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return &usecase.GetUserOutput{User: user.Public()}, nil
}
