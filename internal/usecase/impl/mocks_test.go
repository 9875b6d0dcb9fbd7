package impl

import (
	"context"
	"io"
	"log/slog"

	"signup/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// mockUserRepository is a testify mock for repository.UserRepository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Insert(ctx context.Context, user *entity.User) (int64, error) {
	args := m.Called(ctx, user)

	id := args.Get(0).(int64)
	if args.Error(1) == nil {
		user.ID = id
	}

	return id, args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

// mockPasswordHasher is a testify mock for service.PasswordHasher.
type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
