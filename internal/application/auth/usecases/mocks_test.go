package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fanimal/internal/domain/user"
	"fanimal/internal/shared/authorization"
	"fanimal/internal/shared/logger"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Compare(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}

type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) Generate(userID uint, role authorization.UserRole) (string, int64, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

type mockWelcomeMailer struct {
	mock.Mock
}

func (m *mockWelcomeMailer) SendWelcomeEmail(toEmail, displayName string) error {
	args := m.Called(toEmail, displayName)
	return args.Error(0)
}

type stubLogger struct{}

func (stubLogger) Debug(msg string, args ...any)                   {}
func (stubLogger) Info(msg string, args ...any)                    {}
func (stubLogger) Warn(msg string, args ...any)                    {}
func (stubLogger) Error(msg string, args ...any)                   {}
func (s stubLogger) With(args ...any) logger.Interface             { return s }
func (s stubLogger) Named(name string) logger.Interface            { return s }
func (stubLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (stubLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (stubLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (stubLogger) Errorw(msg string, keysAndValues ...interface{}) {}
