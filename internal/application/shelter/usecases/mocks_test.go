package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fanimal/internal/domain/shelter"
	"fanimal/internal/shared/logger"
)

type mockShelterRepo struct {
	mock.Mock
}

func (m *mockShelterRepo) Create(ctx context.Context, s *shelter.Shelter) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockShelterRepo) GetByID(ctx context.Context, id uint) (*shelter.Shelter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shelter.Shelter), args.Error(1)
}

func (m *mockShelterRepo) GetByName(ctx context.Context, name string) (*shelter.Shelter, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shelter.Shelter), args.Error(1)
}

func (m *mockShelterRepo) List(ctx context.Context) ([]*shelter.Shelter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shelter.Shelter), args.Error(1)
}

func (m *mockShelterRepo) Update(ctx context.Context, s *shelter.Shelter) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockShelterRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockShelterRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

type mockMarkdownService struct {
	mock.Mock
}

func (m *mockMarkdownService) ToHTML(markdown string) (string, error) {
	args := m.Called(markdown)
	return args.String(0), args.Error(1)
}

func (m *mockMarkdownService) Sanitize(htmlContent string) string {
	args := m.Called(htmlContent)
	return args.String(0)
}

func (m *mockMarkdownService) ToHTMLSanitized(markdown string) (string, error) {
	args := m.Called(markdown)
	return args.String(0), args.Error(1)
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
