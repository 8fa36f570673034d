package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fanimal/internal/domain/billing"
	"fanimal/internal/domain/shelter"
	"fanimal/internal/domain/subscription"
	"fanimal/internal/domain/user"
	"fanimal/internal/shared/logger"
)

type mockSubscriptionRepo struct {
	mock.Mock
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, sub *subscription.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) GetByStripeSubscriptionID(ctx context.Context, stripeSubscriptionID string) (*subscription.Subscription, error) {
	args := m.Called(ctx, stripeSubscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) ListByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) ListByShelterID(ctx context.Context, shelterID uint) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, shelterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) GetOpenByUserAndShelter(ctx context.Context, userID, shelterID uint) (*subscription.Subscription, error) {
	args := m.Called(ctx, userID, shelterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) Update(ctx context.Context, sub *subscription.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

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

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateCustomer(ctx context.Context, email, name string) (*billing.Customer, error) {
	args := m.Called(ctx, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Customer), args.Error(1)
}

func (m *mockGateway) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	args := m.Called(ctx, customerID, paymentMethodID)
	return args.Error(0)
}

func (m *mockGateway) SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	args := m.Called(ctx, customerID, paymentMethodID)
	return args.Error(0)
}

func (m *mockGateway) CreateSubscription(ctx context.Context, params billing.CreateSubscriptionParams) (*billing.Subscription, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Subscription), args.Error(1)
}

func (m *mockGateway) GetSubscription(ctx context.Context, subscriptionID string) (*billing.Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Subscription), args.Error(1)
}

func (m *mockGateway) CancelSubscription(ctx context.Context, subscriptionID string) error {
	args := m.Called(ctx, subscriptionID)
	return args.Error(0)
}

// stubLogger satisfies logger.Interface without recording anything.
type stubLogger struct{}

func (stubLogger) Debug(msg string, args ...any)                     {}
func (stubLogger) Info(msg string, args ...any)                      {}
func (stubLogger) Warn(msg string, args ...any)                      {}
func (stubLogger) Error(msg string, args ...any)                     {}
func (s stubLogger) With(args ...any) logger.Interface               { return s }
func (s stubLogger) Named(name string) logger.Interface              { return s }
func (stubLogger) Debugw(msg string, keysAndValues ...interface{})   {}
func (stubLogger) Infow(msg string, keysAndValues ...interface{})    {}
func (stubLogger) Warnw(msg string, keysAndValues ...interface{})    {}
func (stubLogger) Errorw(msg string, keysAndValues ...interface{})   {}
