package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fanimal/internal/domain/subscription"
	"fanimal/internal/shared/errors"

	vo "fanimal/internal/domain/subscription/valueobjects"
)

func TestUnsubscribeUseCase_Execute_Success(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	gateway := new(mockGateway)

	sub := makeOpenSubscription(t, vo.StatusActive)
	subRepo.On("GetByID", mock.Anything, uint(10)).Return(sub, nil)
	gateway.On("CancelSubscription", mock.Anything, "sub_1").Return(nil)
	subRepo.On("Update", mock.Anything, sub).Return(nil)

	uc := NewUnsubscribeUseCase(subRepo, gateway, stubLogger{})

	err := uc.Execute(context.Background(), UnsubscribeCommand{
		SubscriptionID: 10,
		ActorID:        1,
		ActorRole:      "user",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusCanceled, sub.Status())
	gateway.AssertExpectations(t)
	subRepo.AssertExpectations(t)
}

func TestUnsubscribeUseCase_Execute_ForbiddenForNonOwner(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	gateway := new(mockGateway)

	sub := makeOpenSubscription(t, vo.StatusActive)
	subRepo.On("GetByID", mock.Anything, uint(10)).Return(sub, nil)

	uc := NewUnsubscribeUseCase(subRepo, gateway, stubLogger{})

	err := uc.Execute(context.Background(), UnsubscribeCommand{
		SubscriptionID: 10,
		ActorID:        99,
		ActorRole:      "user",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	gateway.AssertNotCalled(t, "CancelSubscription", mock.Anything, mock.Anything)
}

func TestUnsubscribeUseCase_Execute_AdminMayCancelAnySubscription(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	gateway := new(mockGateway)

	sub := makeOpenSubscription(t, vo.StatusActive)
	subRepo.On("GetByID", mock.Anything, uint(10)).Return(sub, nil)
	gateway.On("CancelSubscription", mock.Anything, "sub_1").Return(nil)
	subRepo.On("Update", mock.Anything, sub).Return(nil)

	uc := NewUnsubscribeUseCase(subRepo, gateway, stubLogger{})

	err := uc.Execute(context.Background(), UnsubscribeCommand{
		SubscriptionID: 10,
		ActorID:        99,
		ActorRole:      "admin",
	})

	require.NoError(t, err)
}

func TestUnsubscribeUseCase_Execute_NotFound(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	subRepo.On("GetByID", mock.Anything, uint(10)).Return(nil, nil)

	uc := NewUnsubscribeUseCase(subRepo, new(mockGateway), stubLogger{})

	err := uc.Execute(context.Background(), UnsubscribeCommand{
		SubscriptionID: 10,
		ActorID:        1,
		ActorRole:      "user",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUnsubscribeUseCase_Execute_AlreadyCanceledIsIdempotent(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	gateway := new(mockGateway)

	sub := makeOpenSubscription(t, vo.StatusCanceled)
	subRepo.On("GetByID", mock.Anything, uint(10)).Return(sub, nil)

	uc := NewUnsubscribeUseCase(subRepo, gateway, stubLogger{})

	err := uc.Execute(context.Background(), UnsubscribeCommand{
		SubscriptionID: 10,
		ActorID:        1,
		ActorRole:      "user",
	})

	require.NoError(t, err)
	gateway.AssertNotCalled(t, "CancelSubscription", mock.Anything, mock.Anything)
	subRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUnsubscribeUseCase_Execute_LostRaceToDeletionWebhookSucceeds(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	gateway := new(mockGateway)

	sub := makeOpenSubscription(t, vo.StatusActive)
	subRepo.On("GetByID", mock.Anything, uint(10)).Return(sub, nil).Once()
	gateway.On("CancelSubscription", mock.Anything, "sub_1").Return(nil)
	subRepo.On("Update", mock.Anything, sub).Return(subscription.ErrVersionConflict)
	// The deletion webhook canceled the row between load and save.
	subRepo.On("GetByID", mock.Anything, uint(10)).Return(makeOpenSubscription(t, vo.StatusCanceled), nil).Once()

	uc := NewUnsubscribeUseCase(subRepo, gateway, stubLogger{})

	err := uc.Execute(context.Background(), UnsubscribeCommand{
		SubscriptionID: 10,
		ActorID:        1,
		ActorRole:      "user",
	})

	require.NoError(t, err)
	subRepo.AssertExpectations(t)
}

func TestUnsubscribeUseCase_Execute_VersionConflictWithoutTerminalStateFails(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	gateway := new(mockGateway)

	sub := makeOpenSubscription(t, vo.StatusActive)
	subRepo.On("GetByID", mock.Anything, uint(10)).Return(sub, nil).Once()
	gateway.On("CancelSubscription", mock.Anything, "sub_1").Return(nil)
	subRepo.On("Update", mock.Anything, sub).Return(subscription.ErrVersionConflict)
	subRepo.On("GetByID", mock.Anything, uint(10)).Return(makeOpenSubscription(t, vo.StatusPastDue), nil).Once()

	uc := NewUnsubscribeUseCase(subRepo, gateway, stubLogger{})

	err := uc.Execute(context.Background(), UnsubscribeCommand{
		SubscriptionID: 10,
		ActorID:        1,
		ActorRole:      "user",
	})

	require.Error(t, err)
}

func TestUnsubscribeUseCase_Execute_RemoteFailureAborts(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	gateway := new(mockGateway)

	sub := makeOpenSubscription(t, vo.StatusActive)
	subRepo.On("GetByID", mock.Anything, uint(10)).Return(sub, nil)
	gateway.On("CancelSubscription", mock.Anything, "sub_1").Return(assert.AnError)

	uc := NewUnsubscribeUseCase(subRepo, gateway, stubLogger{})

	err := uc.Execute(context.Background(), UnsubscribeCommand{
		SubscriptionID: 10,
		ActorID:        1,
		ActorRole:      "user",
	})

	require.Error(t, err)
	assert.True(t, errors.IsBillingError(err))
	assert.Equal(t, vo.StatusActive, sub.Status())
	subRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
