package handlers

import (
	"context"

	"fanimal/internal/application/subscription/usecases"
)

// Use case interfaces for SubscriptionHandler - enables unit testing with mocks.

type subscribeUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubscribeCommand) (*usecases.SubscribeResult, error)
}

type listSubscriptionsUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListSubscriptionsCommand) (*usecases.ListSubscriptionsResult, error)
}

type unsubscribeUseCase interface {
	Execute(ctx context.Context, cmd usecases.UnsubscribeCommand) error
}
