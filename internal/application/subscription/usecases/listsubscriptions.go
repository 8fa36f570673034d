package usecases

import (
	"context"
	"fmt"

	"fanimal/internal/domain/subscription"
	"fanimal/internal/shared/errors"
	"fanimal/internal/shared/logger"
)

type ListSubscriptionsCommand struct {
	UserID uint
}

type ListSubscriptionsResult struct {
	Subscriptions []*subscription.Subscription
}

type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, cmd ListSubscriptionsCommand) (*ListSubscriptionsResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user id is required")
	}

	subs, err := uc.subscriptionRepo.ListByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return &ListSubscriptionsResult{Subscriptions: subs}, nil
}
