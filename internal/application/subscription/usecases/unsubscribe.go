package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"fanimal/internal/domain/billing"
	"fanimal/internal/domain/subscription"
	"fanimal/internal/shared/authorization"
	"fanimal/internal/shared/errors"
	"fanimal/internal/shared/logger"
)

type UnsubscribeCommand struct {
	SubscriptionID uint
	ActorID        uint
	ActorRole      authorization.UserRole
}

type UnsubscribeUseCase struct {
	subscriptionRepo subscription.Repository
	gateway          billing.Gateway
	logger           logger.Interface
}

func NewUnsubscribeUseCase(
	subscriptionRepo subscription.Repository,
	gateway billing.Gateway,
	logger logger.Interface,
) *UnsubscribeUseCase {
	return &UnsubscribeUseCase{
		subscriptionRepo: subscriptionRepo,
		gateway:          gateway,
		logger:           logger,
	}
}

func (uc *UnsubscribeUseCase) Execute(ctx context.Context, cmd UnsubscribeCommand) error {
	if cmd.SubscriptionID == 0 {
		return errors.NewValidationError("subscription id is required")
	}

	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return errors.NewNotFoundError("subscription not found")
	}

	if !sub.IsOwnedBy(cmd.ActorID) && !cmd.ActorRole.IsAdmin() {
		return errors.NewForbiddenError("subscription belongs to another user")
	}

	if sub.Status().IsTerminal() {
		return nil
	}

	// Remote cancel goes first: revenue must stop before the local record
	// says it has. A remote failure aborts and the caller may retry.
	if err := uc.gateway.CancelSubscription(ctx, sub.StripeSubscriptionID()); err != nil {
		uc.logger.Errorw("failed to cancel remote subscription", "error", err,
			"subscription_id", cmd.SubscriptionID,
			"stripe_subscription_id", sub.StripeSubscriptionID())
		return errors.NewBillingError("failed to cancel subscription with billing provider")
	}

	sub.Cancel()
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		if stderrors.Is(err, subscription.ErrVersionConflict) && uc.canceledConcurrently(ctx, cmd.SubscriptionID) {
			// The deletion webhook wrote the terminal state first; the
			// user's cancellation still succeeded.
			uc.logger.Infow("subscription already canceled by billing event",
				"subscription_id", cmd.SubscriptionID)
			return nil
		}
		// The remote side is already canceled; the deletion webhook will
		// converge the local record if this write lost a race.
		uc.logger.Errorw("failed to persist subscription cancellation", "error", err,
			"subscription_id", cmd.SubscriptionID)
		return fmt.Errorf("failed to persist cancellation: %w", err)
	}

	uc.logger.Infow("subscription canceled", "subscription_id", cmd.SubscriptionID, "actor_id", cmd.ActorID)

	return nil
}

// canceledConcurrently reloads the subscription after a version conflict
// to check whether another writer already reached the terminal state.
func (uc *UnsubscribeUseCase) canceledConcurrently(ctx context.Context, subscriptionID uint) bool {
	current, err := uc.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil || current == nil {
		return false
	}
	return current.Status().IsTerminal()
}
