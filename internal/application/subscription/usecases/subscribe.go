package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"fanimal/internal/domain/billing"
	"fanimal/internal/domain/shelter"
	"fanimal/internal/domain/subscription"
	"fanimal/internal/domain/user"
	"fanimal/internal/shared/biztime"
	"fanimal/internal/shared/errors"
	"fanimal/internal/shared/logger"

	vo "fanimal/internal/domain/subscription/valueobjects"
)

type SubscribeCommand struct {
	UserID          uint
	ShelterID       uint
	Tier            string
	PaymentMethodID string
}

type SubscribeResult struct {
	Subscription *subscription.Subscription
	Shelter      *shelter.Shelter
	User         *user.User
	// ClientSecret completes the initial payment on the client; it is
	// returned once and never stored.
	ClientSecret string
}

type SubscribeUseCase struct {
	subscriptionRepo subscription.Repository
	userRepo         user.Repository
	shelterRepo      shelter.Repository
	gateway          billing.Gateway
	logger           logger.Interface
}

func NewSubscribeUseCase(
	subscriptionRepo subscription.Repository,
	userRepo user.Repository,
	shelterRepo shelter.Repository,
	gateway billing.Gateway,
	logger logger.Interface,
) *SubscribeUseCase {
	return &SubscribeUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		shelterRepo:      shelterRepo,
		gateway:          gateway,
		logger:           logger,
	}
}

func (uc *SubscribeUseCase) Execute(ctx context.Context, cmd SubscribeCommand) (*SubscribeResult, error) {
	tier, err := vo.ParseTier(cmd.Tier)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.PaymentMethodID == "" {
		return nil, errors.NewValidationError("payment method id is required")
	}

	actor, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if actor == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	targetShelter, err := uc.shelterRepo.GetByID(ctx, cmd.ShelterID)
	if err != nil {
		uc.logger.Errorw("failed to get shelter", "error", err, "shelter_id", cmd.ShelterID)
		return nil, fmt.Errorf("failed to get shelter: %w", err)
	}
	if targetShelter == nil {
		return nil, errors.NewNotFoundError("shelter not found")
	}

	priceID, err := targetShelter.PriceIDForTier(tier)
	if err != nil {
		return nil, errors.NewConfigurationError(err.Error())
	}

	// One open subscription per user and shelter. Checked before any
	// remote call so a duplicate request costs nothing at the provider.
	open, err := uc.subscriptionRepo.GetOpenByUserAndShelter(ctx, cmd.UserID, cmd.ShelterID)
	if err != nil {
		uc.logger.Errorw("failed to check existing subscription", "error", err, "user_id", cmd.UserID, "shelter_id", cmd.ShelterID)
		return nil, fmt.Errorf("failed to check existing subscription: %w", err)
	}
	if open != nil {
		return nil, errors.NewConflictError("an open subscription to this shelter already exists")
	}

	customerID, err := uc.ensureCustomer(ctx, actor)
	if err != nil {
		return nil, err
	}

	if err := uc.gateway.AttachPaymentMethod(ctx, customerID, cmd.PaymentMethodID); err != nil {
		uc.logger.Errorw("failed to attach payment method", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewBillingError("failed to attach payment method")
	}
	if err := uc.gateway.SetDefaultPaymentMethod(ctx, customerID, cmd.PaymentMethodID); err != nil {
		uc.logger.Errorw("failed to set default payment method", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewBillingError("failed to set default payment method")
	}

	remote, err := uc.gateway.CreateSubscription(ctx, billing.CreateSubscriptionParams{
		CustomerID:     customerID,
		PriceID:        priceID,
		IdempotencyKey: uuid.New().String(),
		Metadata: map[string]string{
			"user_id":    fmt.Sprintf("%d", cmd.UserID),
			"shelter_id": fmt.Sprintf("%d", cmd.ShelterID),
			"tier":       tier.String(),
		},
	})
	if err != nil {
		uc.logger.Errorw("failed to create remote subscription", "error", err, "user_id", cmd.UserID, "shelter_id", cmd.ShelterID)
		return nil, errors.NewBillingError("failed to create subscription with billing provider")
	}

	// The local period is provisional; the first invoice.paid event
	// overwrites it with the provider-reported one.
	periodStart := biztime.TodayUTC()
	periodEnd := biztime.AddMonths(periodStart, 1)

	newSub, err := subscription.NewSubscription(cmd.UserID, cmd.ShelterID, tier, remote.ID, periodStart, periodEnd)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Create(ctx, newSub); err != nil {
		uc.logger.Errorw("failed to persist subscription", "error", err,
			"stripe_subscription_id", remote.ID, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to persist subscription: %w", err)
	}

	uc.logger.Infow("subscription created",
		"subscription_id", newSub.ID(),
		"user_id", cmd.UserID,
		"shelter_id", cmd.ShelterID,
		"tier", tier.String(),
	)

	return &SubscribeResult{
		Subscription: newSub,
		Shelter:      targetShelter,
		User:         actor,
		ClientSecret: remote.ClientSecret,
	}, nil
}

// ensureCustomer returns the user's billing customer ID, creating and
// persisting one first when the user has never subscribed. The ID is
// saved before any further remote call so a later failure cannot orphan
// the remote customer.
func (uc *SubscribeUseCase) ensureCustomer(ctx context.Context, actor *user.User) (string, error) {
	if actor.StripeCustomerID() != nil {
		return *actor.StripeCustomerID(), nil
	}

	customer, err := uc.gateway.CreateCustomer(ctx, actor.Email().String(), actor.Name().DisplayName())
	if err != nil {
		uc.logger.Errorw("failed to create billing customer", "error", err, "user_id", actor.ID())
		return "", errors.NewBillingError("failed to create billing customer")
	}

	if err := actor.AttachStripeCustomer(customer.ID); err != nil {
		return "", fmt.Errorf("failed to attach billing customer: %w", err)
	}
	if err := uc.userRepo.Update(ctx, actor); err != nil {
		uc.logger.Errorw("failed to persist billing customer id", "error", err,
			"user_id", actor.ID(), "stripe_customer_id", customer.ID)
		return "", fmt.Errorf("failed to persist billing customer: %w", err)
	}

	return customer.ID, nil
}
