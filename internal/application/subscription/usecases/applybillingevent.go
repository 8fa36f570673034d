package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"fanimal/internal/domain/billing"
	"fanimal/internal/domain/shelter"
	"fanimal/internal/domain/subscription"
	"fanimal/internal/shared/logger"

	vo "fanimal/internal/domain/subscription/valueobjects"
)

// BillingEventType identifies the provider events the ledger reacts to.
type BillingEventType string

const (
	EventInvoicePaid          BillingEventType = "invoice.paid"
	EventInvoicePaymentFailed BillingEventType = "invoice.payment_failed"
	EventSubscriptionUpdated  BillingEventType = "customer.subscription.updated"
	EventSubscriptionDeleted  BillingEventType = "customer.subscription.deleted"
)

// maxApplyAttempts bounds the reload-and-retry loop on version conflicts.
const maxApplyAttempts = 3

type ApplyBillingEventCommand struct {
	EventID              string
	Type                 BillingEventType
	StripeSubscriptionID string

	// Payload of customer.subscription.updated; zero values mean the
	// field was absent from the event.
	Status      string
	PriceID     string
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// ApplyBillingEventUseCase folds verified webhook events into the local
// subscription ledger. Events are idempotent absolute overwrites: an
// unknown subscription ID or an already-canceled record is a logged no-op,
// and a redelivered event leaves the row as it is.
type ApplyBillingEventUseCase struct {
	subscriptionRepo subscription.Repository
	shelterRepo      shelter.Repository
	gateway          billing.Gateway
	logger           logger.Interface
}

func NewApplyBillingEventUseCase(
	subscriptionRepo subscription.Repository,
	shelterRepo shelter.Repository,
	gateway billing.Gateway,
	logger logger.Interface,
) *ApplyBillingEventUseCase {
	return &ApplyBillingEventUseCase{
		subscriptionRepo: subscriptionRepo,
		shelterRepo:      shelterRepo,
		gateway:          gateway,
		logger:           logger,
	}
}

func (uc *ApplyBillingEventUseCase) Execute(ctx context.Context, cmd ApplyBillingEventCommand) error {
	if cmd.StripeSubscriptionID == "" {
		uc.logger.Warnw("billing event without subscription id", "event_id", cmd.EventID, "event_type", cmd.Type)
		return nil
	}

	switch cmd.Type {
	case EventInvoicePaid:
		return uc.handleInvoicePaid(ctx, cmd)
	case EventInvoicePaymentFailed:
		return uc.applyWithRetry(ctx, cmd, func(sub *subscription.Subscription) error {
			return sub.ApplyRemoteStatus(vo.StatusPastDue)
		})
	case EventSubscriptionDeleted:
		return uc.applyWithRetry(ctx, cmd, func(sub *subscription.Subscription) error {
			sub.Cancel()
			return nil
		})
	case EventSubscriptionUpdated:
		return uc.handleSubscriptionUpdated(ctx, cmd)
	default:
		uc.logger.Debugw("ignoring billing event", "event_id", cmd.EventID, "event_type", cmd.Type)
		return nil
	}
}

// handleInvoicePaid refreshes status and period from the remote
// subscription rather than trusting the invoice payload, which only links
// to the subscription.
func (uc *ApplyBillingEventUseCase) handleInvoicePaid(ctx context.Context, cmd ApplyBillingEventCommand) error {
	remote, err := uc.gateway.GetSubscription(ctx, cmd.StripeSubscriptionID)
	if err != nil {
		return fmt.Errorf("failed to fetch remote subscription %s: %w", cmd.StripeSubscriptionID, err)
	}

	remoteStatus, err := vo.ParseSubscriptionStatus(remote.Status)
	if err != nil {
		return fmt.Errorf("remote subscription %s: %w", cmd.StripeSubscriptionID, err)
	}

	return uc.applyWithRetry(ctx, cmd, func(sub *subscription.Subscription) error {
		if err := sub.ApplyRemoteStatus(remoteStatus); err != nil {
			return err
		}
		if !remote.PeriodStart.IsZero() && !remote.PeriodEnd.IsZero() {
			return sub.UpdatePeriod(remote.PeriodStart, remote.PeriodEnd)
		}
		return nil
	})
}

func (uc *ApplyBillingEventUseCase) handleSubscriptionUpdated(ctx context.Context, cmd ApplyBillingEventCommand) error {
	remoteStatus, err := vo.ParseSubscriptionStatus(cmd.Status)
	if err != nil {
		return fmt.Errorf("event %s: %w", cmd.EventID, err)
	}

	return uc.applyWithRetry(ctx, cmd, func(sub *subscription.Subscription) error {
		before := sub.Status()
		if err := sub.ApplyRemoteStatus(remoteStatus); err != nil {
			return err
		}
		if sub.Status() == before && before != remoteStatus {
			uc.logger.Warnw("remote status not reachable from current status, keeping current",
				"event_id", cmd.EventID,
				"subscription_id", sub.ID(),
				"current_status", before.String(),
				"remote_status", remoteStatus.String(),
			)
		}
		if !cmd.PeriodStart.IsZero() && !cmd.PeriodEnd.IsZero() {
			if err := sub.UpdatePeriod(cmd.PeriodStart, cmd.PeriodEnd); err != nil {
				return err
			}
		}
		if cmd.PriceID != "" {
			if err := uc.applyPriceChange(ctx, sub, cmd); err != nil {
				return err
			}
		}
		return nil
	})
}

// applyPriceChange reverse-maps the reported price ID through the
// shelter's tier configuration. A price that maps to no tier keeps the
// current tier; the drift is logged for operators.
func (uc *ApplyBillingEventUseCase) applyPriceChange(ctx context.Context, sub *subscription.Subscription, cmd ApplyBillingEventCommand) error {
	owningShelter, err := uc.shelterRepo.GetByID(ctx, sub.ShelterID())
	if err != nil {
		return fmt.Errorf("failed to get shelter %d: %w", sub.ShelterID(), err)
	}
	if owningShelter == nil {
		uc.logger.Warnw("subscription references missing shelter",
			"event_id", cmd.EventID, "subscription_id", sub.ID(), "shelter_id", sub.ShelterID())
		return nil
	}

	tier, ok := owningShelter.TierForPriceID(cmd.PriceID)
	if !ok {
		uc.logger.Warnw("remote price does not match any configured tier, keeping current tier",
			"event_id", cmd.EventID,
			"subscription_id", sub.ID(),
			"shelter_id", sub.ShelterID(),
			"price_id", cmd.PriceID,
		)
		return nil
	}

	return sub.ChangeTier(tier)
}

// applyWithRetry loads the subscription, applies the mutation, and saves
// it under optimistic concurrency, reloading on version conflicts up to
// maxApplyAttempts times.
func (uc *ApplyBillingEventUseCase) applyWithRetry(ctx context.Context, cmd ApplyBillingEventCommand, mutate func(*subscription.Subscription) error) error {
	for attempt := 1; attempt <= maxApplyAttempts; attempt++ {
		sub, err := uc.subscriptionRepo.GetByStripeSubscriptionID(ctx, cmd.StripeSubscriptionID)
		if err != nil {
			return fmt.Errorf("failed to load subscription %s: %w", cmd.StripeSubscriptionID, err)
		}
		if sub == nil {
			uc.logger.Infow("billing event for unknown subscription, ignoring",
				"event_id", cmd.EventID, "event_type", cmd.Type,
				"stripe_subscription_id", cmd.StripeSubscriptionID)
			return nil
		}
		if sub.Status().IsTerminal() {
			uc.logger.Debugw("billing event for canceled subscription, ignoring",
				"event_id", cmd.EventID, "event_type", cmd.Type, "subscription_id", sub.ID())
			return nil
		}

		versionBefore := sub.Version()
		if err := mutate(sub); err != nil {
			return fmt.Errorf("failed to apply event %s: %w", cmd.EventID, err)
		}
		if sub.Version() == versionBefore {
			// Nothing changed; the event was redundant.
			return nil
		}

		err = uc.subscriptionRepo.Update(ctx, sub)
		if err == nil {
			uc.logger.Infow("billing event applied",
				"event_id", cmd.EventID,
				"event_type", cmd.Type,
				"subscription_id", sub.ID(),
				"status", sub.Status().String(),
			)
			return nil
		}
		if !stderrors.Is(err, subscription.ErrVersionConflict) {
			return fmt.Errorf("failed to save subscription %d: %w", sub.ID(), err)
		}

		uc.logger.Debugw("version conflict applying billing event, retrying",
			"event_id", cmd.EventID, "subscription_id", sub.ID(), "attempt", attempt)
	}

	return fmt.Errorf("gave up applying event %s after %d version conflicts", cmd.EventID, maxApplyAttempts)
}
