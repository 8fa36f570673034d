package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"fanimal/internal/application/subscription/usecases"
	"fanimal/internal/shared/constants"
	"fanimal/internal/shared/logger"
	"fanimal/internal/shared/utils"
)

type applyBillingEventUseCase interface {
	Execute(ctx context.Context, cmd usecases.ApplyBillingEventCommand) error
}

// billingEventDeduper filters redelivered events. Stripe retries until it
// sees a 2xx, so the same event ID can arrive more than once.
type billingEventDeduper interface {
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
	Forget(ctx context.Context, eventID string) error
}

// WebhookHandler receives billing events from Stripe. Signature
// verification is the only authentication on this route.
type WebhookHandler struct {
	applyUseCase  applyBillingEventUseCase
	deduper       billingEventDeduper
	webhookSecret string
	logger        logger.Interface
}

func NewWebhookHandler(
	applyUC applyBillingEventUseCase,
	deduper billingEventDeduper,
	webhookSecret string,
	logger logger.Interface,
) *WebhookHandler {
	return &WebhookHandler{
		applyUseCase:  applyUC,
		deduper:       deduper,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// stripeInvoice is the slice of the invoice payload we care about. The
// subscription reference moved under parent.subscription_details in
// recent API versions; the top-level field covers older payloads.
type stripeInvoice struct {
	ID           string `json:"id"`
	Subscription string `json:"subscription"`
	Parent       struct {
		SubscriptionDetails struct {
			Subscription string `json:"subscription"`
		} `json:"subscription_details"`
	} `json:"parent"`
	Lines struct {
		Data []struct {
			Parent struct {
				SubscriptionItemDetails struct {
					Subscription string `json:"subscription"`
				} `json:"subscription_item_details"`
			} `json:"parent"`
		} `json:"data"`
	} `json:"lines"`
}

func (inv *stripeInvoice) subscriptionID() string {
	if inv.Parent.SubscriptionDetails.Subscription != "" {
		return inv.Parent.SubscriptionDetails.Subscription
	}
	if inv.Subscription != "" {
		return inv.Subscription
	}
	for _, line := range inv.Lines.Data {
		if line.Parent.SubscriptionItemDetails.Subscription != "" {
			return line.Parent.SubscriptionItemDetails.Subscription
		}
	}
	return ""
}

// stripeSubscription is the slice of the subscription payload we care
// about. Billing periods live on the items in current API versions.
type stripeSubscription struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Items  struct {
		Data []struct {
			Price struct {
				ID string `json:"id"`
			} `json:"price"`
			CurrentPeriodStart int64 `json:"current_period_start"`
			CurrentPeriodEnd   int64 `json:"current_period_end"`
		} `json:"data"`
	} `json:"items"`
}

// HandleStripeWebhook verifies and dispatches a Stripe event. A bad
// signature gets a 400; everything after verification returns 200 so
// Stripe does not redeliver events we have already recorded or chosen
// to skip. Processing failures are logged and converge through later
// events or the remote refresh on invoice.paid.
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, constants.MaxWebhookBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	event, err := webhook.ConstructEventWithOptions(payload, c.GetHeader(constants.HeaderStripeSig), h.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		h.logger.Warnw("webhook signature verification failed", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid signature")
		return
	}

	ctx := c.Request.Context()

	// Dedup fails open: a redis hiccup must not drop a billing event, and
	// ApplyBillingEvent is safe to run twice for the same event.
	firstSeen := true
	if h.deduper != nil {
		firstSeen, err = h.deduper.MarkProcessed(ctx, event.ID)
		if err != nil {
			h.logger.Warnw("billing event dedup unavailable, processing anyway",
				"event_id", event.ID, "error", err)
			firstSeen = true
		}
	}
	if !firstSeen {
		h.logger.Debugw("skipping redelivered webhook event", "event_id", event.ID)
		c.String(http.StatusOK, "Received")
		return
	}

	if err := h.dispatch(ctx, &event); err != nil {
		h.logger.Errorw("webhook event processing failed",
			"event_id", event.ID,
			"event_type", event.Type,
			"error", err)
		// A manual resend of this event should not be filtered as a duplicate.
		if h.deduper != nil {
			if forgetErr := h.deduper.Forget(ctx, event.ID); forgetErr != nil {
				h.logger.Warnw("failed to clear billing event marker",
					"event_id", event.ID, "error", forgetErr)
			}
		}
	}

	c.String(http.StatusOK, "Received")
}

func (h *WebhookHandler) dispatch(ctx context.Context, event *stripe.Event) error {
	cmd := usecases.ApplyBillingEventCommand{
		EventID: event.ID,
		Type:    usecases.BillingEventType(event.Type),
	}

	switch event.Type {
	case "invoice.paid", "invoice.payment_failed":
		var inv stripeInvoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return err
		}
		cmd.StripeSubscriptionID = inv.subscriptionID()
		if cmd.StripeSubscriptionID == "" {
			h.logger.Debugw("invoice event without subscription reference, ignoring",
				"event_id", event.ID, "invoice_id", inv.ID)
			return nil
		}

	case "customer.subscription.updated", "customer.subscription.deleted":
		var sub stripeSubscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return err
		}
		cmd.StripeSubscriptionID = sub.ID
		cmd.Status = sub.Status
		if len(sub.Items.Data) > 0 {
			item := sub.Items.Data[0]
			cmd.PriceID = item.Price.ID
			if item.CurrentPeriodStart > 0 {
				cmd.PeriodStart = time.Unix(item.CurrentPeriodStart, 0).UTC()
			}
			if item.CurrentPeriodEnd > 0 {
				cmd.PeriodEnd = time.Unix(item.CurrentPeriodEnd, 0).UTC()
			}
		}

	default:
		h.logger.Debugw("ignoring unhandled webhook event type",
			"event_id", event.ID, "event_type", event.Type)
		return nil
	}

	return h.applyUseCase.Execute(ctx, cmd)
}
