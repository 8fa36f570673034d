// Package billing implements the billing gateway against the Stripe API.
package billing

import (
	"context"
	"fmt"
	"time"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/paymentmethod"
	"github.com/stripe/stripe-go/v82/subscription"

	domainbilling "fanimal/internal/domain/billing"
	"fanimal/internal/shared/logger"
)

// StripeGateway implements billing.Gateway using the stripe-go client.
// Calls are not retried here; callers own retry policy.
type StripeGateway struct {
	logger logger.Interface
}

// NewStripeGateway configures the global stripe client with the API key.
func NewStripeGateway(apiKey string, logger logger.Interface) *StripeGateway {
	stripe.Key = apiKey
	return &StripeGateway{logger: logger}
}

func (g *StripeGateway) CreateCustomer(_ context.Context, email, name string) (*domainbilling.Customer, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	c, err := customer.New(params)
	if err != nil {
		return nil, fmt.Errorf("create stripe customer: %w", err)
	}
	return &domainbilling.Customer{ID: c.ID}, nil
}

func (g *StripeGateway) AttachPaymentMethod(_ context.Context, customerID, paymentMethodID string) error {
	params := &stripe.PaymentMethodAttachParams{
		Customer: stripe.String(customerID),
	}
	if _, err := paymentmethod.Attach(paymentMethodID, params); err != nil {
		return fmt.Errorf("attach payment method: %w", err)
	}
	return nil
}

func (g *StripeGateway) SetDefaultPaymentMethod(_ context.Context, customerID, paymentMethodID string) error {
	params := &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	}
	if _, err := customer.Update(customerID, params); err != nil {
		return fmt.Errorf("set default payment method: %w", err)
	}
	return nil
}

// CreateSubscription opens an incomplete subscription so the first payment
// is confirmed client-side with the returned client secret.
func (g *StripeGateway) CreateSubscription(_ context.Context, p domainbilling.CreateSubscriptionParams) (*domainbilling.Subscription, error) {
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(p.CustomerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(p.PriceID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
		Metadata:        p.Metadata,
	}
	params.AddExpand("latest_invoice.confirmation_secret")
	if p.IdempotencyKey != "" {
		params.IdempotencyKey = stripe.String(p.IdempotencyKey)
	}

	sub, err := subscription.New(params)
	if err != nil {
		return nil, fmt.Errorf("create stripe subscription: %w", err)
	}

	result := fromStripeSubscription(sub)
	if sub.LatestInvoice != nil && sub.LatestInvoice.ConfirmationSecret != nil {
		result.ClientSecret = sub.LatestInvoice.ConfirmationSecret.ClientSecret
	}
	if result.ClientSecret == "" {
		g.logger.Warnw("stripe subscription created without client secret", "stripe_subscription_id", sub.ID)
	}
	return result, nil
}

func (g *StripeGateway) GetSubscription(_ context.Context, subscriptionID string) (*domainbilling.Subscription, error) {
	sub, err := subscription.Get(subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("get stripe subscription: %w", err)
	}
	return fromStripeSubscription(sub), nil
}

func (g *StripeGateway) CancelSubscription(_ context.Context, subscriptionID string) error {
	if _, err := subscription.Cancel(subscriptionID, &stripe.SubscriptionCancelParams{}); err != nil {
		return fmt.Errorf("cancel stripe subscription: %w", err)
	}
	return nil
}

// fromStripeSubscription maps the API object to the gateway type. Billing
// period bounds live on the subscription item.
func fromStripeSubscription(sub *stripe.Subscription) *domainbilling.Subscription {
	out := &domainbilling.Subscription{
		ID:     sub.ID,
		Status: string(sub.Status),
	}
	if sub.Customer != nil {
		out.CustomerID = sub.Customer.ID
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 {
		item := sub.Items.Data[0]
		if item.Price != nil {
			out.PriceID = item.Price.ID
		}
		if item.CurrentPeriodStart > 0 {
			out.PeriodStart = time.Unix(item.CurrentPeriodStart, 0).UTC()
		}
		if item.CurrentPeriodEnd > 0 {
			out.PeriodEnd = time.Unix(item.CurrentPeriodEnd, 0).UTC()
		}
	}
	return out
}
