package billing

import (
	"context"
	"time"
)

// Customer is the gateway's view of a billing-provider customer.
type Customer struct {
	ID string
}

// Subscription is the gateway's view of a remote subscription. Fields are
// reported by the provider and treated as authoritative.
type Subscription struct {
	ID           string
	CustomerID   string
	Status       string
	PriceID      string
	PeriodStart  time.Time
	PeriodEnd    time.Time
	ClientSecret string
}

// CreateSubscriptionParams carries everything needed to open a remote
// subscription. IdempotencyKey guards against double submission when a
// request is retried after a network failure.
type CreateSubscriptionParams struct {
	CustomerID     string
	PriceID        string
	IdempotencyKey string
	Metadata       map[string]string
}

// Gateway abstracts the billing provider. Implementations do not retry;
// callers decide whether a failed remote call is retried.
type Gateway interface {
	CreateCustomer(ctx context.Context, email, name string) (*Customer, error)
	AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	CreateSubscription(ctx context.Context, params CreateSubscriptionParams) (*Subscription, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) error
}
