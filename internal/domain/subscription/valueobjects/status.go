package valueobjects

import "fmt"

// SubscriptionStatus mirrors the Stripe subscription status vocabulary so
// that webhook-reported statuses map onto local state without translation.
type SubscriptionStatus string

const (
	StatusIncomplete        SubscriptionStatus = "incomplete"
	StatusIncompleteExpired SubscriptionStatus = "incomplete_expired"
	StatusTrialing          SubscriptionStatus = "trialing"
	StatusActive            SubscriptionStatus = "active"
	StatusPastDue           SubscriptionStatus = "past_due"
	StatusCanceled          SubscriptionStatus = "canceled"
	StatusUnpaid            SubscriptionStatus = "unpaid"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status permits no further transitions.
// A canceled subscription can never be resurrected by a webhook event.
func (s SubscriptionStatus) IsTerminal() bool {
	return s == StatusCanceled
}

// CanTransitionTo reports whether the status machine allows moving to
// target. Remote statuses that violate the machine come from stale or
// out-of-order webhook deliveries and must not be applied.
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusIncomplete:        {StatusActive, StatusIncompleteExpired, StatusPastDue, StatusCanceled},
		StatusIncompleteExpired: {StatusCanceled},
		StatusTrialing:          {StatusActive, StatusPastDue, StatusCanceled},
		StatusActive:            {StatusPastDue, StatusCanceled},
		StatusPastDue:           {StatusActive, StatusUnpaid, StatusCanceled},
		StatusUnpaid:            {StatusActive, StatusCanceled},
		StatusCanceled:          {},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	for _, allowedStatus := range allowed {
		if allowedStatus == target {
			return true
		}
	}
	return false
}

// ParseSubscriptionStatus validates a raw status string, typically one
// reported by a webhook payload.
func ParseSubscriptionStatus(raw string) (SubscriptionStatus, error) {
	status := SubscriptionStatus(raw)
	if !ValidStatuses[status] {
		return "", fmt.Errorf("invalid subscription status: %s", raw)
	}
	return status, nil
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusIncomplete:        true,
	StatusIncompleteExpired: true,
	StatusTrialing:          true,
	StatusActive:            true,
	StatusPastDue:           true,
	StatusCanceled:          true,
	StatusUnpaid:            true,
}
