package subscription

import (
	"context"
	"errors"
)

// ErrVersionConflict is returned by Update when the stored version no
// longer matches the aggregate's version, i.e. a concurrent writer won.
var ErrVersionConflict = errors.New("subscription version conflict")

// Repository defines the interface for subscription persistence.
// Lookups return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	GetByStripeSubscriptionID(ctx context.Context, stripeSubscriptionID string) (*Subscription, error)
	ListByUserID(ctx context.Context, userID uint) ([]*Subscription, error)
	ListByShelterID(ctx context.Context, shelterID uint) ([]*Subscription, error)
	// GetOpenByUserAndShelter returns the user's non-terminal subscription
	// to the shelter, if any. At most one such row exists at a time.
	GetOpenByUserAndShelter(ctx context.Context, userID, shelterID uint) (*Subscription, error)
	// Update persists the aggregate with a compare-and-swap on the version
	// column and returns ErrVersionConflict when the swap loses.
	Update(ctx context.Context, sub *Subscription) error
}
