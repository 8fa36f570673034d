package subscription

import (
	"fmt"
	"time"

	vo "fanimal/internal/domain/subscription/valueobjects"
)

// Subscription is the aggregate root for a user's paid relationship to a
// shelter. The local record mirrors a remote Stripe subscription and is
// kept consistent with it through webhook events; remote-reported fields
// are applied as absolute overwrites, never deltas.
type Subscription struct {
	id                   uint
	userID               uint
	shelterID            uint
	stripeSubscriptionID string
	tier                 vo.Tier
	status               vo.SubscriptionStatus
	amountCents          int64
	periodStart          time.Time
	periodEnd            time.Time
	canceledAt           *time.Time
	metadata             map[string]interface{}
	version              int
	dirty                bool
	createdAt            time.Time
	updatedAt            time.Time
}

// NewSubscription creates a local subscription record for a freshly created
// remote Stripe subscription. It starts in the incomplete status pending
// payment confirmation; the billing period is provisional until the first
// invoice.paid event reports the authoritative one.
func NewSubscription(userID, shelterID uint, tier vo.Tier, stripeSubscriptionID string, periodStart, periodEnd time.Time) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if shelterID == 0 {
		return nil, fmt.Errorf("shelter ID is required")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid tier: %s", tier)
	}
	if stripeSubscriptionID == "" {
		return nil, fmt.Errorf("stripe subscription ID is required")
	}
	if periodEnd.Before(periodStart) {
		return nil, fmt.Errorf("period end must be after period start")
	}

	now := time.Now().UTC()
	return &Subscription{
		userID:               userID,
		shelterID:            shelterID,
		stripeSubscriptionID: stripeSubscriptionID,
		tier:                 tier,
		status:               vo.StatusIncomplete,
		amountCents:          tier.PriceCents(),
		periodStart:          periodStart,
		periodEnd:            periodEnd,
		metadata:             make(map[string]interface{}),
		version:              1,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

// SubscriptionReconstructParams carries every persisted field needed to
// rebuild the aggregate from storage.
type SubscriptionReconstructParams struct {
	ID                   uint
	UserID               uint
	ShelterID            uint
	StripeSubscriptionID string
	Tier                 vo.Tier
	Status               vo.SubscriptionStatus
	AmountCents          int64
	PeriodStart          time.Time
	PeriodEnd            time.Time
	CanceledAt           *time.Time
	Metadata             map[string]interface{}
	Version              int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(p SubscriptionReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if p.ShelterID == 0 {
		return nil, fmt.Errorf("shelter ID is required")
	}
	if !p.Tier.IsValid() {
		return nil, fmt.Errorf("invalid tier: %s", p.Tier)
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid subscription status: %s", p.Status)
	}

	metadata := p.Metadata
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Subscription{
		id:                   p.ID,
		userID:               p.UserID,
		shelterID:            p.ShelterID,
		stripeSubscriptionID: p.StripeSubscriptionID,
		tier:                 p.Tier,
		status:               p.Status,
		amountCents:          p.AmountCents,
		periodStart:          p.PeriodStart,
		periodEnd:            p.PeriodEnd,
		canceledAt:           p.CanceledAt,
		metadata:             metadata,
		version:              p.Version,
		createdAt:            p.CreatedAt,
		updatedAt:            p.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uint                     { return s.id }
func (s *Subscription) UserID() uint                 { return s.userID }
func (s *Subscription) ShelterID() uint              { return s.shelterID }
func (s *Subscription) StripeSubscriptionID() string { return s.stripeSubscriptionID }
func (s *Subscription) Tier() vo.Tier                { return s.tier }
func (s *Subscription) Status() vo.SubscriptionStatus {
	return s.status
}
func (s *Subscription) AmountCents() int64               { return s.amountCents }
func (s *Subscription) PeriodStart() time.Time           { return s.periodStart }
func (s *Subscription) PeriodEnd() time.Time             { return s.periodEnd }
func (s *Subscription) CanceledAt() *time.Time           { return s.canceledAt }
func (s *Subscription) Metadata() map[string]interface{} { return s.metadata }

// Version returns the aggregate version used for optimistic locking.
func (s *Subscription) Version() int         { return s.version }
func (s *Subscription) CreatedAt() time.Time { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time { return s.updatedAt }

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// IsOwnedBy reports whether the subscription belongs to the given user.
func (s *Subscription) IsOwnedBy(userID uint) bool {
	return s.userID == userID
}

// ApplyRemoteStatus overwrites the local status with the status reported
// by the billing provider. Applying the current status again is a no-op,
// which keeps redelivered webhook events idempotent, and a transition the
// status machine disallows is a stale or out-of-order delivery that
// leaves the aggregate untouched. Canceled has no outgoing transitions,
// so a canceled subscription can never be resurrected.
func (s *Subscription) ApplyRemoteStatus(remote vo.SubscriptionStatus) error {
	if !vo.ValidStatuses[remote] {
		return fmt.Errorf("unknown remote status: %s", remote)
	}
	if s.status == remote {
		return nil
	}
	if !s.status.CanTransitionTo(remote) {
		return nil
	}

	s.status = remote
	if remote == vo.StatusCanceled {
		now := time.Now().UTC()
		s.canceledAt = &now
	}
	s.touch()
	return nil
}

// UpdatePeriod overwrites the billing period with remote-reported bounds.
func (s *Subscription) UpdatePeriod(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("period bounds are required")
	}
	if end.Before(start) {
		return fmt.Errorf("period end must be after period start")
	}
	if s.status.IsTerminal() {
		return nil
	}
	if s.periodStart.Equal(start) && s.periodEnd.Equal(end) {
		return nil
	}

	s.periodStart = start
	s.periodEnd = end
	s.touch()
	return nil
}

// Cancel marks the subscription canceled. Canceling an already-canceled
// subscription is a no-op.
func (s *Subscription) Cancel() {
	if s.status.IsTerminal() {
		return
	}
	now := time.Now().UTC()
	s.status = vo.StatusCanceled
	s.canceledAt = &now
	s.touch()
}

// ChangeTier re-derives the tier after the remote subscription reports a
// different price. The charged amount follows the new tier.
func (s *Subscription) ChangeTier(tier vo.Tier) error {
	if !tier.IsValid() {
		return fmt.Errorf("invalid tier: %s", tier)
	}
	if s.status.IsTerminal() {
		return nil
	}
	if s.tier == tier {
		return nil
	}

	s.tier = tier
	s.amountCents = tier.PriceCents()
	s.touch()
	return nil
}

// touch marks the aggregate modified. The version bumps once per load,
// which is the unit the repository's compare-and-swap works in.
func (s *Subscription) touch() {
	s.updatedAt = time.Now().UTC()
	if !s.dirty {
		s.version++
		s.dirty = true
	}
}

// Validate performs domain-level validation
func (s *Subscription) Validate() error {
	if s.userID == 0 {
		return fmt.Errorf("user ID is required")
	}
	if s.shelterID == 0 {
		return fmt.Errorf("shelter ID is required")
	}
	if !s.tier.IsValid() {
		return fmt.Errorf("invalid tier: %s", s.tier)
	}
	if !vo.ValidStatuses[s.status] {
		return fmt.Errorf("invalid status: %s", s.status)
	}
	if s.periodEnd.Before(s.periodStart) {
		return fmt.Errorf("period end must be after period start")
	}
	return nil
}
