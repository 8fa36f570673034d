package dto

import (
	"time"

	"fanimal/internal/domain/subscription"
)

// SubscriptionDTO is the outward representation of a subscription.
type SubscriptionDTO struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	ShelterID   uint       `json:"shelter_id"`
	Tier        string     `json:"tier"`
	Status      string     `json:"status"`
	AmountCents int64      `json:"amount_cents"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	CanceledAt  *time.Time `json:"canceled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FromSubscription converts a subscription aggregate to its DTO.
func FromSubscription(s *subscription.Subscription) *SubscriptionDTO {
	if s == nil {
		return nil
	}
	return &SubscriptionDTO{
		ID:          s.ID(),
		UserID:      s.UserID(),
		ShelterID:   s.ShelterID(),
		Tier:        s.Tier().String(),
		Status:      s.Status().String(),
		AmountCents: s.AmountCents(),
		StartDate:   s.PeriodStart(),
		EndDate:     s.PeriodEnd(),
		CanceledAt:  s.CanceledAt(),
		CreatedAt:   s.CreatedAt(),
	}
}

// FromSubscriptions converts a slice of subscription aggregates.
func FromSubscriptions(subs []*subscription.Subscription) []*SubscriptionDTO {
	out := make([]*SubscriptionDTO, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromSubscription(s))
	}
	return out
}
