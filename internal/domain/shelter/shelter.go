package shelter

import (
	"fmt"
	"strings"
	"time"

	vo "fanimal/internal/domain/subscription/valueobjects"
)

// Shelter is the aggregate root for a listed animal shelter. Each shelter
// carries its own Stripe product and one price ID per subscription tier;
// the three price IDs must stay pairwise distinct so that a price reported
// by a webhook maps back to exactly one tier.
type Shelter struct {
	id              uint
	name            string
	description     string
	address         string
	ownerID         uint
	stripeProductID string
	tierPriceIDs    map[vo.Tier]string
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewShelter creates a shelter owned by the creating user. Prices are
// configured separately once the Stripe product exists.
func NewShelter(name, description, address string, ownerID uint) (*Shelter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("shelter name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("shelter name cannot exceed 255 characters")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := time.Now().UTC()
	return &Shelter{
		name:         name,
		description:  description,
		address:      strings.TrimSpace(address),
		ownerID:      ownerID,
		tierPriceIDs: make(map[vo.Tier]string),
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ShelterReconstructParams carries every persisted field needed to rebuild
// the aggregate from storage.
type ShelterReconstructParams struct {
	ID              uint
	Name            string
	Description     string
	Address         string
	OwnerID         uint
	StripeProductID string
	TierPriceIDs    map[vo.Tier]string
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReconstructShelter rebuilds a shelter from persistence.
func ReconstructShelter(p ShelterReconstructParams) (*Shelter, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("shelter ID cannot be zero")
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("shelter name is required")
	}
	if p.OwnerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	prices := p.TierPriceIDs
	if prices == nil {
		prices = make(map[vo.Tier]string)
	}

	return &Shelter{
		id:              p.ID,
		name:            p.Name,
		description:     p.Description,
		address:         p.Address,
		ownerID:         p.OwnerID,
		stripeProductID: p.StripeProductID,
		tierPriceIDs:    prices,
		version:         p.Version,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

func (s *Shelter) ID() uint                { return s.id }
func (s *Shelter) Name() string            { return s.name }
func (s *Shelter) Description() string     { return s.description }
func (s *Shelter) Address() string         { return s.address }
func (s *Shelter) OwnerID() uint           { return s.ownerID }
func (s *Shelter) StripeProductID() string { return s.stripeProductID }
func (s *Shelter) Version() int            { return s.version }
func (s *Shelter) CreatedAt() time.Time    { return s.createdAt }
func (s *Shelter) UpdatedAt() time.Time    { return s.updatedAt }

// TierPriceIDs returns a copy of the configured price IDs keyed by tier.
func (s *Shelter) TierPriceIDs() map[vo.Tier]string {
	out := make(map[vo.Tier]string, len(s.tierPriceIDs))
	for tier, priceID := range s.tierPriceIDs {
		out[tier] = priceID
	}
	return out
}

// SetID sets the shelter ID (only for persistence layer use)
func (s *Shelter) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("shelter ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("shelter ID cannot be zero")
	}
	s.id = id
	return nil
}

// IsOwnedBy reports whether the shelter belongs to the given user.
func (s *Shelter) IsOwnedBy(userID uint) bool {
	return s.ownerID == userID
}

// Update replaces the shelter's descriptive fields.
func (s *Shelter) Update(name, description, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("shelter name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("shelter name cannot exceed 255 characters")
	}

	s.name = name
	s.description = description
	s.address = strings.TrimSpace(address)
	s.touch()
	return nil
}

// ConfigurePrices records the Stripe product and the per-tier price IDs.
// All three prices must be present and pairwise distinct; otherwise a
// webhook-reported price could map back to more than one tier.
func (s *Shelter) ConfigurePrices(productID, priceBasic, priceStandard, pricePremium string) error {
	if productID == "" {
		return fmt.Errorf("stripe product ID is required")
	}
	if priceBasic == "" || priceStandard == "" || pricePremium == "" {
		return fmt.Errorf("a price ID is required for every tier")
	}
	if priceBasic == priceStandard || priceBasic == pricePremium || priceStandard == pricePremium {
		return fmt.Errorf("tier price IDs must be distinct")
	}

	s.stripeProductID = productID
	s.tierPriceIDs = map[vo.Tier]string{
		vo.TierBasic:    priceBasic,
		vo.TierStandard: priceStandard,
		vo.TierPremium:  pricePremium,
	}
	s.touch()
	return nil
}

// HasConfiguredPrices reports whether every tier has a price ID.
func (s *Shelter) HasConfiguredPrices() bool {
	return len(s.tierPriceIDs) == len(vo.AllTiers())
}

// PriceIDForTier resolves the Stripe price ID to charge for a tier.
func (s *Shelter) PriceIDForTier(tier vo.Tier) (string, error) {
	priceID, ok := s.tierPriceIDs[tier]
	if !ok || priceID == "" {
		return "", fmt.Errorf("shelter %d has no price configured for tier %s", s.id, tier)
	}
	return priceID, nil
}

// TierForPriceID reverse-maps a Stripe price ID to its tier.
func (s *Shelter) TierForPriceID(priceID string) (vo.Tier, bool) {
	if priceID == "" {
		return "", false
	}
	for tier, id := range s.tierPriceIDs {
		if id == priceID {
			return tier, true
		}
	}
	return "", false
}

func (s *Shelter) touch() {
	s.updatedAt = time.Now().UTC()
	s.version++
}
