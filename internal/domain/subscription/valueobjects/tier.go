package valueobjects

import "fmt"

// Tier is one of the three fixed subscription levels. Each tier carries a
// fixed monthly price; the Stripe price ID for a tier is configured per
// shelter.
type Tier string

const (
	TierBasic    Tier = "basic"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// tierPriceCents holds the fixed monthly price of each tier in cents.
var tierPriceCents = map[Tier]int64{
	TierBasic:    999,
	TierStandard: 1499,
	TierPremium:  1999,
}

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	_, ok := tierPriceCents[t]
	return ok
}

// PriceCents returns the fixed monthly price of the tier in cents.
func (t Tier) PriceCents() int64 {
	return tierPriceCents[t]
}

// ParseTier validates a tier string.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tier: %q", s)
	}
	return t, nil
}

// AllTiers lists the tiers in ascending order.
func AllTiers() []Tier {
	return []Tier{TierBasic, TierStandard, TierPremium}
}
