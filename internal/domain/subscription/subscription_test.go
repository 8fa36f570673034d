package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "fanimal/internal/domain/subscription/valueobjects"
)

func newTestSubscription(t *testing.T) *Subscription {
	t.Helper()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	sub, err := NewSubscription(1, 2, vo.TierStandard, "sub_123", start, end)
	require.NoError(t, err)
	return sub
}

func TestNewSubscription(t *testing.T) {
	sub := newTestSubscription(t)

	assert.Equal(t, uint(1), sub.UserID())
	assert.Equal(t, uint(2), sub.ShelterID())
	assert.Equal(t, "sub_123", sub.StripeSubscriptionID())
	assert.Equal(t, vo.TierStandard, sub.Tier())
	assert.Equal(t, vo.StatusIncomplete, sub.Status())
	assert.Equal(t, vo.TierStandard.PriceCents(), sub.AmountCents())
	assert.Equal(t, 1, sub.Version())
	assert.Nil(t, sub.CanceledAt())
}

func TestNewSubscription_Validation(t *testing.T) {
	start := time.Now().UTC()
	end := start.AddDate(0, 1, 0)

	_, err := NewSubscription(0, 2, vo.TierBasic, "sub_123", start, end)
	assert.Error(t, err)

	_, err = NewSubscription(1, 0, vo.TierBasic, "sub_123", start, end)
	assert.Error(t, err)

	_, err = NewSubscription(1, 2, vo.Tier("gold"), "sub_123", start, end)
	assert.Error(t, err)

	_, err = NewSubscription(1, 2, vo.TierBasic, "", start, end)
	assert.Error(t, err)

	_, err = NewSubscription(1, 2, vo.TierBasic, "sub_123", end, start)
	assert.Error(t, err)
}

func TestSubscription_ApplyRemoteStatus(t *testing.T) {
	sub := newTestSubscription(t)

	err := sub.ApplyRemoteStatus(vo.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, 2, sub.Version())

	// same status again is a no-op
	err = sub.ApplyRemoteStatus(vo.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Version())

	err = sub.ApplyRemoteStatus(vo.SubscriptionStatus("lapsed"))
	assert.Error(t, err)
}

func TestSubscription_ApplyRemoteStatus_DisallowedTransitionIgnored(t *testing.T) {
	sub := newTestSubscription(t)
	require.NoError(t, sub.ApplyRemoteStatus(vo.StatusActive))
	versionAfterActivate := sub.Version()

	// An out-of-order delivery reporting the pre-activation status must
	// not roll the subscription back.
	require.NoError(t, sub.ApplyRemoteStatus(vo.StatusIncomplete))
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, versionAfterActivate, sub.Version())

	require.NoError(t, sub.ApplyRemoteStatus(vo.StatusTrialing))
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, versionAfterActivate, sub.Version())
}

func TestSubscription_ApplyRemoteStatus_CanceledIsTerminal(t *testing.T) {
	sub := newTestSubscription(t)

	require.NoError(t, sub.ApplyRemoteStatus(vo.StatusCanceled))
	assert.Equal(t, vo.StatusCanceled, sub.Status())
	require.NotNil(t, sub.CanceledAt())

	versionAfterCancel := sub.Version()
	require.NoError(t, sub.ApplyRemoteStatus(vo.StatusActive))
	assert.Equal(t, vo.StatusCanceled, sub.Status())
	assert.Equal(t, versionAfterCancel, sub.Version())
}

func TestSubscription_UpdatePeriod(t *testing.T) {
	sub := newTestSubscription(t)
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	require.NoError(t, sub.UpdatePeriod(start, end))
	assert.Equal(t, start, sub.PeriodStart())
	assert.Equal(t, end, sub.PeriodEnd())
	assert.Equal(t, 2, sub.Version())

	// identical bounds are a no-op
	require.NoError(t, sub.UpdatePeriod(start, end))
	assert.Equal(t, 2, sub.Version())

	assert.Error(t, sub.UpdatePeriod(end, start))
	assert.Error(t, sub.UpdatePeriod(time.Time{}, end))
}

func TestSubscription_Cancel_Idempotent(t *testing.T) {
	sub := newTestSubscription(t)

	sub.Cancel()
	assert.Equal(t, vo.StatusCanceled, sub.Status())
	require.NotNil(t, sub.CanceledAt())
	firstCanceledAt := *sub.CanceledAt()
	version := sub.Version()

	sub.Cancel()
	assert.Equal(t, version, sub.Version())
	assert.Equal(t, firstCanceledAt, *sub.CanceledAt())
}

func TestSubscription_ChangeTier(t *testing.T) {
	sub := newTestSubscription(t)

	require.NoError(t, sub.ChangeTier(vo.TierPremium))
	assert.Equal(t, vo.TierPremium, sub.Tier())
	assert.Equal(t, vo.TierPremium.PriceCents(), sub.AmountCents())

	// same tier is a no-op
	version := sub.Version()
	require.NoError(t, sub.ChangeTier(vo.TierPremium))
	assert.Equal(t, version, sub.Version())

	assert.Error(t, sub.ChangeTier(vo.Tier("gold")))

	sub.Cancel()
	version = sub.Version()
	require.NoError(t, sub.ChangeTier(vo.TierBasic))
	assert.Equal(t, vo.TierPremium, sub.Tier())
	assert.Equal(t, version, sub.Version())
}

func TestReconstructSubscription(t *testing.T) {
	now := time.Now().UTC()
	sub, err := ReconstructSubscription(SubscriptionReconstructParams{
		ID:                   10,
		UserID:               1,
		ShelterID:            2,
		StripeSubscriptionID: "sub_123",
		Tier:                 vo.TierBasic,
		Status:               vo.StatusActive,
		AmountCents:          999,
		PeriodStart:          now,
		PeriodEnd:            now.AddDate(0, 1, 0),
		Version:              3,
		CreatedAt:            now,
		UpdatedAt:            now,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(10), sub.ID())
	assert.Equal(t, 3, sub.Version())
	assert.NotNil(t, sub.Metadata())

	_, err = ReconstructSubscription(SubscriptionReconstructParams{ID: 0})
	assert.Error(t, err)
}
