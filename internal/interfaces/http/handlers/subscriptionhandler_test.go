package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanimal/internal/application/subscription/usecases"
	"fanimal/internal/domain/subscription"
	subvo "fanimal/internal/domain/subscription/valueobjects"
	"fanimal/internal/interfaces/http/handlers/testutil"
	"fanimal/internal/shared/authorization"
	"fanimal/internal/shared/errors"
)

type mockSubscribeUC struct {
	result  *usecases.SubscribeResult
	err     error
	lastCmd usecases.SubscribeCommand
}

func (m *mockSubscribeUC) Execute(ctx context.Context, cmd usecases.SubscribeCommand) (*usecases.SubscribeResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockListSubscriptionsUC struct {
	result *usecases.ListSubscriptionsResult
	err    error
}

func (m *mockListSubscriptionsUC) Execute(ctx context.Context, cmd usecases.ListSubscriptionsCommand) (*usecases.ListSubscriptionsResult, error) {
	return m.result, m.err
}

type mockUnsubscribeUC struct {
	err     error
	lastCmd usecases.UnsubscribeCommand
}

func (m *mockUnsubscribeUC) Execute(ctx context.Context, cmd usecases.UnsubscribeCommand) error {
	m.lastCmd = cmd
	return m.err
}

func testSubscription(t *testing.T) *subscription.Subscription {
	t.Helper()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	sub, err := subscription.ReconstructSubscription(subscription.SubscriptionReconstructParams{
		ID:                   10,
		UserID:               3,
		ShelterID:            7,
		StripeSubscriptionID: "sub_1",
		Tier:                 subvo.TierStandard,
		Status:               subvo.StatusIncomplete,
		AmountCents:          1499,
		PeriodStart:          start,
		PeriodEnd:            start.AddDate(0, 1, 0),
		Version:              1,
		CreatedAt:            start,
		UpdatedAt:            start,
	})
	require.NoError(t, err)
	return sub
}

func TestSubscriptionHandler_Subscribe(t *testing.T) {
	t.Run("returns subscription with user, shelter and client secret", func(t *testing.T) {
		subscribeUC := &mockSubscribeUC{result: &usecases.SubscribeResult{
			Subscription: testSubscription(t),
			User:         testUser(t),
			Shelter:      testShelter(t),
			ClientSecret: "pi_secret_123",
		}}
		handler := NewSubscriptionHandler(subscribeUC, &mockListSubscriptionsUC{}, &mockUnsubscribeUC{}, stubLogger{})

		c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions", SubscribeRequest{
			ShelterID:       7,
			Tier:            "standard",
			PaymentMethodID: "pm_1",
		})
		testutil.SetAuthContext(c, 3, authorization.RoleUser)

		handler.Subscribe(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "pi_secret_123")
		assert.Contains(t, w.Body.String(), `"amount_cents":1499`)
		assert.Contains(t, w.Body.String(), "alice@example.com")
		assert.Contains(t, w.Body.String(), "Happy Paws")
		assert.Equal(t, uint(3), subscribeUC.lastCmd.UserID)
		assert.Equal(t, "standard", subscribeUC.lastCmd.Tier)
	})

	t.Run("open subscription maps to conflict", func(t *testing.T) {
		subscribeUC := &mockSubscribeUC{err: errors.NewConflictError("subscription already exists for this shelter")}
		handler := NewSubscriptionHandler(subscribeUC, &mockListSubscriptionsUC{}, &mockUnsubscribeUC{}, stubLogger{})

		c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions", SubscribeRequest{
			ShelterID:       7,
			Tier:            "standard",
			PaymentMethodID: "pm_1",
		})
		testutil.SetAuthContext(c, 3, authorization.RoleUser)

		handler.Subscribe(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing payment method rejected by binding", func(t *testing.T) {
		handler := NewSubscriptionHandler(&mockSubscribeUC{}, &mockListSubscriptionsUC{}, &mockUnsubscribeUC{}, stubLogger{})

		c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions", map[string]interface{}{
			"shelter_id": 7,
			"tier":       "standard",
		})
		testutil.SetAuthContext(c, 3, authorization.RoleUser)

		handler.Subscribe(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSubscriptionHandler_ListMine(t *testing.T) {
	listUC := &mockListSubscriptionsUC{result: &usecases.ListSubscriptionsResult{
		Subscriptions: []*subscription.Subscription{testSubscription(t)},
	}}
	handler := NewSubscriptionHandler(&mockSubscribeUC{}, listUC, &mockUnsubscribeUC{}, stubLogger{})

	c, w := testutil.NewTestContext(http.MethodGet, "/subscriptions", nil)
	testutil.SetAuthContext(c, 3, authorization.RoleUser)

	handler.ListMine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sub_1")
}

func TestSubscriptionHandler_Unsubscribe(t *testing.T) {
	t.Run("cancels own subscription", func(t *testing.T) {
		unsubscribeUC := &mockUnsubscribeUC{}
		handler := NewSubscriptionHandler(&mockSubscribeUC{}, &mockListSubscriptionsUC{}, unsubscribeUC, stubLogger{})

		c, w := testutil.NewTestContext(http.MethodDelete, "/subscriptions/10", nil)
		testutil.SetURLParam(c, "id", "10")
		testutil.SetAuthContext(c, 3, authorization.RoleUser)

		handler.Unsubscribe(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, uint(10), unsubscribeUC.lastCmd.SubscriptionID)
		assert.Equal(t, uint(3), unsubscribeUC.lastCmd.ActorID)
	})

	t.Run("foreign subscription maps to forbidden", func(t *testing.T) {
		unsubscribeUC := &mockUnsubscribeUC{err: errors.NewForbiddenError("not the subscription owner")}
		handler := NewSubscriptionHandler(&mockSubscribeUC{}, &mockListSubscriptionsUC{}, unsubscribeUC, stubLogger{})

		c, w := testutil.NewTestContext(http.MethodDelete, "/subscriptions/10", nil)
		testutil.SetURLParam(c, "id", "10")
		testutil.SetAuthContext(c, 8, authorization.RoleUser)

		handler.Unsubscribe(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("invalid id rejected", func(t *testing.T) {
		handler := NewSubscriptionHandler(&mockSubscribeUC{}, &mockListSubscriptionsUC{}, &mockUnsubscribeUC{}, stubLogger{})

		c, w := testutil.NewTestContext(http.MethodDelete, "/subscriptions/zero", nil)
		testutil.SetURLParam(c, "id", "zero")
		testutil.SetAuthContext(c, 3, authorization.RoleUser)

		handler.Unsubscribe(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
