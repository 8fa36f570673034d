package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusCanceled.IsTerminal())

	for status := range ValidStatuses {
		if status == StatusCanceled {
			continue
		}
		assert.False(t, status.IsTerminal(), "status %s should not be terminal", status)
	}
}

func TestSubscriptionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from SubscriptionStatus
		to   SubscriptionStatus
		want bool
	}{
		{"incomplete to active", StatusIncomplete, StatusActive, true},
		{"incomplete to expired", StatusIncomplete, StatusIncompleteExpired, true},
		{"active to past_due", StatusActive, StatusPastDue, true},
		{"active to canceled", StatusActive, StatusCanceled, true},
		{"past_due to active", StatusPastDue, StatusActive, true},
		{"past_due to unpaid", StatusPastDue, StatusUnpaid, true},
		{"unpaid to active", StatusUnpaid, StatusActive, true},
		{"canceled to active", StatusCanceled, StatusActive, false},
		{"canceled to anything", StatusCanceled, StatusPastDue, false},
		{"expired to canceled", StatusIncompleteExpired, StatusCanceled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseSubscriptionStatus(t *testing.T) {
	status, err := ParseSubscriptionStatus("active")
	assert.NoError(t, err)
	assert.Equal(t, StatusActive, status)

	_, err = ParseSubscriptionStatus("lapsed")
	assert.Error(t, err)
}
