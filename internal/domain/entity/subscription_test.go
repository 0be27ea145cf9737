package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVendorSubscription_Covers(t *testing.T) {
	now := time.Now()
	today := now.Truncate(24 * time.Hour)

	tests := []struct {
		name     string
		status   SubscriptionStatus
		endDate  time.Time
		expected bool
	}{
		{"active ending in the future", SubscriptionStatusActive, today.AddDate(0, 0, 10), true},
		{"active ending today is still covered", SubscriptionStatusActive, today, true},
		{"active ending today with time-of-day", SubscriptionStatusActive, today.Add(3 * time.Hour), true},
		{"active ended yesterday", SubscriptionStatusActive, today.AddDate(0, 0, -1), false},
		{"pending never covers", SubscriptionStatusPending, today.AddDate(0, 0, 10), false},
		{"expired never covers", SubscriptionStatusExpired, today.AddDate(0, 0, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subscription := &VendorSubscription{
				StartDate: today.AddDate(0, 0, -20),
				EndDate:   tt.endDate,
				Status:    tt.status,
			}
			assert.Equal(t, tt.expected, subscription.Covers(now))
		})
	}
}

func TestSubscriptionStatus_IsValid(t *testing.T) {
	assert.True(t, SubscriptionStatusPending.IsValid())
	assert.True(t, SubscriptionStatusActive.IsValid())
	assert.True(t, SubscriptionStatusExpired.IsValid())
	assert.False(t, SubscriptionStatus("cancelled").IsValid())
}
