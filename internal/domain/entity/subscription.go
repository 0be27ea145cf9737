// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the state of a paid coverage period.
type SubscriptionStatus string

const (
	// SubscriptionStatusPending indicates a period that has not been confirmed paid.
	SubscriptionStatusPending SubscriptionStatus = "pending"
	// SubscriptionStatusActive indicates a confirmed paid period.
	SubscriptionStatusActive SubscriptionStatus = "active"
	// SubscriptionStatusExpired indicates a period explicitly marked as lapsed.
	SubscriptionStatusExpired SubscriptionStatus = "expired"
)

// IsValid checks if the SubscriptionStatus is a valid value.
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusPending, SubscriptionStatusActive, SubscriptionStatusExpired:
		return true
	default:
		return false
	}
}

// String returns the string representation of the SubscriptionStatus.
func (s SubscriptionStatus) String() string {
	return string(s)
}

// VendorSubscription is one paid coverage period in the append-mostly
// subscription ledger. Rows are created per payment event and never
// mutated afterwards; eligibility is derived at read time.
type VendorSubscription struct {
	ID        uuid.UUID          `json:"id"`
	VendorID  uuid.UUID          `json:"vendor_id"`
	StartDate time.Time          `json:"start_date"` // Calendar date, time-of-day ignored.
	EndDate   time.Time          `json:"end_date"`   // Calendar date, inclusive.
	Amount    int64              `json:"amount"`     // Fee in minor currency units.
	Status    SubscriptionStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

// Covers reports whether this row makes the vendor eligible at the given
// time: status is active and the end date has not passed. There is no
// background job flipping stored status; expiry is this derived predicate.
func (s *VendorSubscription) Covers(now time.Time) bool {
	if s.Status != SubscriptionStatusActive {
		return false
	}

	today := now.Truncate(24 * time.Hour)

	return !s.EndDate.Truncate(24 * time.Hour).Before(today)
}
