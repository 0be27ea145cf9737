// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CallStatus represents the lifecycle state of a call.
type CallStatus string

const (
	// CallStatusPending is the initial status set at insert.
	CallStatusPending CallStatus = "pending"
	// CallStatusAcknowledged means the target vendor accepted or viewed the call.
	CallStatusAcknowledged CallStatus = "acknowledged"
	// CallStatusCompleted is the terminal status.
	CallStatusCompleted CallStatus = "completed"
)

// IsValid checks if the CallStatus is a valid value.
func (s CallStatus) IsValid() bool {
	switch s {
	case CallStatusPending, CallStatusAcknowledged, CallStatusCompleted:
		return true
	default:
		return false
	}
}

// String returns the string representation of the CallStatus.
func (s CallStatus) String() string {
	return string(s)
}

// rank orders statuses along the lifecycle. Higher rank is further along.
func (s CallStatus) rank() int {
	switch s {
	case CallStatusPending:
		return 0
	case CallStatusAcknowledged:
		return 1
	case CallStatusCompleted:
		return 2
	default:
		return -1
	}
}

// CanTransitionTo reports whether moving from s to next is legal.
// The lifecycle is monotonic: forward moves (including the skip from
// pending straight to completed) are allowed, backward moves never are.
func (s CallStatus) CanTransitionTo(next CallStatus) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}

	return next.rank() > s.rank()
}

// Call is a customer-initiated request for a vendor to come to the
// customer's location. The customer inserts it; only the owning vendor
// mutates it afterwards.
type Call struct {
	ID             uuid.UUID  `json:"id"`
	CustomerID     uuid.UUID  `json:"customer_id"` // Identity of the customer who placed the call.
	VendorID       uuid.UUID  `json:"vendor_id"`   // Vendor the call is addressed to.
	Latitude       float64    `json:"latitude"`    // Customer latitude at placement time.
	Longitude      float64    `json:"longitude"`   // Customer longitude at placement time.
	Status         CallStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	AcknowledgedAt *time.Time `json:"acknowledged_at"` // Set when the vendor acknowledges. Nil if skipped.
	CompletedAt    *time.Time `json:"completed_at"`    // Set when the vendor completes.
}
