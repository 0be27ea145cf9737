package service

import (
	"context"
	"time"
)

// ChangeEvent is a row-level change notification keyed by entity name.
// Delivery is at-least-once with no ordering guarantee across rows, so the
// payload carries identifiers only; listeners reconcile by re-reading
// current state rather than trusting the event body.
type ChangeEvent struct {
	EventID    string    `json:"event_id"`
	Entity     string    `json:"entity"`              // e.g. "calls", "vendors"
	Type       string    `json:"type"`                // "insert" or "update"
	RowID      string    `json:"row_id"`              // Primary key of the affected row.
	VendorID   string    `json:"vendor_id,omitempty"` // Interested vendor, when applicable.
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for the change notification feed.
type EventPublisher interface {
	// PublishChangeEvent publishes a row-level change notification.
	PublishChangeEvent(ctx context.Context, event *ChangeEvent) error

	// Close releases publisher resources.
	Close() error
}
