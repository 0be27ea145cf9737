// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"hail/internal/domain/entity"
	"hail/internal/errors"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when no matching subscription row exists.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository defines the interface for the subscription ledger.
// The ledger is append-mostly: rows are inserted per payment event and never
// updated afterwards; eligibility is derived at query time.
type SubscriptionRepository interface {
	// Create appends a new coverage period to the ledger.
	Create(ctx context.Context, subscription *entity.VendorSubscription) error

	// FindByVendor retrieves all ledger rows for a vendor, newest first.
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorSubscription, error)

	// FindCovering retrieves a row with status active and end date on or
	// after the given day, if one exists. Returns ErrSubscriptionNotFound
	// when the vendor has no covering subscription.
	FindCovering(ctx context.Context, vendorID uuid.UUID, now time.Time) (*entity.VendorSubscription, error)
}
