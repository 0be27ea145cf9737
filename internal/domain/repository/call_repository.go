// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"hail/internal/domain/entity"
	"hail/internal/errors"

	"github.com/google/uuid"
)

// ErrCallNotFound is returned when a call is not found.
var ErrCallNotFound = errors.New("call not found")

// CallRepository defines the interface for call-log database operations.
//
// Status transitions are guarded in SQL: MarkAcknowledged and MarkCompleted
// only match rows still in an earlier status, so concurrent attempts race
// safely and a lost race surfaces as updated == false, never as corruption.
type CallRepository interface {
	// Create persists a new call with status pending.
	Create(ctx context.Context, call *entity.Call) error

	// FindByID retrieves a call by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Call, error)

	// FindByCustomer retrieves all calls placed by the given customer, newest first.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Call, error)

	// FindByVendor retrieves all calls addressed to the given vendor, newest first.
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Call, error)

	// MarkAcknowledged moves a pending call to acknowledged and stamps the
	// acknowledgement time. Returns updated == false when the call was no
	// longer pending (already acknowledged or completed).
	MarkAcknowledged(ctx context.Context, id uuid.UUID, at time.Time) (updated bool, err error)

	// MarkCompleted moves a pending or acknowledged call to completed and
	// stamps the completion time. Returns updated == false when the call
	// was already completed.
	MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) (updated bool, err error)
}
