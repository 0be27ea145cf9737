// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"hail/internal/domain/entity"
	"hail/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for vendor persistence.
var (
	// ErrVendorNotFound is returned when a vendor is not found.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrDuplicateVendor is returned when an identity already owns a vendor record.
	ErrDuplicateVendor = errors.New("vendor already exists for this identity")
)

// VendorRepository defines the interface for vendor-related database operations.
type VendorRepository interface {
	// Create persists a new vendor record.
	Create(ctx context.Context, vendor *entity.Vendor) error

	// FindByID retrieves a vendor by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// FindByOwner retrieves the vendor record owned by the given identity.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Vendor, error)

	// FindActiveWithLocation retrieves all vendors that are active and have
	// broadcast a coordinate pair. This backs customer discovery.
	FindActiveWithLocation(ctx context.Context) ([]*entity.Vendor, error)

	// UpdateProfile updates business metadata (name, type, description) only.
	UpdateProfile(ctx context.Context, vendor *entity.Vendor) error

	// UpdateLocation replaces the whole location snapshot (latitude,
	// longitude, location timestamp) in a single statement. Last write wins.
	UpdateLocation(ctx context.Context, vendorID uuid.UUID, lat, lon float64, at time.Time) error

	// Activate sets the active flag together with a fresh location snapshot.
	// The flag is never set true without coordinates in the same statement.
	Activate(ctx context.Context, vendorID uuid.UUID, lat, lon float64, at time.Time) error

	// Deactivate clears the active flag and leaves coordinates untouched.
	Deactivate(ctx context.Context, vendorID uuid.UUID) error
}
