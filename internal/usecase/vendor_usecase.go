package usecase

import (
	"context"

	"hail/internal/domain/entity"
	"hail/internal/domain/policy"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateVendorInput defines the data required to create a vendor record.
type CreateVendorInput struct {
	BusinessName string
	BusinessType string
	Description  string
}

// UpdateVendorProfileInput defines the mutable business metadata of a vendor.
type UpdateVendorProfileInput struct {
	BusinessName string
	BusinessType string
	Description  string
}

// BroadcastLocationInput carries one GPS fix from the vendor's device.
type BroadcastLocationInput struct {
	Latitude  float64
	Longitude float64
}

// DiscoverVendorsInput carries the customer's position, when known.
// Both coordinates are nil when the customer declined to share location.
type DiscoverVendorsInput struct {
	Latitude  *float64
	Longitude *float64
}

// --- Output DTOs ---

// VendorView is a vendor row decorated for discovery responses.
// DistanceKm is nil when the customer's position was not provided.
type VendorView struct {
	Vendor     *entity.Vendor
	DistanceKm *float64
}

// VendorUsecase defines the interface for vendor-related business operations.
type VendorUsecase interface {
	// CreateVendor creates the vendor record owned by the caller.
	CreateVendor(ctx context.Context, caller policy.Caller, input *CreateVendorInput) (*entity.Vendor, error)

	// GetVendor retrieves a single vendor by ID.
	GetVendor(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Vendor, error)

	// GetOwnVendor retrieves the vendor record owned by the caller.
	GetOwnVendor(ctx context.Context, caller policy.Caller) (*entity.Vendor, error)

	// DiscoverVendors lists active vendors with a location, sorted by
	// distance when the customer's position is provided.
	DiscoverVendors(ctx context.Context, caller policy.Caller, input *DiscoverVendorsInput) ([]*VendorView, error)

	// UpdateProfile updates the caller's vendor business metadata.
	UpdateProfile(ctx context.Context, caller policy.Caller, input *UpdateVendorProfileInput) (*entity.Vendor, error)

	// BroadcastLocation stores one GPS fix as the vendor's current location.
	BroadcastLocation(ctx context.Context, caller policy.Caller, input *BroadcastLocationInput) error

	// Activate makes the caller's vendor discoverable. It requires a location
	// fix in the same request and a covering subscription.
	Activate(ctx context.Context, caller policy.Caller, input *BroadcastLocationInput) error

	// Deactivate removes the caller's vendor from discovery.
	Deactivate(ctx context.Context, caller policy.Caller) error

	// GenerateHailQR renders the printable QR code for the caller's vendor.
	GenerateHailQR(ctx context.Context, caller policy.Caller) ([]byte, error)
}
