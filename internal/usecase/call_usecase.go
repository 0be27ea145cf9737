package usecase

import (
	"context"

	"hail/internal/domain/entity"
	"hail/internal/domain/policy"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PlaceCallInput defines the data required to hail a vendor. The coordinates
// are the customer's position at the moment of the call.
type PlaceCallInput struct {
	VendorID  uuid.UUID
	Latitude  float64
	Longitude float64
}

// CallUsecase defines the interface for the call lifecycle.
//
// Transitions only move forward: pending, acknowledged, completed. Repeating
// a transition the call has already passed is treated as success so retried
// requests stay harmless.
type CallUsecase interface {
	// PlaceCall creates a pending call from the caller to a vendor.
	PlaceCall(ctx context.Context, caller policy.Caller, input *PlaceCallInput) (*entity.Call, error)

	// GetCall retrieves one call visible to the caller.
	GetCall(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Call, error)

	// AcknowledgeCall marks a pending call acknowledged by the vendor.
	AcknowledgeCall(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Call, error)

	// CompleteCall marks a call completed by the vendor.
	CompleteCall(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Call, error)

	// ListCustomerCalls lists calls the caller placed as a customer.
	ListCustomerCalls(ctx context.Context, caller policy.Caller) ([]*entity.Call, error)

	// ListVendorCalls lists calls addressed to the caller's vendor.
	ListVendorCalls(ctx context.Context, caller policy.Caller) ([]*entity.Call, error)
}
