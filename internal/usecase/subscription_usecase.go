package usecase

import (
	"context"

	"hail/internal/domain/entity"
	"hail/internal/domain/policy"
)

// --- Input DTOs ---

// RecordPaymentInput defines an optional override of the charged amount,
// in minor currency units. Nil applies the configured monthly fee.
type RecordPaymentInput struct {
	Amount *int64
}

// --- Output DTOs ---

// SubscriptionView is a ledger row decorated with the derived coverage flag.
type SubscriptionView struct {
	Subscription *entity.VendorSubscription
	Covering     bool
}

// SubscriptionUsecase defines the interface for the vendor subscription ledger.
type SubscriptionUsecase interface {
	// RecordPayment appends a new coverage period for the caller's vendor
	// after a client-reported successful payment.
	RecordPayment(ctx context.Context, caller policy.Caller, input *RecordPaymentInput) (*entity.VendorSubscription, error)

	// ListSubscriptions lists the caller's vendor's ledger rows, newest first.
	ListSubscriptions(ctx context.Context, caller policy.Caller) ([]*SubscriptionView, error)

	// GetCurrent retrieves the covering subscription for the caller's vendor,
	// if one exists.
	GetCurrent(ctx context.Context, caller policy.Caller) (*SubscriptionView, error)
}
