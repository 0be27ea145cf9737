package impl

import (
	"context"
	"log/slog"
	"time"

	"hail/config"
	deliverycontext "hail/internal/delivery/context"
	"hail/internal/domain/entity"
	domainerrors "hail/internal/domain/errors"
	"hail/internal/domain/policy"
	"hail/internal/domain/repository"
	"hail/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMonthlyFee = int64(5000)
	defaultPeriodDays = 30
)

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	vendorRepo       repository.VendorRepository
	monthlyFee       int64
	periodDays       int
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for subscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	VendorRepo       repository.VendorRepository
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	monthlyFee := defaultMonthlyFee
	periodDays := defaultPeriodDays
	if params.Config != nil && params.Config.Subscription != nil {
		if params.Config.Subscription.MonthlyFee > 0 {
			monthlyFee = params.Config.Subscription.MonthlyFee
		}
		if params.Config.Subscription.PeriodDays > 0 {
			periodDays = params.Config.Subscription.PeriodDays
		}
	}

	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		vendorRepo:       params.VendorRepo,
		monthlyFee:       monthlyFee,
		periodDays:       periodDays,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordPayment appends a new coverage period after a client-reported
// successful payment. The period starts today and runs for the configured
// number of days; the row is active immediately.
func (srv *subscriptionService) RecordPayment(ctx context.Context, caller policy.Caller, input *usecase.RecordPaymentInput) (*entity.VendorSubscription, error) {
	vendor, err := srv.loadOwnVendor(ctx, caller)
	if err != nil {
		return nil, err
	}

	amount := srv.monthlyFee
	if input != nil && input.Amount != nil && *input.Amount > 0 {
		amount = *input.Amount
	}

	today := time.Now().Truncate(24 * time.Hour)
	subscription := &entity.VendorSubscription{
		ID:        uuid.New(),
		VendorID:  vendor.ID,
		StartDate: today,
		EndDate:   today.AddDate(0, 0, srv.periodDays),
		Amount:    amount,
		Status:    entity.SubscriptionStatusActive,
	}

	if err := srv.subscriptionRepo.Create(ctx, subscription); err != nil {
		srv.log(ctx).Error("Failed to record subscription payment",
			slog.Any("vendorID", vendor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record subscription payment")
	}

	srv.log(ctx).Info("Subscription payment recorded",
		slog.Any("vendorID", vendor.ID),
		slog.Any("subscriptionID", subscription.ID),
		slog.Int64("amount", amount))

	return subscription, nil
}

// ListSubscriptions lists the caller's vendor's ledger rows, newest first,
// each decorated with the derived coverage flag.
func (srv *subscriptionService) ListSubscriptions(ctx context.Context, caller policy.Caller) ([]*usecase.SubscriptionView, error) {
	vendor, err := srv.loadOwnVendor(ctx, caller)
	if err != nil {
		return nil, err
	}

	subscriptions, err := srv.subscriptionRepo.FindByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	now := time.Now()
	views := make([]*usecase.SubscriptionView, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		views = append(views, &usecase.SubscriptionView{
			Subscription: subscription,
			Covering:     subscription.Covers(now),
		})
	}

	return views, nil
}

// GetCurrent retrieves the covering subscription for the caller's vendor.
func (srv *subscriptionService) GetCurrent(ctx context.Context, caller policy.Caller) (*usecase.SubscriptionView, error) {
	vendor, err := srv.loadOwnVendor(ctx, caller)
	if err != nil {
		return nil, err
	}

	subscription, err := srv.subscriptionRepo.FindCovering(ctx, vendor.ID, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSubscriptionNotFound, "no covering subscription")
		}

		return nil, errors.Wrap(err, "failed to find covering subscription")
	}

	return &usecase.SubscriptionView{Subscription: subscription, Covering: true}, nil
}

// loadOwnVendor resolves the caller's vendor and enforces the ledger's
// access rule: only the owning identity sees or writes the ledger.
func (srv *subscriptionService) loadOwnVendor(ctx context.Context, caller policy.Caller) (*entity.Vendor, error) {
	if !caller.IsAuthenticated() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "subscription access denied")
	}

	vendor, err := srv.vendorRepo.FindByOwner(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVendorNotFound, "caller has no vendor record")
		}

		return nil, errors.Wrap(err, "failed to find vendor by owner")
	}

	if !policy.CanAccessSubscription(caller, vendor.OwnerID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "subscription access denied")
	}

	return vendor, nil
}
