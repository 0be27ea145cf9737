package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hail/internal/delivery/context"
	"hail/internal/domain/constants"
	"hail/internal/domain/entity"
	domainerrors "hail/internal/domain/errors"
	"hail/internal/domain/policy"
	"hail/internal/domain/repository"
	"hail/internal/domain/service"
	"hail/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// callService implements the CallUsecase interface.
type callService struct {
	callRepo       repository.CallRepository
	vendorRepo     repository.VendorRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// CallServiceParams holds dependencies for callService, injected by Fx.
type CallServiceParams struct {
	fx.In

	CallRepo       repository.CallRepository
	VendorRepo     repository.VendorRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewCallService is the constructor for callService.
func NewCallService(params CallServiceParams) usecase.CallUsecase {
	return &callService{
		callRepo:       params.CallRepo,
		vendorRepo:     params.VendorRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *callService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// publishCallChange emits a call-row change notification. Listeners re-read
// the call, so the payload stays identifiers-only and a failed publish is
// logged rather than failing the write.
func (srv *callService) publishCallChange(ctx context.Context, changeType string, callID, vendorID uuid.UUID) {
	event := &service.ChangeEvent{
		EventID:    uuid.New().String(),
		Entity:     constants.EntityCalls,
		Type:       changeType,
		RowID:      callID.String(),
		VendorID:   vendorID.String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now(),
	}

	if err := srv.eventPublisher.PublishChangeEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish call change event",
			slog.Any("callID", callID), slog.Any("error", err))
	}
}

// PlaceCall creates a pending call from the caller to a vendor and announces
// it on the change feed so the vendor's devices get a push.
func (srv *callService) PlaceCall(ctx context.Context, caller policy.Caller, input *usecase.PlaceCallInput) (*entity.Call, error) {
	if !policy.CanInsertCall(caller, caller.ID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "call insert denied")
	}

	vendor, err := srv.vendorRepo.FindByID(ctx, input.VendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVendorNotFound, "call placement failed")
		}

		return nil, errors.Wrap(err, "failed to find called vendor")
	}

	call := &entity.Call{
		ID:         uuid.New(),
		CustomerID: caller.ID,
		VendorID:   vendor.ID,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		Status:     entity.CallStatusPending,
	}

	if err := srv.callRepo.Create(ctx, call); err != nil {
		srv.log(ctx).Error("Failed to place call",
			slog.Any("customerID", caller.ID), slog.Any("vendorID", vendor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to place call")
	}

	srv.log(ctx).Info("Call placed",
		slog.Any("callID", call.ID), slog.Any("customerID", caller.ID), slog.Any("vendorID", vendor.ID))
	srv.publishCallChange(ctx, constants.ChangeInsert, call.ID, vendor.ID)

	return call, nil
}

// GetCall retrieves one call visible to the caller. An out-of-scope call
// reads as not found so row existence is never leaked.
func (srv *callService) GetCall(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Call, error) {
	call, vendor, err := srv.loadCallWithVendor(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanReadCall(caller, call.CustomerID, vendor.OwnerID) {
		return nil, errors.Wrap(domainerrors.ErrCallNotFound, "call lookup failed")
	}

	return call, nil
}

// AcknowledgeCall marks a pending call acknowledged by the vendor. Repeating
// the acknowledgement is harmless; acknowledging a completed call is rejected
// because status never moves backwards.
func (srv *callService) AcknowledgeCall(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Call, error) {
	_, vendor, err := srv.loadCallWithVendor(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanUpdateCall(caller, vendor.OwnerID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "call update denied")
	}

	updated, err := srv.callRepo.MarkAcknowledged(ctx, id, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to acknowledge call")
	}

	// Lost the race or repeated request: classify from current state.
	if !updated {
		current, err := srv.callRepo.FindByID(ctx, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to reload call after acknowledge")
		}
		if current.Status == entity.CallStatusAcknowledged {
			return current, nil
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidCallTransition, "call already completed")
	}

	srv.log(ctx).Info("Call acknowledged", slog.Any("callID", id), slog.Any("vendorID", vendor.ID))
	srv.publishCallChange(ctx, constants.ChangeUpdate, id, vendor.ID)

	current, err := srv.callRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload call after acknowledge")
	}

	return current, nil
}

// CompleteCall marks a call completed by the vendor. Completion may skip the
// acknowledged step; repeating it is harmless.
func (srv *callService) CompleteCall(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Call, error) {
	_, vendor, err := srv.loadCallWithVendor(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanUpdateCall(caller, vendor.OwnerID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "call update denied")
	}

	updated, err := srv.callRepo.MarkCompleted(ctx, id, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to complete call")
	}

	if updated {
		srv.log(ctx).Info("Call completed", slog.Any("callID", id), slog.Any("vendorID", vendor.ID))
		srv.publishCallChange(ctx, constants.ChangeUpdate, id, vendor.ID)
	}

	current, err := srv.callRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload call after complete")
	}

	return current, nil
}

// ListCustomerCalls lists calls the caller placed as a customer. The query
// is scoped to the caller, so there is nothing to reject.
func (srv *callService) ListCustomerCalls(ctx context.Context, caller policy.Caller) ([]*entity.Call, error) {
	if !caller.IsAuthenticated() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "call list denied")
	}

	calls, err := srv.callRepo.FindByCustomer(ctx, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer calls")
	}

	return calls, nil
}

// ListVendorCalls lists calls addressed to the caller's vendor.
func (srv *callService) ListVendorCalls(ctx context.Context, caller policy.Caller) ([]*entity.Call, error) {
	if !caller.IsAuthenticated() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "call list denied")
	}

	vendor, err := srv.vendorRepo.FindByOwner(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVendorNotFound, "caller has no vendor record")
		}

		return nil, errors.Wrap(err, "failed to find vendor by owner")
	}

	calls, err := srv.callRepo.FindByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor calls")
	}

	return calls, nil
}

// loadCallWithVendor loads a call and its target vendor, which carries the
// owning identity every policy check needs.
func (srv *callService) loadCallWithVendor(ctx context.Context, id uuid.UUID) (*entity.Call, *entity.Vendor, error) {
	call, err := srv.callRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCallNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrCallNotFound, "call lookup failed")
		}

		return nil, nil, errors.Wrap(err, "failed to find call")
	}

	vendor, err := srv.vendorRepo.FindByID(ctx, call.VendorID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find vendor for call")
	}

	return call, vendor, nil
}
