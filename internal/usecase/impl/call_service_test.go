package impl

import (
	"context"
	"testing"
	"time"

	"hail/internal/domain/entity"
	domainerrors "hail/internal/domain/errors"
	"hail/internal/domain/policy"
	"hail/internal/domain/repository"
	mockRepo "hail/internal/mocks/repository"
	mockSvc "hail/internal/mocks/service"
	"hail/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// callServiceFixtures holds all test dependencies for call service tests.
type callServiceFixtures struct {
	service        usecase.CallUsecase
	callRepo       *mockRepo.MockCallRepository
	vendorRepo     *mockRepo.MockVendorRepository
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestCallService(t *testing.T) callServiceFixtures {
	callRepo := mockRepo.NewMockCallRepository(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	service := NewCallService(CallServiceParams{
		CallRepo:       callRepo,
		VendorRepo:     vendorRepo,
		EventPublisher: eventPublisher,
		Logger:         testLogger(),
	})

	return callServiceFixtures{
		service:        service,
		callRepo:       callRepo,
		vendorRepo:     vendorRepo,
		eventPublisher: eventPublisher,
	}
}

func pendingCall(customerID, vendorID uuid.UUID) *entity.Call {
	return &entity.Call{
		ID:         uuid.New(),
		CustomerID: customerID,
		VendorID:   vendorID,
		Latitude:   25.04,
		Longitude:  121.51,
		Status:     entity.CallStatusPending,
		CreatedAt:  time.Now(),
	}
}

func TestCallService_PlaceCall_Success(t *testing.T) {
	fx := createTestCallService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := locatedVendor(25.05, 121.52)

	fx.vendorRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)
	fx.callRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Call")).Return(nil)
	fx.eventPublisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	call, err := fx.service.PlaceCall(ctx, caller, &usecase.PlaceCallInput{
		VendorID:  vendor.ID,
		Latitude:  25.04,
		Longitude: 121.51,
	})
	require.NoError(t, err)
	assert.Equal(t, caller.ID, call.CustomerID)
	assert.Equal(t, vendor.ID, call.VendorID)
	assert.Equal(t, entity.CallStatusPending, call.Status)
}

func TestCallService_PlaceCall_VendorNotFound(t *testing.T) {
	fx := createTestCallService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendorID := uuid.New()

	fx.vendorRepo.EXPECT().FindByID(ctx, vendorID).Return(nil, repository.ErrVendorNotFound)

	call, err := fx.service.PlaceCall(ctx, caller, &usecase.PlaceCallInput{VendorID: vendorID})
	assert.Nil(t, call)
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestCallService_PlaceCall_Unauthenticated(t *testing.T) {
	fx := createTestCallService(t)

	call, err := fx.service.PlaceCall(context.Background(), policy.Caller{}, &usecase.PlaceCallInput{VendorID: uuid.New()})
	assert.Nil(t, call)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCallService_GetCall_VisibleToCustomer(t *testing.T) {
	fx := createTestCallService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := locatedVendor(25.05, 121.52)
	call := pendingCall(caller.ID, vendor.ID)

	fx.callRepo.EXPECT().FindByID(ctx, call.ID).Return(call, nil)
	fx.vendorRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)

	got, err := fx.service.GetCall(ctx, caller, call.ID)
	require.NoError(t, err)
	assert.Equal(t, call, got)
}

func TestCallService_GetCall_OutOfScopeReadsAsNotFound(t *testing.T) {
	fx := createTestCallService(t)

	ctx := context.Background()
	stranger := policy.Caller{ID: uuid.New()}
	vendor := locatedVendor(25.05, 121.52)
	call := pendingCall(uuid.New(), vendor.ID)

	fx.callRepo.EXPECT().FindByID(ctx, call.ID).Return(call, nil)
	fx.vendorRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)

	// A third party must not learn the row exists.
	got, err := fx.service.GetCall(ctx, stranger, call.ID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrCallNotFound)
}

func TestCallService_AcknowledgeCall_Success(t *testing.T) {
	fx := createTestCallService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)
	call := pendingCall(uuid.New(), vendor.ID)

	acknowledged := *call
	acknowledged.Status = entity.CallStatusAcknowledged
	now := time.Now()
	acknowledged.AcknowledgedAt = &now

	fx.callRepo.EXPECT().FindByID(ctx, call.ID).Return(call, nil).Once()
	fx.vendorRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)
	fx.callRepo.EXPECT().
		MarkAcknowledged(ctx, call.ID, mock.AnythingOfType("time.Time")).
		Return(true, nil)
	fx.eventPublisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)
	fx.callRepo.EXPECT().FindByID(ctx, call.ID).Return(&acknowledged, nil).Once()

	got, err := fx.service.AcknowledgeCall(ctx, caller, call.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CallStatusAcknowledged, got.Status)
	require.NotNil(t, got.AcknowledgedAt)
}

func TestCallService_AcknowledgeCall_RepeatIsHarmless(t *testing.T) {
	fx := createTestCallService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)
	call := pendingCall(uuid.New(), vendor.ID)
	call.Status = entity.CallStatusAcknowledged

	fx.callRepo.EXPECT().FindByID(ctx, call.ID).Return(call, nil)
	fx.vendorRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)
	fx.callRepo.EXPECT().
		MarkAcknowledged(ctx, call.ID, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	// No publish on a repeated acknowledgement.
	got, err := fx.service.AcknowledgeCall(ctx, caller, call.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CallStatusAcknowledged, got.Status)
}

func TestCallService_AcknowledgeCall_AfterCompletionRejected(t *testing.T) {
	fx := createTestCallService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)
	call := pendingCall(uuid.New(), vendor.ID)
	call.Status = entity.CallStatusCompleted

	fx.callRepo.EXPECT().FindByID(ctx, call.ID).Return(call, nil)
	fx.vendorRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)
	fx.callRepo.EXPECT().
		MarkAcknowledged(ctx, call.ID, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	got, err := fx.service.AcknowledgeCall(ctx, caller, call.ID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCallTransition)
}

func TestCallService_AcknowledgeCall_ForbiddenForNonOwner(t *testing.T) {
	fx := createTestCallService(t)

	ctx := context.Background()
	stranger := policy.Caller{ID: uuid.New()}
	vendor := locatedVendor(25.05, 121.52)
	call := pendingCall(uuid.New(), vendor.ID)

	fx.callRepo.EXPECT().FindByID(ctx, call.ID).Return(call, nil)
	fx.vendorRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)

	got, err := fx.service.AcknowledgeCall(ctx, stranger, call.ID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCallService_CompleteCall_SkipsAcknowledged(t *testing.T) {
	fx := createTestCallService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)
	call := pendingCall(uuid.New(), vendor.ID)

	completed := *call
	completed.Status = entity.CallStatusCompleted
	now := time.Now()
	completed.CompletedAt = &now

	fx.callRepo.EXPECT().FindByID(ctx, call.ID).Return(call, nil).Once()
	fx.vendorRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)
	fx.callRepo.EXPECT().
		MarkCompleted(ctx, call.ID, mock.AnythingOfType("time.Time")).
		Return(true, nil)
	fx.eventPublisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)
	fx.callRepo.EXPECT().FindByID(ctx, call.ID).Return(&completed, nil).Once()

	got, err := fx.service.CompleteCall(ctx, caller, call.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CallStatusCompleted, got.Status)
	assert.Nil(t, got.AcknowledgedAt)
}

func TestCallService_CompleteCall_RepeatIsHarmless(t *testing.T) {
	fx := createTestCallService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)
	call := pendingCall(uuid.New(), vendor.ID)
	call.Status = entity.CallStatusCompleted

	fx.callRepo.EXPECT().FindByID(ctx, call.ID).Return(call, nil)
	fx.vendorRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)
	fx.callRepo.EXPECT().
		MarkCompleted(ctx, call.ID, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	got, err := fx.service.CompleteCall(ctx, caller, call.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CallStatusCompleted, got.Status)
}

func TestCallService_ListCustomerCalls(t *testing.T) {
	fx := createTestCallService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	calls := []*entity.Call{pendingCall(caller.ID, uuid.New())}

	fx.callRepo.EXPECT().FindByCustomer(ctx, caller.ID).Return(calls, nil)

	got, err := fx.service.ListCustomerCalls(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, calls, got)
}

func TestCallService_ListVendorCalls_NoVendorRecord(t *testing.T) {
	fx := createTestCallService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(nil, repository.ErrVendorNotFound)

	got, err := fx.service.ListVendorCalls(ctx, caller)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestCallService_ListVendorCalls_Success(t *testing.T) {
	fx := createTestCallService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)
	calls := []*entity.Call{pendingCall(uuid.New(), vendor.ID), pendingCall(uuid.New(), vendor.ID)}

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(vendor, nil)
	fx.callRepo.EXPECT().FindByVendor(ctx, vendor.ID).Return(calls, nil)

	got, err := fx.service.ListVendorCalls(ctx, caller)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
