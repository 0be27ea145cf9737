package impl

import (
	"context"
	"testing"
	"time"

	"hail/config"
	"hail/internal/domain/entity"
	domainerrors "hail/internal/domain/errors"
	"hail/internal/domain/policy"
	"hail/internal/domain/repository"
	mockRepo "hail/internal/mocks/repository"
	"hail/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// subscriptionServiceFixtures holds all test dependencies for subscription service tests.
type subscriptionServiceFixtures struct {
	service          usecase.SubscriptionUsecase
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	vendorRepo       *mockRepo.MockVendorRepository
}

func createTestSubscriptionService(t *testing.T, cfg *config.Config) subscriptionServiceFixtures {
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)

	service := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: subscriptionRepo,
		VendorRepo:       vendorRepo,
		Config:           cfg,
		Logger:           testLogger(),
	})

	return subscriptionServiceFixtures{
		service:          service,
		subscriptionRepo: subscriptionRepo,
		vendorRepo:       vendorRepo,
	}
}

func TestSubscriptionService_RecordPayment_Defaults(t *testing.T) {
	fx := createTestSubscriptionService(t, nil)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(vendor, nil)

	var created *entity.VendorSubscription
	fx.subscriptionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VendorSubscription")).
		Run(func(ctx context.Context, subscription *entity.VendorSubscription) {
			created = subscription
		}).
		Return(nil)

	subscription, err := fx.service.RecordPayment(ctx, caller, nil)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, vendor.ID, subscription.VendorID)
	assert.Equal(t, int64(5000), subscription.Amount)
	assert.Equal(t, entity.SubscriptionStatusActive, subscription.Status)
	assert.Equal(t, subscription.StartDate.AddDate(0, 0, 30), subscription.EndDate)
}

func TestSubscriptionService_RecordPayment_ConfiguredPeriod(t *testing.T) {
	cfg := &config.Config{Subscription: &config.SubscriptionConfig{MonthlyFee: 8000, PeriodDays: 90}}
	fx := createTestSubscriptionService(t, cfg)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(vendor, nil)
	fx.subscriptionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VendorSubscription")).
		Return(nil)

	subscription, err := fx.service.RecordPayment(ctx, caller, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(8000), subscription.Amount)
	assert.Equal(t, subscription.StartDate.AddDate(0, 0, 90), subscription.EndDate)
}

func TestSubscriptionService_RecordPayment_AmountOverride(t *testing.T) {
	fx := createTestSubscriptionService(t, nil)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(vendor, nil)
	fx.subscriptionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VendorSubscription")).
		Return(nil)

	amount := int64(2500)
	subscription, err := fx.service.RecordPayment(ctx, caller, &usecase.RecordPaymentInput{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, amount, subscription.Amount)
}

func TestSubscriptionService_RecordPayment_Unauthenticated(t *testing.T) {
	fx := createTestSubscriptionService(t, nil)

	subscription, err := fx.service.RecordPayment(context.Background(), policy.Caller{}, nil)
	assert.Nil(t, subscription)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSubscriptionService_RecordPayment_NoVendorRecord(t *testing.T) {
	fx := createTestSubscriptionService(t, nil)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(nil, repository.ErrVendorNotFound)

	subscription, err := fx.service.RecordPayment(ctx, caller, nil)
	assert.Nil(t, subscription)
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestSubscriptionService_ListSubscriptions_CoverageFlags(t *testing.T) {
	fx := createTestSubscriptionService(t, nil)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)

	today := time.Now().Truncate(24 * time.Hour)
	covering := &entity.VendorSubscription{
		ID:        uuid.New(),
		VendorID:  vendor.ID,
		StartDate: today,
		EndDate:   today.AddDate(0, 0, 30),
		Status:    entity.SubscriptionStatusActive,
	}
	lapsed := &entity.VendorSubscription{
		ID:        uuid.New(),
		VendorID:  vendor.ID,
		StartDate: today.AddDate(0, 0, -90),
		EndDate:   today.AddDate(0, 0, -60),
		Status:    entity.SubscriptionStatusActive,
	}

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(vendor, nil)
	fx.subscriptionRepo.EXPECT().
		FindByVendor(ctx, vendor.ID).
		Return([]*entity.VendorSubscription{covering, lapsed}, nil)

	views, err := fx.service.ListSubscriptions(ctx, caller)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].Covering)
	assert.False(t, views[1].Covering)
}

func TestSubscriptionService_GetCurrent_Success(t *testing.T) {
	fx := createTestSubscriptionService(t, nil)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)
	subscription := &entity.VendorSubscription{
		ID:       uuid.New(),
		VendorID: vendor.ID,
		Status:   entity.SubscriptionStatusActive,
	}

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(vendor, nil)
	fx.subscriptionRepo.EXPECT().
		FindCovering(ctx, vendor.ID, mock.AnythingOfType("time.Time")).
		Return(subscription, nil)

	view, err := fx.service.GetCurrent(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, subscription, view.Subscription)
	assert.True(t, view.Covering)
}

func TestSubscriptionService_GetCurrent_NotFound(t *testing.T) {
	fx := createTestSubscriptionService(t, nil)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(vendor, nil)
	fx.subscriptionRepo.EXPECT().
		FindCovering(ctx, vendor.ID, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrSubscriptionNotFound)

	view, err := fx.service.GetCurrent(ctx, caller)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}
