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
	mockSvc "hail/internal/mocks/service"
	"hail/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// vendorServiceFixtures holds all test dependencies for vendor service tests.
type vendorServiceFixtures struct {
	service          usecase.VendorUsecase
	txManager        *mockRepo.MockTransactionManager
	vendorRepo       *mockRepo.MockVendorRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	qrcodeService    *mockSvc.MockQRCodeService
	eventPublisher   *mockSvc.MockEventPublisher
}

func createTestVendorService(t *testing.T, maxRadiusKm float64) vendorServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	cfg := &config.Config{Hailing: &config.HailingConfig{MaxListRadiusKm: maxRadiusKm}}

	service := NewVendorService(VendorServiceParams{
		TxManager:        txManager,
		VendorRepo:       vendorRepo,
		SubscriptionRepo: subscriptionRepo,
		QRCodeService:    qrcodeService,
		EventPublisher:   eventPublisher,
		Config:           cfg,
		Logger:           testLogger(),
	})

	return vendorServiceFixtures{
		service:          service,
		txManager:        txManager,
		vendorRepo:       vendorRepo,
		subscriptionRepo: subscriptionRepo,
		qrcodeService:    qrcodeService,
		eventPublisher:   eventPublisher,
	}
}

func ownedVendor(ownerID uuid.UUID) *entity.Vendor {
	return &entity.Vendor{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		BusinessName: "Lin's Tofu Cart",
		BusinessType: "food cart",
	}
}

func locatedVendor(lat, lon float64) *entity.Vendor {
	vendor := ownedVendor(uuid.New())
	vendor.IsActive = true
	vendor.SetLocation(lat, lon, time.Now())

	return vendor
}

func TestVendorService_CreateVendor_Success(t *testing.T) {
	fx := createTestVendorService(t, 0)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}

	txVendorRepo := mockRepo.NewMockVendorRepository(t)
	txVendorRepo.EXPECT().
		FindByOwner(ctx, caller.ID).
		Return(nil, repository.ErrVendorNotFound)
	txVendorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().VendorRepo().Return(txVendorRepo)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	fx.eventPublisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	vendor, err := fx.service.CreateVendor(ctx, caller, &usecase.CreateVendorInput{
		BusinessName: "Lin's Tofu Cart",
		BusinessType: "food cart",
		Description:  "Stinky tofu, evenings only",
	})
	require.NoError(t, err)
	assert.Equal(t, caller.ID, vendor.OwnerID)
	assert.Equal(t, "Lin's Tofu Cart", vendor.BusinessName)
	assert.False(t, vendor.IsActive)
}

func TestVendorService_CreateVendor_AlreadyExists(t *testing.T) {
	fx := createTestVendorService(t, 0)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}

	txVendorRepo := mockRepo.NewMockVendorRepository(t)
	txVendorRepo.EXPECT().
		FindByOwner(ctx, caller.ID).
		Return(ownedVendor(caller.ID), nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().VendorRepo().Return(txVendorRepo)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	vendor, err := fx.service.CreateVendor(ctx, caller, &usecase.CreateVendorInput{BusinessName: "Another"})
	assert.Nil(t, vendor)
	assert.ErrorIs(t, err, domainerrors.ErrVendorAlreadyExists)
}

func TestVendorService_DiscoverVendors_WithoutOrigin(t *testing.T) {
	fx := createTestVendorService(t, 0)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendors := []*entity.Vendor{locatedVendor(25.04, 121.51), locatedVendor(25.05, 121.52)}

	fx.vendorRepo.EXPECT().FindActiveWithLocation(ctx).Return(vendors, nil)

	views, err := fx.service.DiscoverVendors(ctx, caller, &usecase.DiscoverVendorsInput{})
	require.NoError(t, err)
	require.Len(t, views, 2)
	for _, view := range views {
		assert.Nil(t, view.DistanceKm)
	}
}

func TestVendorService_DiscoverVendors_SortsByDistance(t *testing.T) {
	fx := createTestVendorService(t, 0)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	far := locatedVendor(25.20, 121.51)
	near := locatedVendor(25.05, 121.51)

	fx.vendorRepo.EXPECT().FindActiveWithLocation(ctx).Return([]*entity.Vendor{far, near}, nil)

	originLat, originLon := 25.04, 121.51
	views, err := fx.service.DiscoverVendors(ctx, caller, &usecase.DiscoverVendorsInput{
		Latitude:  &originLat,
		Longitude: &originLon,
	})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, near.ID, views[0].Vendor.ID)
	assert.Equal(t, far.ID, views[1].Vendor.ID)
	require.NotNil(t, views[0].DistanceKm)
	require.NotNil(t, views[1].DistanceKm)
	assert.Less(t, *views[0].DistanceKm, *views[1].DistanceKm)
}

func TestVendorService_DiscoverVendors_RadiusCap(t *testing.T) {
	fx := createTestVendorService(t, 5)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	// The far vendor sits roughly 18 km out, well past the 5 km cap.
	near := locatedVendor(25.05, 121.51)
	far := locatedVendor(25.20, 121.51)
	fx.vendorRepo.EXPECT().FindActiveWithLocation(ctx).Return([]*entity.Vendor{near, far}, nil)

	originLat, originLon := 25.04, 121.51
	views, err := fx.service.DiscoverVendors(ctx, caller, &usecase.DiscoverVendorsInput{
		Latitude:  &originLat,
		Longitude: &originLon,
	})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, near.ID, views[0].Vendor.ID)
}

func TestVendorService_Activate_Success(t *testing.T) {
	fx := createTestVendorService(t, 0)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(vendor, nil)
	fx.subscriptionRepo.EXPECT().
		FindCovering(ctx, vendor.ID, mock.AnythingOfType("time.Time")).
		Return(&entity.VendorSubscription{ID: uuid.New(), VendorID: vendor.ID, Status: entity.SubscriptionStatusActive}, nil)
	fx.vendorRepo.EXPECT().
		Activate(ctx, vendor.ID, 25.04, 121.51, mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.eventPublisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	err := fx.service.Activate(ctx, caller, &usecase.BroadcastLocationInput{Latitude: 25.04, Longitude: 121.51})
	require.NoError(t, err)
}

func TestVendorService_Activate_WithoutCoveringSubscription(t *testing.T) {
	fx := createTestVendorService(t, 0)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(vendor, nil)
	fx.subscriptionRepo.EXPECT().
		FindCovering(ctx, vendor.ID, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrSubscriptionNotFound)

	err := fx.service.Activate(ctx, caller, &usecase.BroadcastLocationInput{Latitude: 25.04, Longitude: 121.51})
	assert.ErrorIs(t, err, domainerrors.ErrNoCoveringSubscription)
}

func TestVendorService_Activate_WithoutLocation(t *testing.T) {
	fx := createTestVendorService(t, 0)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(vendor, nil)

	err := fx.service.Activate(ctx, caller, nil)
	assert.ErrorIs(t, err, domainerrors.ErrLocationRequired)
}

func TestVendorService_Deactivate_Success(t *testing.T) {
	fx := createTestVendorService(t, 0)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(vendor, nil)
	fx.vendorRepo.EXPECT().Deactivate(ctx, vendor.ID).Return(nil)
	fx.eventPublisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	err := fx.service.Deactivate(ctx, caller)
	require.NoError(t, err)
}

func TestVendorService_BroadcastLocation_Success(t *testing.T) {
	fx := createTestVendorService(t, 0)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(vendor, nil)
	fx.vendorRepo.EXPECT().
		UpdateLocation(ctx, vendor.ID, 25.04, 121.51, mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.eventPublisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	err := fx.service.BroadcastLocation(ctx, caller, &usecase.BroadcastLocationInput{Latitude: 25.04, Longitude: 121.51})
	require.NoError(t, err)
}

func TestVendorService_GetOwnVendor_NoRecord(t *testing.T) {
	fx := createTestVendorService(t, 0)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(nil, repository.ErrVendorNotFound)

	vendor, err := fx.service.GetOwnVendor(ctx, caller)
	assert.Nil(t, vendor)
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestVendorService_GenerateHailQR_Success(t *testing.T) {
	fx := createTestVendorService(t, 0)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(vendor, nil)
	fx.qrcodeService.EXPECT().GenerateHailQR(vendor.ID).Return([]byte("png-bytes"), nil)

	png, err := fx.service.GenerateHailQR(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestVendorService_PublishFailureDoesNotFailWrite(t *testing.T) {
	fx := createTestVendorService(t, 0)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	vendor := ownedVendor(caller.ID)

	fx.vendorRepo.EXPECT().FindByOwner(ctx, caller.ID).Return(vendor, nil)
	fx.vendorRepo.EXPECT().Deactivate(ctx, vendor.ID).Return(nil)
	fx.eventPublisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(assert.AnError)

	// The feed is advisory: the write already committed.
	err := fx.service.Deactivate(ctx, caller)
	require.NoError(t, err)
}
