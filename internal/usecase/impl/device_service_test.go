package impl

import (
	"context"
	"testing"

	"hail/internal/domain/entity"
	domainerrors "hail/internal/domain/errors"
	"hail/internal/domain/policy"
	mockRepo "hail/internal/mocks/repository"
	"hail/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     testLogger(),
	})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}

	fx.deviceRepo.EXPECT().FindByIdentity(ctx, caller.ID).Return(nil, nil)
	fx.deviceRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Device")).Return(nil)

	device, err := fx.service.RegisterDevice(ctx, caller, &usecase.RegisterDeviceInput{
		FCMToken: "fcm-token-1",
		DeviceID: "pixel-8-lin",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, caller.ID, device.IdentityID)
	assert.Equal(t, "fcm-token-1", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_RefreshesKnownDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	existing := &entity.Device{
		ID:         uuid.New(),
		IdentityID: caller.ID,
		FCMToken:   "stale-token",
		DeviceID:   "pixel-8-lin",
		Platform:   "android",
		IsActive:   false,
	}

	fx.deviceRepo.EXPECT().FindByIdentity(ctx, caller.ID).Return([]*entity.Device{existing}, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "fresh-token").Return(nil)

	device, err := fx.service.RegisterDevice(ctx, caller, &usecase.RegisterDeviceInput{
		FCMToken: "fresh-token",
		DeviceID: "pixel-8-lin",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "fresh-token", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_Unauthenticated(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), policy.Caller{}, &usecase.RegisterDeviceInput{
		FCMToken: "fcm-token-1",
		DeviceID: "pixel-8-lin",
	})
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeviceService_ListDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	devices := []*entity.Device{
		{ID: uuid.New(), IdentityID: caller.ID, DeviceID: "pixel-8-lin", IsActive: true},
		{ID: uuid.New(), IdentityID: caller.ID, DeviceID: "iphone-15-lin", IsActive: false},
	}

	fx.deviceRepo.EXPECT().FindByIdentity(ctx, caller.ID).Return(devices, nil)

	got, err := fx.service.ListDevices(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}
