package impl

import (
	"context"
	"log/slog"

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

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for deviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice stores or refreshes the caller's device token. A device the
// caller already registered under the same device identifier gets its FCM
// token replaced and is reactivated instead of creating a duplicate row.
func (srv *deviceService) RegisterDevice(ctx context.Context, caller policy.Caller, input *usecase.RegisterDeviceInput) (*entity.Device, error) {
	if !caller.IsAuthenticated() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "device registration denied")
	}

	existing, err := srv.deviceRepo.FindByIdentity(ctx, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices for registration")
	}

	for _, device := range existing {
		if device.DeviceID == input.DeviceID {
			if err := srv.deviceRepo.UpdateFCMToken(ctx, device.ID, input.FCMToken); err != nil {
				return nil, errors.Wrap(err, "failed to refresh device token")
			}

			device.FCMToken = input.FCMToken
			device.IsActive = true
			srv.log(ctx).Debug("Device token refreshed",
				slog.Any("identityID", caller.ID), slog.Any("deviceID", device.ID))

			return device, nil
		}
	}

	newDevice := &entity.Device{
		ID:         uuid.New(),
		IdentityID: caller.ID,
		FCMToken:   input.FCMToken,
		DeviceID:   input.DeviceID,
		Platform:   input.Platform,
		IsActive:   true,
	}

	if err := srv.deviceRepo.Create(ctx, newDevice); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	srv.log(ctx).Info("Device registered",
		slog.Any("identityID", caller.ID), slog.Any("deviceID", newDevice.ID))

	return newDevice, nil
}

// ListDevices lists the caller's registered devices.
func (srv *deviceService) ListDevices(ctx context.Context, caller policy.Caller) ([]*entity.Device, error) {
	if !caller.IsAuthenticated() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "device list denied")
	}

	devices, err := srv.deviceRepo.FindByIdentity(ctx, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}
