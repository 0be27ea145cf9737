package usecase

import (
	"context"

	"hail/internal/domain/entity"
	"hail/internal/domain/policy"
)

// --- Input DTOs ---

// RegisterDeviceInput defines the data required to register a push device.
type RegisterDeviceInput struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase defines the interface for push device registrations.
type DeviceUsecase interface {
	// RegisterDevice stores or refreshes the caller's device token. A device
	// already known by its device identifier gets its token replaced.
	RegisterDevice(ctx context.Context, caller policy.Caller, input *RegisterDeviceInput) (*entity.Device, error)

	// ListDevices lists the caller's registered devices.
	ListDevices(ctx context.Context, caller policy.Caller) ([]*entity.Device, error)
}
