// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"hail/internal/domain/entity"
	"hail/internal/errors"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for push device registrations.
type DeviceRepository interface {
	// Create persists a new device registration.
	Create(ctx context.Context, device *entity.Device) error

	// FindByIdentity retrieves all devices registered by an identity.
	FindByIdentity(ctx context.Context, identityID uuid.UUID) ([]*entity.Device, error)

	// FindActiveByIdentities retrieves active devices for a set of identities.
	// Used to batch-fetch push targets when fanning out call notifications.
	FindActiveByIdentities(ctx context.Context, identityIDs []uuid.UUID) ([]*entity.Device, error)

	// UpdateFCMToken replaces the FCM token of an existing device.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error

	// DeactivateByTokens marks devices with the given FCM tokens inactive.
	// Called with tokens Firebase reported as invalid or unregistered.
	DeactivateByTokens(ctx context.Context, tokens []string) error
}
