package postgres

import (
	"context"

	"hail/internal/domain/entity"
	"hail/internal/domain/repository"
	"hail/internal/errors"
	"hail/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository creates a GORM-backed device repository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func fromDeviceDomain(device *entity.Device) *model.DeviceModel {
	return &model.DeviceModel{
		ID:         device.ID,
		IdentityID: device.IdentityID,
		FCMToken:   device.FCMToken,
		DeviceID:   device.DeviceID,
		Platform:   device.Platform,
		IsActive:   device.IsActive,
		CreatedAt:  device.CreatedAt,
		UpdatedAt:  device.UpdatedAt,
	}
}

func toDeviceDomain(m *model.DeviceModel) *entity.Device {
	return &entity.Device{
		ID:         m.ID,
		IdentityID: m.IdentityID,
		FCMToken:   m.FCMToken,
		DeviceID:   m.DeviceID,
		Platform:   m.Platform,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	m := fromDeviceDomain(device)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create device")
	}

	device.ID = m.ID
	device.CreatedAt = m.CreatedAt
	device.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *deviceRepository) FindByIdentity(ctx context.Context, identityID uuid.UUID) ([]*entity.Device, error) {
	var ms []model.DeviceModel
	err := r.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices by identity")
	}

	return toDeviceDomainSlice(ms), nil
}

func (r *deviceRepository) FindActiveByIdentities(ctx context.Context, identityIDs []uuid.UUID) ([]*entity.Device, error) {
	if len(identityIDs) == 0 {
		return nil, nil
	}

	var ms []model.DeviceModel
	err := r.db.WithContext(ctx).
		Where("identity_id IN ? AND is_active = ?", identityIDs, true).
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active devices")
	}

	return toDeviceDomainSlice(ms), nil
}

func toDeviceDomainSlice(ms []model.DeviceModel) []*entity.Device {
	devices := make([]*entity.Device, 0, len(ms))
	for i := range ms {
		devices = append(devices, toDeviceDomain(&ms[i]))
	}

	return devices
}

func (r *deviceRepository) UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error {
	result := r.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"fcm_token": token,
			"is_active": true,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (r *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Update("is_active", false).Error
	if err != nil {
		return errors.Wrap(err, "failed to deactivate devices by token")
	}

	return nil
}
