package postgres

import (
	"context"
	"time"

	"hail/internal/domain/entity"
	"hail/internal/domain/repository"
	"hail/internal/errors"
	"hail/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a GORM-backed vendor repository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{db: db}
}

func fromVendorDomain(vendor *entity.Vendor) *model.VendorModel {
	return &model.VendorModel{
		ID:           vendor.ID,
		OwnerID:      vendor.OwnerID,
		BusinessName: vendor.BusinessName,
		BusinessType: vendor.BusinessType,
		Description:  vendor.Description,
		IsActive:     vendor.IsActive,
		Latitude:     vendor.Latitude,
		Longitude:    vendor.Longitude,
		LocationAt:   vendor.LocationAt,
		CreatedAt:    vendor.CreatedAt,
		UpdatedAt:    vendor.UpdatedAt,
	}
}

func toVendorDomain(m *model.VendorModel) *entity.Vendor {
	return &entity.Vendor{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		BusinessName: m.BusinessName,
		BusinessType: m.BusinessType,
		Description:  m.Description,
		IsActive:     m.IsActive,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		LocationAt:   m.LocationAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	m := fromVendorDomain(vendor)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateVendor
		}

		return errors.Wrap(err, "failed to create vendor")
	}

	vendor.ID = m.ID
	vendor.CreatedAt = m.CreatedAt
	vendor.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var m model.VendorModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by id")
	}

	return toVendorDomain(&m), nil
}

func (r *vendorRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Vendor, error) {
	var m model.VendorModel
	if err := r.db.WithContext(ctx).First(&m, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by owner")
	}

	return toVendorDomain(&m), nil
}

func (r *vendorRepository) FindActiveWithLocation(ctx context.Context) ([]*entity.Vendor, error) {
	var ms []model.VendorModel
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", true).
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active vendors")
	}

	vendors := make([]*entity.Vendor, 0, len(ms))
	for i := range ms {
		vendors = append(vendors, toVendorDomain(&ms[i]))
	}

	return vendors, nil
}

func (r *vendorRepository) UpdateProfile(ctx context.Context, vendor *entity.Vendor) error {
	result := r.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", vendor.ID).
		Updates(map[string]any{
			"business_name": vendor.BusinessName,
			"business_type": vendor.BusinessType,
			"description":   vendor.Description,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update vendor profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

func (r *vendorRepository) UpdateLocation(ctx context.Context, vendorID uuid.UUID, lat, lon float64, at time.Time) error {
	// The three snapshot columns move together in one statement so concurrent
	// broadcasts resolve to whichever write lands last, never a mixed row.
	result := r.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", vendorID).
		Updates(map[string]any{
			"latitude":    lat,
			"longitude":   lon,
			"location_at": at,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update vendor location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

func (r *vendorRepository) Activate(ctx context.Context, vendorID uuid.UUID, lat, lon float64, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", vendorID).
		Updates(map[string]any{
			"is_active":   true,
			"latitude":    lat,
			"longitude":   lon,
			"location_at": at,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to activate vendor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

func (r *vendorRepository) Deactivate(ctx context.Context, vendorID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", vendorID).
		Update("is_active", false)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate vendor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}
