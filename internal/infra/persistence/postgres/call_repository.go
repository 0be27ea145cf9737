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

type callRepository struct {
	db *gorm.DB
}

// NewCallRepository creates a GORM-backed call repository.
func NewCallRepository(db *gorm.DB) repository.CallRepository {
	return &callRepository{db: db}
}

func fromCallDomain(call *entity.Call) *model.CallModel {
	return &model.CallModel{
		ID:             call.ID,
		CustomerID:     call.CustomerID,
		VendorID:       call.VendorID,
		Latitude:       call.Latitude,
		Longitude:      call.Longitude,
		Status:         call.Status.String(),
		CreatedAt:      call.CreatedAt,
		AcknowledgedAt: call.AcknowledgedAt,
		CompletedAt:    call.CompletedAt,
	}
}

func toCallDomain(m *model.CallModel) *entity.Call {
	return &entity.Call{
		ID:             m.ID,
		CustomerID:     m.CustomerID,
		VendorID:       m.VendorID,
		Latitude:       m.Latitude,
		Longitude:      m.Longitude,
		Status:         entity.CallStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		AcknowledgedAt: m.AcknowledgedAt,
		CompletedAt:    m.CompletedAt,
	}
}

func (r *callRepository) Create(ctx context.Context, call *entity.Call) error {
	m := fromCallDomain(call)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create call")
	}

	call.ID = m.ID
	call.CreatedAt = m.CreatedAt

	return nil
}

func (r *callRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Call, error) {
	var m model.CallModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCallNotFound
		}

		return nil, errors.Wrap(err, "failed to find call by id")
	}

	return toCallDomain(&m), nil
}

func (r *callRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Call, error) {
	var ms []model.CallModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list calls by customer")
	}

	return toCallDomainSlice(ms), nil
}

func (r *callRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Call, error) {
	var ms []model.CallModel
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list calls by vendor")
	}

	return toCallDomainSlice(ms), nil
}

func toCallDomainSlice(ms []model.CallModel) []*entity.Call {
	calls := make([]*entity.Call, 0, len(ms))
	for i := range ms {
		calls = append(calls, toCallDomain(&ms[i]))
	}

	return calls
}

func (r *callRepository) MarkAcknowledged(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	// The status predicate in the WHERE clause is the transition guard:
	// concurrent acknowledgements race on it and exactly one wins.
	result := r.db.WithContext(ctx).
		Model(&model.CallModel{}).
		Where("id = ? AND status = ?", id, entity.CallStatusPending.String()).
		Updates(map[string]any{
			"status":          entity.CallStatusAcknowledged.String(),
			"acknowledged_at": at,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to acknowledge call")
	}

	return result.RowsAffected > 0, nil
}

func (r *callRepository) MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.CallModel{}).
		Where("id = ? AND status IN ?", id,
			[]string{entity.CallStatusPending.String(), entity.CallStatusAcknowledged.String()}).
		Updates(map[string]any{
			"status":       entity.CallStatusCompleted.String(),
			"completed_at": at,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to complete call")
	}

	return result.RowsAffected > 0, nil
}
