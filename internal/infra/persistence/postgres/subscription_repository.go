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

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a GORM-backed subscription repository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func fromSubscriptionDomain(sub *entity.VendorSubscription) *model.VendorSubscriptionModel {
	return &model.VendorSubscriptionModel{
		ID:        sub.ID,
		VendorID:  sub.VendorID,
		StartDate: sub.StartDate,
		EndDate:   sub.EndDate,
		Amount:    sub.Amount,
		Status:    sub.Status.String(),
		CreatedAt: sub.CreatedAt,
	}
}

func toSubscriptionDomain(m *model.VendorSubscriptionModel) *entity.VendorSubscription {
	return &entity.VendorSubscription{
		ID:        m.ID,
		VendorID:  m.VendorID,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Amount:    m.Amount,
		Status:    entity.SubscriptionStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func (r *subscriptionRepository) Create(ctx context.Context, subscription *entity.VendorSubscription) error {
	m := fromSubscriptionDomain(subscription)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create subscription")
	}

	subscription.ID = m.ID
	subscription.CreatedAt = m.CreatedAt

	return nil
}

func (r *subscriptionRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorSubscription, error) {
	var ms []model.VendorSubscriptionModel
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions by vendor")
	}

	subs := make([]*entity.VendorSubscription, 0, len(ms))
	for i := range ms {
		subs = append(subs, toSubscriptionDomain(&ms[i]))
	}

	return subs, nil
}

func (r *subscriptionRepository) FindCovering(ctx context.Context, vendorID uuid.UUID, now time.Time) (*entity.VendorSubscription, error) {
	// Coverage is derived, never stored: a row covers today when its status is
	// active and its end date has not passed. Day granularity matches the
	// date-typed columns.
	var m model.VendorSubscriptionModel
	err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND status = ? AND end_date >= ?",
			vendorID, entity.SubscriptionStatusActive.String(), now.Format("2006-01-02")).
		Order("end_date DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find covering subscription")
	}

	return toSubscriptionDomain(&m), nil
}
