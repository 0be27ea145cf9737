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

type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository creates a GORM-backed identity repository.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

func fromIdentityDomain(identity *entity.Identity) *model.IdentityModel {
	return &model.IdentityModel{
		ID:           identity.ID,
		Name:         identity.Name,
		Phone:        identity.Phone,
		Email:        identity.Email,
		PasswordHash: identity.PasswordHash,
		Role:         identity.Role.String(),
		CreatedAt:    identity.CreatedAt,
		UpdatedAt:    identity.UpdatedAt,
	}
}

func toIdentityDomain(m *model.IdentityModel) *entity.Identity {
	return &entity.Identity{
		ID:           m.ID,
		Name:         m.Name,
		Phone:        m.Phone,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	m := fromIdentityDomain(identity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateIdentity
		}

		return errors.Wrap(err, "failed to create identity")
	}

	identity.ID = m.ID
	identity.CreatedAt = m.CreatedAt
	identity.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var m model.IdentityModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by id")
	}

	return toIdentityDomain(&m), nil
}

func (r *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	var m model.IdentityModel
	if err := r.db.WithContext(ctx).First(&m, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by email")
	}

	return toIdentityDomain(&m), nil
}

func (r *identityRepository) UpdateContact(ctx context.Context, id uuid.UUID, name, phone string) error {
	result := r.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":  name,
			"phone": phone,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update identity contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}
