package model

import (
	"time"

	"github.com/google/uuid"
)

// CallModel mirrors the 'calls' table. Status is constrained to the
// three-value lifecycle; monotonicity of transitions is enforced by the
// guarded updates in the call repository, not by the schema itself.
type CallModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	VendorID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Latitude       float64   `gorm:"type:decimal(10,8);not null"`
	Longitude      float64   `gorm:"type:decimal(11,8);not null"`
	Status         string    `gorm:"type:varchar(16);not null;default:'pending';check:status IN ('pending','acknowledged','completed')"`
	CreatedAt      time.Time
	AcknowledgedAt *time.Time
	CompletedAt    *time.Time

	Customer *IdentityModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CallModel) TableName() string {
	return "calls"
}
