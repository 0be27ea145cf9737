package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel mirrors the 'devices' table holding push registration tokens.
type DeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IdentityID uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken   string    `gorm:"type:text;not null"`
	DeviceID   string    `gorm:"type:varchar(255);not null"`
	Platform   string    `gorm:"type:varchar(16)"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
