package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorModel mirrors the 'vendors' table. OwnerID is unique: one vendor
// record per identity. Latitude and longitude use the fixed-point precision
// of the GPS feed (8 fractional digits) and are written together with
// LocationAt as one snapshot.
type VendorModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName string     `gorm:"type:varchar(100);not null"`
	BusinessType string     `gorm:"type:varchar(50)"`
	Description  string     `gorm:"type:text"`
	IsActive     bool       `gorm:"not null;default:false;index"`
	Latitude     *float64   `gorm:"type:decimal(10,8)"`
	Longitude    *float64   `gorm:"type:decimal(11,8)"`
	LocationAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time // Maintained by GORM on every update, unconditionally.

	Subscriptions []VendorSubscriptionModel `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
	Calls         []CallModel               `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
