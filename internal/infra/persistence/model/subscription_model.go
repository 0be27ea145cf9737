package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorSubscriptionModel mirrors the 'vendor_subscriptions' table.
// Amount defaults to the flat monthly fee in minor units. Start and end are
// calendar dates, not timestamps. Rows are never updated after insert, so
// there is no UpdatedAt column.
type VendorSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Amount    int64     `gorm:"not null;default:5000"`
	Status    string    `gorm:"type:varchar(16);not null;default:'pending';check:status IN ('pending','active','expired')"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorSubscriptionModel) TableName() string {
	return "vendor_subscriptions"
}
