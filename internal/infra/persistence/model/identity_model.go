// Package model contains the GORM-specific persistence structs mirroring the
// database schema. They are mapped to and from pure domain entities at the
// repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'identities' table. One row per authenticated
// principal. The role column is constrained to the closed enumeration; the
// stronger guarantee (immutability after creation) lives in the domain layer.
type IdentityModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Phone        string    `gorm:"type:varchar(32)"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(16);not null;check:role IN ('vendor','customer')"`
	CreatedAt    time.Time
	UpdatedAt    time.Time // Maintained by GORM on every update, unconditionally.

	Vendor  *VendorModel  `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Devices []DeviceModel `gorm:"foreignKey:IdentityID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}
