// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is a business entity owned by exactly one identity. Its coordinate
// pair plus the location timestamp form a single versioned snapshot: the three
// fields are always written together and the last write wins.
type Vendor struct {
	ID           uuid.UUID  `json:"id"`            // The Global Unique Identifier (GUID) for the vendor.
	OwnerID      uuid.UUID  `json:"owner_id"`      // The identity that owns this vendor record. Unique per identity.
	BusinessName string     `json:"business_name"` // The vendor's public business name.
	BusinessType string     `json:"business_type"` // Free-form category, e.g. "food cart".
	Description  string     `json:"description"`   // A description of the business.
	IsActive     bool       `json:"is_active"`     // Whether the vendor is currently discoverable.
	Latitude     *float64   `json:"latitude"`      // Last broadcast latitude. Nil until the first broadcast.
	Longitude    *float64   `json:"longitude"`     // Last broadcast longitude. Nil until the first broadcast.
	LocationAt   *time.Time `json:"location_at"`   // Timestamp of the last location broadcast.
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// HasLocation reports whether the vendor has ever broadcast a coordinate pair.
// Latitude and longitude are written together, so checking one suffices, but
// both are checked to keep the invariant explicit.
func (v *Vendor) HasLocation() bool {
	return v.Latitude != nil && v.Longitude != nil
}

// SetLocation replaces the whole location snapshot atomically in memory.
func (v *Vendor) SetLocation(lat, lon float64, at time.Time) {
	v.Latitude = &lat
	v.Longitude = &lon
	v.LocationAt = &at
}
