// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device is a push-notification endpoint registered by an identity's session.
// Vendors register devices so that new calls can be pushed to them.
type Device struct {
	ID         uuid.UUID `json:"id"`
	IdentityID uuid.UUID `json:"identity_id"` // The identity this device belongs to.
	FCMToken   string    `json:"fcm_token"`   // Firebase Cloud Messaging registration token.
	DeviceID   string    `json:"device_id"`   // Client-generated stable device identifier.
	Platform   string    `json:"platform"`    // "ios", "android" or "web".
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
