// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated principal in the system. Every customer and
// every vendor owner is backed by exactly one identity record.
type Identity struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the identity.
	Name         string    // Display name shown in the directory and on calls.
	Phone        string    // Contact phone number.
	Email        string    // Login identifier, unique across identities.
	PasswordHash string    // Bcrypt hash of the login password. Never serialized.
	Role         Role      // Role is fixed at registration and never updated afterwards.
	CreatedAt    time.Time // Timestamp of when this identity was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// NewIdentity builds an identity with a validated role. An unknown role
// string is rejected here rather than at the database boundary.
func NewIdentity(name, phone, email, passwordHash string, role Role) (*Identity, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	now := time.Now()

	return &Identity{
		ID:           uuid.New(),
		Name:         name,
		Phone:        phone,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
