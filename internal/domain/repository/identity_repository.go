// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"hail/internal/domain/entity"
	"hail/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for identity persistence.
var (
	// ErrIdentityNotFound is returned when an identity is not found.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrDuplicateIdentity is returned when the email is already registered.
	ErrDuplicateIdentity = errors.New("identity already exists")
)

// IdentityRepository defines the interface for identity-related database operations.
type IdentityRepository interface {
	// Create persists a new identity.
	Create(ctx context.Context, identity *entity.Identity) error

	// FindByID retrieves an identity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmail retrieves an identity by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// UpdateContact updates the display name and phone of an identity.
	// Role and email are immutable and never touched by this method.
	UpdateContact(ctx context.Context, id uuid.UUID, name, phone string) error
}
