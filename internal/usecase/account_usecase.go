// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"hail/internal/domain/entity"
	"hail/internal/domain/policy"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new identity.
// Role is fixed at registration and never changes afterwards.
type RegisterInput struct {
	Name     string
	Phone    string
	Email    string
	Password string
	Role     string
}

// LoginInput defines the data required for an identity to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateContactInput defines the mutable contact fields of an identity.
type UpdateContactInput struct {
	Name  string
	Phone string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created identity's basic information.
type RegisterOutput struct {
	Identity *entity.Identity
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Identity     *entity.Identity
}

// AccountUsecase defines the interface for identity-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetIdentity(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Identity, error)
	UpdateContact(ctx context.Context, caller policy.Caller, input *UpdateContactInput) (*entity.Identity, error)
}
