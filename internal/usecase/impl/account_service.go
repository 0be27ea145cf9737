package impl

import (
	"context"
	"log/slog"

	deliverycontext "hail/internal/delivery/context"
	"hail/internal/domain/entity"
	domainerrors "hail/internal/domain/errors"
	"hail/internal/domain/policy"
	"hail/internal/domain/repository"
	"hail/internal/domain/service"
	"hail/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	identityRepo repository.IdentityRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	IdentityRepo repository.IdentityRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		identityRepo: params.IdentityRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete identity registration process.
// The role is part of the registration input and becomes immutable.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.String("role", input.Role))

	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidRole, "registration rejected")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newIdentity, err := entity.NewIdentity(input.Name, input.Phone, input.Email, hashedPassword, role)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidRole, "registration rejected")
	}

	// Uniqueness check and insert share one transaction so two concurrent
	// registrations with the same email cannot both pass the check.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()

		_, findErr := identityRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrIdentityAlreadyExists, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrIdentityNotFound) {
			return errors.Wrap(findErr, "failed to check existing identity")
		}

		if createErr := identityRepo.Create(ctx, newIdentity); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateIdentity) {
				return errors.Wrap(domainerrors.ErrIdentityAlreadyExists, "email already registered")
			}

			return errors.Wrap(createErr, "failed to create identity")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("identityID", newIdentity.ID), slog.String("role", input.Role))

	return &usecase.RegisterOutput{Identity: newIdentity}, nil
}

// Login orchestrates the identity login process.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	identity, err := srv.identityRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load identity for login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, identity.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	roles := entity.Roles{identity.Role}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(identity.ID, roles.ToStrings())
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("Identity logged in successfully", slog.Any("identityID", identity.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Identity:     identity,
	}, nil
}

// GetIdentity retrieves a single identity. Any authenticated caller may read
// any identity row; contact data is directory-visible.
func (srv *accountService) GetIdentity(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Identity, error) {
	if !policy.CanReadIdentity(caller) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "identity read denied")
	}

	identity, err := srv.identityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrIdentityNotFound, "identity lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find identity")
	}

	return identity, nil
}

// UpdateContact updates the caller's own name and phone. Role and email stay
// untouched no matter what the client sends.
func (srv *accountService) UpdateContact(ctx context.Context, caller policy.Caller, input *usecase.UpdateContactInput) (*entity.Identity, error) {
	if !policy.CanWriteIdentity(caller, caller.ID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "identity write denied")
	}

	if err := srv.identityRepo.UpdateContact(ctx, caller.ID, input.Name, input.Phone); err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrIdentityNotFound, "identity update failed")
		}

		return nil, errors.Wrap(err, "failed to update identity contact")
	}

	identity, err := srv.identityRepo.FindByID(ctx, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload identity after update")
	}

	srv.log(ctx).Debug("Identity contact updated", slog.Any("identityID", caller.ID))

	return identity, nil
}
