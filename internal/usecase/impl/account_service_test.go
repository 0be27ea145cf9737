package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hail/internal/domain/entity"
	domainerrors "hail/internal/domain/errors"
	"hail/internal/domain/policy"
	"hail/internal/domain/repository"
	mockRepo "hail/internal/mocks/repository"
	mockSvc "hail/internal/mocks/service"
	"hail/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	identityRepo *mockRepo.MockIdentityRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		IdentityRepo: identityRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       testLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		identityRepo: identityRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// executeWithFactory wires the transaction manager mock to run the callback
// against the given repository factory, mirroring a committed transaction.
func executeWithFactory(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Lin's Tofu Cart",
		Phone:    "0912345678",
		Email:    "lin@example.com",
		Password: "StrongPass123!",
		Role:     "vendor",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txIdentityRepo := mockRepo.NewMockIdentityRepository(t)
	txIdentityRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrIdentityNotFound)
	txIdentityRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Identity")).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().IdentityRepo().Return(txIdentityRepo)
	executeWithFactory(fx.txManager, factory)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.Identity.Email)
	assert.Equal(t, entity.RoleVendor, output.Identity.Role)
	assert.Equal(t, "hashed_password", output.Identity.PasswordHash)
}

func TestAccountService_Register_InvalidRole(t *testing.T) {
	fx := createTestAccountService(t)

	input := &usecase.RegisterInput{
		Name:     "Somebody",
		Email:    "somebody@example.com",
		Password: "StrongPass123!",
		Role:     "admin",
	}

	output, err := fx.service.Register(context.Background(), input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestAccountService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Duplicate",
		Email:    "taken@example.com",
		Password: "StrongPass123!",
		Role:     "customer",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	existing := &entity.Identity{ID: uuid.New(), Email: input.Email, Role: entity.RoleCustomer}
	txIdentityRepo := mockRepo.NewMockIdentityRepository(t)
	txIdentityRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(existing, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().IdentityRepo().Return(txIdentityRepo)
	executeWithFactory(fx.txManager, factory)

	output, err := fx.service.Register(ctx, input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityAlreadyExists)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	identity := &entity.Identity{
		ID:           uuid.New(),
		Email:        "lin@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleVendor,
	}

	fx.identityRepo.EXPECT().FindByEmail(ctx, identity.Email).Return(identity, nil)
	fx.hasher.EXPECT().Check("StrongPass123!", identity.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(identity.ID, []string{"vendor"}).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: identity.Email, Password: "StrongPass123!"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, identity, output.Identity)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	identity := &entity.Identity{
		ID:           uuid.New(),
		Email:        "lin@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleVendor,
	}

	fx.identityRepo.EXPECT().FindByEmail(ctx, identity.Email).Return(identity, nil)
	fx.hasher.EXPECT().Check("WrongPass123!", identity.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: identity.Email, Password: "WrongPass123!"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	fx.identityRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrIdentityNotFound)

	// Unknown email and wrong password return the same error.
	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_GetIdentity_Unauthenticated(t *testing.T) {
	fx := createTestAccountService(t)

	identity, err := fx.service.GetIdentity(context.Background(), policy.Caller{}, uuid.New())
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAccountService_GetIdentity_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	targetID := uuid.New()

	fx.identityRepo.EXPECT().FindByID(ctx, targetID).Return(nil, repository.ErrIdentityNotFound)

	identity, err := fx.service.GetIdentity(ctx, caller, targetID)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)
}

func TestAccountService_UpdateContact_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	caller := policy.Caller{ID: uuid.New()}
	updated := &entity.Identity{
		ID:    caller.ID,
		Name:  "New Name",
		Phone: "0987654321",
		Role:  entity.RoleCustomer,
	}

	fx.identityRepo.EXPECT().UpdateContact(ctx, caller.ID, "New Name", "0987654321").Return(nil)
	fx.identityRepo.EXPECT().FindByID(ctx, caller.ID).Return(updated, nil)

	identity, err := fx.service.UpdateContact(ctx, caller, &usecase.UpdateContactInput{
		Name:  "New Name",
		Phone: "0987654321",
	})
	require.NoError(t, err)
	assert.Equal(t, updated, identity)
}
