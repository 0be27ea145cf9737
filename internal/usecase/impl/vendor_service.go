package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"hail/config"
	deliverycontext "hail/internal/delivery/context"
	"hail/internal/domain/constants"
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

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	txManager        repository.TransactionManager
	vendorRepo       repository.VendorRepository
	subscriptionRepo repository.SubscriptionRepository
	qrcodeService    service.QRCodeService
	eventPublisher   service.EventPublisher
	maxListRadiusKm  float64
	logger           *slog.Logger
}

// VendorServiceParams holds dependencies for vendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	VendorRepo       repository.VendorRepository
	SubscriptionRepo repository.SubscriptionRepository
	QRCodeService    service.QRCodeService
	EventPublisher   service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	maxRadius := 0.0
	if params.Config != nil && params.Config.Hailing != nil {
		maxRadius = params.Config.Hailing.MaxListRadiusKm
	}

	return &vendorService{
		txManager:        params.TxManager,
		vendorRepo:       params.VendorRepo,
		subscriptionRepo: params.SubscriptionRepo,
		qrcodeService:    params.QRCodeService,
		eventPublisher:   params.EventPublisher,
		maxListRadiusKm:  maxRadius,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// publishVendorChange emits a vendor-row change notification. The feed is
// advisory: listeners re-read current state, so a failed publish is logged
// and never fails the write that triggered it.
func (srv *vendorService) publishVendorChange(ctx context.Context, changeType string, vendorID uuid.UUID) {
	event := &service.ChangeEvent{
		EventID:    uuid.New().String(),
		Entity:     constants.EntityVendors,
		Type:       changeType,
		RowID:      vendorID.String(),
		VendorID:   vendorID.String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now(),
	}

	if err := srv.eventPublisher.PublishChangeEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish vendor change event",
			slog.Any("vendorID", vendorID), slog.Any("error", err))
	}
}

// CreateVendor creates the vendor record owned by the caller. An identity
// owns at most one vendor record.
func (srv *vendorService) CreateVendor(ctx context.Context, caller policy.Caller, input *usecase.CreateVendorInput) (*entity.Vendor, error) {
	if !policy.CanWriteVendor(caller, caller.ID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "vendor create denied")
	}

	newVendor := &entity.Vendor{
		ID:           uuid.New(),
		OwnerID:      caller.ID,
		BusinessName: input.BusinessName,
		BusinessType: input.BusinessType,
		Description:  input.Description,
	}

	// Check-then-insert shares one transaction so concurrent creates by the
	// same owner cannot both pass.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vendorRepo := repoFactory.VendorRepo()

		_, findErr := vendorRepo.FindByOwner(ctx, caller.ID)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrVendorAlreadyExists, "vendor already exists for this identity")
		}
		if !errors.Is(findErr, repository.ErrVendorNotFound) {
			return errors.Wrap(findErr, "failed to check existing vendor")
		}

		if createErr := vendorRepo.Create(ctx, newVendor); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateVendor) {
				return errors.Wrap(domainerrors.ErrVendorAlreadyExists, "vendor already exists for this identity")
			}

			return errors.Wrap(createErr, "failed to create vendor")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Vendor creation failed", slog.Any("ownerID", caller.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute vendor creation transaction")
	}

	srv.log(ctx).Info("Vendor created", slog.Any("vendorID", newVendor.ID), slog.Any("ownerID", caller.ID))
	srv.publishVendorChange(ctx, constants.ChangeInsert, newVendor.ID)

	return newVendor, nil
}

// GetVendor retrieves a single vendor by ID.
func (srv *vendorService) GetVendor(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Vendor, error) {
	if !policy.CanReadVendor(caller) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "vendor read denied")
	}

	vendor, err := srv.vendorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVendorNotFound, "vendor lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find vendor")
	}

	return vendor, nil
}

// GetOwnVendor retrieves the vendor record owned by the caller.
func (srv *vendorService) GetOwnVendor(ctx context.Context, caller policy.Caller) (*entity.Vendor, error) {
	return srv.loadOwnVendor(ctx, caller)
}

// DiscoverVendors lists active vendors carrying a location snapshot. When the
// customer's position is provided each vendor gets a display distance and the
// list is sorted nearest first; vendors beyond the configured radius drop out.
func (srv *vendorService) DiscoverVendors(ctx context.Context, caller policy.Caller, input *usecase.DiscoverVendorsInput) ([]*usecase.VendorView, error) {
	if !policy.CanReadVendor(caller) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "vendor discovery denied")
	}

	vendors, err := srv.vendorRepo.FindActiveWithLocation(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active vendors")
	}

	hasOrigin := input != nil && input.Latitude != nil && input.Longitude != nil

	views := make([]*usecase.VendorView, 0, len(vendors))
	for _, vendor := range vendors {
		view := &usecase.VendorView{Vendor: vendor}

		if hasOrigin && vendor.HasLocation() {
			distance := haversineKm(*input.Latitude, *input.Longitude, *vendor.Latitude, *vendor.Longitude)
			if srv.maxListRadiusKm > 0 && distance > srv.maxListRadiusKm {
				continue
			}
			view.DistanceKm = &distance
		}

		views = append(views, view)
	}

	if hasOrigin {
		sort.Slice(views, func(i, j int) bool {
			return *views[i].DistanceKm < *views[j].DistanceKm
		})
	}

	return views, nil
}

// UpdateProfile updates the caller's vendor business metadata.
func (srv *vendorService) UpdateProfile(ctx context.Context, caller policy.Caller, input *usecase.UpdateVendorProfileInput) (*entity.Vendor, error) {
	vendor, err := srv.loadOwnVendor(ctx, caller)
	if err != nil {
		return nil, err
	}

	vendor.BusinessName = input.BusinessName
	vendor.BusinessType = input.BusinessType
	vendor.Description = input.Description

	if err := srv.vendorRepo.UpdateProfile(ctx, vendor); err != nil {
		return nil, errors.Wrap(err, "failed to update vendor profile")
	}

	srv.publishVendorChange(ctx, constants.ChangeUpdate, vendor.ID)

	return vendor, nil
}

// BroadcastLocation stores one GPS fix as the vendor's current location.
// Concurrent broadcasts resolve last-write-wins at the database.
func (srv *vendorService) BroadcastLocation(ctx context.Context, caller policy.Caller, input *usecase.BroadcastLocationInput) error {
	vendor, err := srv.loadOwnVendor(ctx, caller)
	if err != nil {
		return err
	}

	if err := srv.vendorRepo.UpdateLocation(ctx, vendor.ID, input.Latitude, input.Longitude, time.Now()); err != nil {
		return errors.Wrap(err, "failed to update vendor location")
	}

	srv.publishVendorChange(ctx, constants.ChangeUpdate, vendor.ID)

	return nil
}

// Activate makes the caller's vendor discoverable. The request must carry a
// fresh coordinate pair, and the vendor must hold a subscription covering
// today; the flag is never set without both.
func (srv *vendorService) Activate(ctx context.Context, caller policy.Caller, input *usecase.BroadcastLocationInput) error {
	vendor, err := srv.loadOwnVendor(ctx, caller)
	if err != nil {
		return err
	}

	if input == nil {
		return errors.Wrap(domainerrors.ErrLocationRequired, "activation rejected")
	}

	_, err = srv.subscriptionRepo.FindCovering(ctx, vendor.ID, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			srv.log(ctx).Warn("Activation without covering subscription", slog.Any("vendorID", vendor.ID))

			return errors.Wrap(domainerrors.ErrNoCoveringSubscription, "activation rejected")
		}

		return errors.Wrap(err, "failed to check covering subscription")
	}

	if err := srv.vendorRepo.Activate(ctx, vendor.ID, input.Latitude, input.Longitude, time.Now()); err != nil {
		return errors.Wrap(err, "failed to activate vendor")
	}

	srv.log(ctx).Info("Vendor activated", slog.Any("vendorID", vendor.ID))
	srv.publishVendorChange(ctx, constants.ChangeUpdate, vendor.ID)

	return nil
}

// Deactivate removes the caller's vendor from discovery. Deactivating an
// already inactive vendor succeeds without effect.
func (srv *vendorService) Deactivate(ctx context.Context, caller policy.Caller) error {
	vendor, err := srv.loadOwnVendor(ctx, caller)
	if err != nil {
		return err
	}

	if err := srv.vendorRepo.Deactivate(ctx, vendor.ID); err != nil {
		return errors.Wrap(err, "failed to deactivate vendor")
	}

	srv.log(ctx).Info("Vendor deactivated", slog.Any("vendorID", vendor.ID))
	srv.publishVendorChange(ctx, constants.ChangeUpdate, vendor.ID)

	return nil
}

// GenerateHailQR renders the printable QR code for the caller's vendor.
func (srv *vendorService) GenerateHailQR(ctx context.Context, caller policy.Caller) ([]byte, error) {
	vendor, err := srv.loadOwnVendor(ctx, caller)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateHailQR(vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate hail QR code")
	}

	return png, nil
}

// loadOwnVendor resolves the caller's vendor record and enforces ownership.
func (srv *vendorService) loadOwnVendor(ctx context.Context, caller policy.Caller) (*entity.Vendor, error) {
	if !caller.IsAuthenticated() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "vendor access denied")
	}

	vendor, err := srv.vendorRepo.FindByOwner(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVendorNotFound, "caller has no vendor record")
		}

		return nil, errors.Wrap(err, "failed to find vendor by owner")
	}

	if !policy.CanWriteVendor(caller, vendor.OwnerID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "vendor access denied")
	}

	return vendor, nil
}
