package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"hail/config"
	"hail/internal/domain/constants"
	"hail/internal/domain/entity"
	"hail/internal/domain/repository"
	"hail/internal/domain/service"
	mockRepo "hail/internal/mocks/repository"
	mockSvc "hail/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pushHandlerFixtures holds all test dependencies for push handler tests.
type pushHandlerFixtures struct {
	handler         *PushHandler
	callRepo        *mockRepo.MockCallRepository
	vendorRepo      *mockRepo.MockVendorRepository
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
}

func createTestPushHandler(t *testing.T) pushHandlerFixtures {
	callRepo := mockRepo.NewMockCallRepository(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	// Local provider keeps token verification off in tests.
	cfg := &config.Config{}

	handler := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		CallRepo:        callRepo,
		VendorRepo:      vendorRepo,
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
	})

	return pushHandlerFixtures{
		handler:         handler,
		callRepo:        callRepo,
		vendorRepo:      vendorRepo,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

// pushRequest builds an echo context carrying a Pub/Sub push envelope for the event.
func pushRequest(t *testing.T, event *service.ChangeEvent) (echo.Context, *httptest.ResponseRecorder) {
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.MessageID = "test-message-1"
	pushMsg.Subscription = "projects/test/subscriptions/hail-worker"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func callChangeEvent(changeType string, callID, vendorID uuid.UUID) *service.ChangeEvent {
	return &service.ChangeEvent{
		EventID:  uuid.New().String(),
		Entity:   constants.EntityCalls,
		Type:     changeType,
		RowID:    callID.String(),
		VendorID: vendorID.String(),
	}
}

func activeDevice(identityID uuid.UUID, token string) *entity.Device {
	return &entity.Device{
		ID:         uuid.New(),
		IdentityID: identityID,
		FCMToken:   token,
		DeviceID:   "pixel-8-lin",
		Platform:   "android",
		IsActive:   true,
	}
}

func TestPushHandler_CallInsert_NotifiesVendorOwner(t *testing.T) {
	fx := createTestPushHandler(t)

	ownerID := uuid.New()
	vendor := &entity.Vendor{ID: uuid.New(), OwnerID: ownerID}
	call := &entity.Call{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		VendorID:   vendor.ID,
		Status:     entity.CallStatusPending,
	}

	fx.callRepo.EXPECT().FindByID(mock.Anything, call.ID).Return(call, nil)
	fx.vendorRepo.EXPECT().FindByID(mock.Anything, vendor.ID).Return(vendor, nil)
	fx.deviceRepo.EXPECT().
		FindActiveByIdentities(mock.Anything, []uuid.UUID{ownerID}).
		Return([]*entity.Device{activeDevice(ownerID, "owner-token")}, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"owner-token"}, "New call", mock.AnythingOfType("string"), mock.Anything).
		Return(1, 0, nil, nil)

	c, rec := pushRequest(t, callChangeEvent(constants.ChangeInsert, call.ID, vendor.ID))
	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_CallUpdate_NotifiesCustomer(t *testing.T) {
	fx := createTestPushHandler(t)

	customerID := uuid.New()
	call := &entity.Call{
		ID:         uuid.New(),
		CustomerID: customerID,
		VendorID:   uuid.New(),
		Status:     entity.CallStatusAcknowledged,
	}

	fx.callRepo.EXPECT().FindByID(mock.Anything, call.ID).Return(call, nil)
	fx.deviceRepo.EXPECT().
		FindActiveByIdentities(mock.Anything, []uuid.UUID{customerID}).
		Return([]*entity.Device{activeDevice(customerID, "customer-token")}, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"customer-token"}, "Call update", "Your call is now acknowledged", mock.Anything).
		Return(1, 0, nil, nil)

	c, rec := pushRequest(t, callChangeEvent(constants.ChangeUpdate, call.ID, call.VendorID))
	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_InvalidTokensGetDeactivated(t *testing.T) {
	fx := createTestPushHandler(t)

	customerID := uuid.New()
	call := &entity.Call{
		ID:         uuid.New(),
		CustomerID: customerID,
		VendorID:   uuid.New(),
		Status:     entity.CallStatusCompleted,
	}

	fx.callRepo.EXPECT().FindByID(mock.Anything, call.ID).Return(call, nil)
	fx.deviceRepo.EXPECT().
		FindActiveByIdentities(mock.Anything, []uuid.UUID{customerID}).
		Return([]*entity.Device{
			activeDevice(customerID, "live-token"),
			activeDevice(customerID, "dead-token"),
		}, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"live-token", "dead-token"}, "Call update", mock.AnythingOfType("string"), mock.Anything).
		Return(1, 1, []string{"dead-token"}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(mock.Anything, []string{"dead-token"}).Return(nil)

	c, rec := pushRequest(t, callChangeEvent(constants.ChangeUpdate, call.ID, call.VendorID))
	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VanishedCallAcksWithoutPush(t *testing.T) {
	fx := createTestPushHandler(t)

	callID := uuid.New()
	fx.callRepo.EXPECT().FindByID(mock.Anything, callID).Return(nil, repository.ErrCallNotFound)

	c, rec := pushRequest(t, callChangeEvent(constants.ChangeUpdate, callID, uuid.New()))
	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RepoFailureRequestsRetry(t *testing.T) {
	fx := createTestPushHandler(t)

	callID := uuid.New()
	fx.callRepo.EXPECT().FindByID(mock.Anything, callID).Return(nil, assert.AnError)

	c, rec := pushRequest(t, callChangeEvent(constants.ChangeUpdate, callID, uuid.New()))
	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_VendorEventAcks(t *testing.T) {
	fx := createTestPushHandler(t)

	event := &service.ChangeEvent{
		EventID: uuid.New().String(),
		Entity:  constants.EntityVendors,
		Type:    constants.ChangeUpdate,
		RowID:   uuid.New().String(),
	}

	c, rec := pushRequest(t, event)
	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_NoActiveDevicesAcks(t *testing.T) {
	fx := createTestPushHandler(t)

	customerID := uuid.New()
	call := &entity.Call{
		ID:         uuid.New(),
		CustomerID: customerID,
		VendorID:   uuid.New(),
		Status:     entity.CallStatusAcknowledged,
	}

	fx.callRepo.EXPECT().FindByID(mock.Anything, call.ID).Return(call, nil)
	fx.deviceRepo.EXPECT().
		FindActiveByIdentities(mock.Anything, []uuid.UUID{customerID}).
		Return(nil, nil)

	c, rec := pushRequest(t, callChangeEvent(constants.ChangeUpdate, call.ID, call.VendorID))
	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedDataRejected(t *testing.T) {
	fx := createTestPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "%%%not-base64%%%"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, fx.handler.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
