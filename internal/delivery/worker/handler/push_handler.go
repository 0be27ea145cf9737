// Package handler contains the worker's Pub/Sub push handlers.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"hail/config"
	deliverycontext "hail/internal/delivery/context"
	"hail/internal/domain/constants"
	"hail/internal/domain/entity"
	"hail/internal/domain/repository"
	"hail/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler turns change-feed events into FCM pushes. The feed payload is
// identifiers-only, so every handler re-reads current row state before
// notifying; duplicate deliveries then produce duplicate pushes at worst,
// never stale content.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	callRepo        repository.CallRepository
	vendorRepo      repository.VendorRepository
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	CallRepo        repository.CallRepository
	VendorRepo      repository.VendorRepository
	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		callRepo:        params.CallRepo,
		vendorRepo:      params.VendorRepo,
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse change event
	var event service.ChangeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse change event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing change event",
		slog.String("event_id", event.EventID),
		slog.String("entity", event.Entity),
		slog.String("type", event.Type),
		slog.String("row_id", event.RowID),
	)

	// Process the change event
	if err := h.processChangeEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process change event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Change event processed successfully",
		slog.String("event_id", event.EventID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ChangeEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processChangeEvent routes a change event by entity. Only call events fan
// out as pushes; vendor events exist for app clients that re-read discovery
// state and need nothing from the worker.
func (h *PushHandler) processChangeEvent(ctx context.Context, event *service.ChangeEvent) error {
	switch event.Entity {
	case constants.EntityCalls:
		return h.processCallEvent(ctx, event)
	case constants.EntityVendors:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("[Worker] Vendor event acknowledged",
			slog.String("row_id", event.RowID),
		)

		return nil
	default:
		// Unknown entities ack without retry; a new producer version may be
		// ahead of this worker.
		h.logger.Warn("[Worker] Unknown event entity", slog.String("entity", event.Entity))

		return nil
	}
}

// processCallEvent re-reads the call and notifies the affected party:
// the vendor's owner on insert, the customer on status updates.
func (h *PushHandler) processCallEvent(ctx context.Context, event *service.ChangeEvent) error {
	callID, err := uuid.Parse(event.RowID)
	if err != nil {
		return errors.WithStack(err)
	}

	call, err := h.callRepo.FindByID(ctx, callID)
	if err != nil {
		if errors.Is(err, repository.ErrCallNotFound) {
			// Row vanished between publish and delivery; nothing to push.
			return nil
		}

		return newRetryableError(errors.WithStack(err))
	}

	var recipientID uuid.UUID
	var title, body string

	switch event.Type {
	case constants.ChangeInsert:
		vendor, err := h.vendorRepo.FindByID(ctx, call.VendorID)
		if err != nil {
			return newRetryableError(errors.WithStack(err))
		}
		recipientID = vendor.OwnerID
		title = "New call"
		body = "A customer nearby is hailing you"
	case constants.ChangeUpdate:
		recipientID = call.CustomerID
		title = "Call update"
		body = fmt.Sprintf("Your call is now %s", call.Status)
	default:
		h.logger.Warn("[Worker] Unknown call event type", slog.String("type", event.Type))

		return nil
	}

	data := map[string]string{
		"call_id":   call.ID.String(),
		"vendor_id": call.VendorID.String(),
		"status":    call.Status.String(),
		"latitude":  fmt.Sprintf("%f", call.Latitude),
		"longitude": fmt.Sprintf("%f", call.Longitude),
	}

	return h.notifyIdentity(ctx, recipientID, title, body, data, event.EventID)
}

// notifyIdentity sends a push to every active device of one identity and
// deactivates tokens Firebase reports as dead.
func (h *PushHandler) notifyIdentity(ctx context.Context, identityID uuid.UUID, title, body string, data map[string]string, eventID string) error {
	devices, err := h.deviceRepo.FindActiveByIdentities(ctx, []uuid.UUID{identityID})
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(devices) == 0 {
		h.logger.Info("[Worker] No active devices for recipient",
			slog.String("event_id", eventID),
			slog.String("identity_id", identityID.String()),
		)

		return nil
	}

	tokens := collectTokens(devices)

	sent, failed, invalidTokens, err := h.notificationSvc.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(invalidTokens) > 0 {
		if err := h.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			h.logger.Warn("[Worker] Failed to deactivate invalid tokens", slog.Any("error", err))
		}
	}

	h.logger.Info("[Worker] Push fan-out completed",
		slog.String("event_id", eventID),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

// collectTokens extracts FCM tokens from devices
func collectTokens(devices []*entity.Device) []string {
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	return tokens
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
