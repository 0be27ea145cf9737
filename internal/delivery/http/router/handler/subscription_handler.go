package handler

import (
	"log/slog"
	"net/http"

	"hail/internal/delivery/http/response"
	"hail/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubscriptionHandler holds dependencies for subscription-ledger handlers.
type SubscriptionHandler struct {
	uc     usecase.SubscriptionUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		uc:     uc,
		logger: logger,
	}
}

type recordPaymentRequest struct {
	Amount *int64 `json:"amount" validate:"omitempty,gt=0"`
}

// RecordPayment appends a new coverage period after a reported payment.
func (h *SubscriptionHandler) RecordPayment(c echo.Context) error {
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	subscription, err := h.uc.RecordPayment(c.Request().Context(), callerFromContext(c), &usecase.RecordPaymentInput{
		Amount: req.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subscription, "Payment recorded successfully")
}

// ListSubscriptions lists the caller's vendor's ledger rows, newest first.
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	views, err := h.uc.ListSubscriptions(c.Request().Context(), callerFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]map[string]any, 0, len(views))
	for _, view := range views {
		payload = append(payload, map[string]any{
			"subscription": view.Subscription,
			"covering":     view.Covering,
		})
	}

	return response.Success(c, http.StatusOK, payload, "Subscriptions retrieved successfully")
}

// GetCurrent retrieves the subscription covering today, if any.
func (h *SubscriptionHandler) GetCurrent(c echo.Context) error {
	view, err := h.uc.GetCurrent(c.Request().Context(), callerFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"subscription": view.Subscription,
		"covering":     view.Covering,
	}, "Covering subscription retrieved successfully")
}
