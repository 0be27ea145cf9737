package handler

import (
	"log/slog"
	"net/http"

	"hail/internal/delivery/http/response"
	"hail/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CallHandler holds dependencies for call-lifecycle handlers.
type CallHandler struct {
	uc     usecase.CallUsecase
	logger *slog.Logger
}

// NewCallHandler is the constructor for CallHandler, injected by Fx.
func NewCallHandler(uc usecase.CallUsecase, logger *slog.Logger) *CallHandler {
	return &CallHandler{
		uc:     uc,
		logger: logger,
	}
}

type placeCallRequest struct {
	VendorID  uuid.UUID `json:"vendor_id" validate:"required"`
	Latitude  float64   `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64   `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// PlaceCall creates a pending call from the caller to a vendor.
func (h *CallHandler) PlaceCall(c echo.Context) error {
	var req placeCallRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid call input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	call, err := h.uc.PlaceCall(c.Request().Context(), callerFromContext(c), &usecase.PlaceCallInput{
		VendorID:  req.VendorID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, call, "Call placed successfully")
}

// GetCall retrieves one call visible to the caller.
func (h *CallHandler) GetCall(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid call ID")
	}

	call, err := h.uc.GetCall(c.Request().Context(), callerFromContext(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, call, "Call retrieved successfully")
}

// Acknowledge marks a pending call acknowledged by the vendor.
func (h *CallHandler) Acknowledge(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid call ID")
	}

	call, err := h.uc.AcknowledgeCall(c.Request().Context(), callerFromContext(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, call, "Call acknowledged successfully")
}

// Complete marks a call completed by the vendor.
func (h *CallHandler) Complete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid call ID")
	}

	call, err := h.uc.CompleteCall(c.Request().Context(), callerFromContext(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, call, "Call completed successfully")
}

// ListCustomerCalls lists the calls the caller placed.
func (h *CallHandler) ListCustomerCalls(c echo.Context) error {
	calls, err := h.uc.ListCustomerCalls(c.Request().Context(), callerFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, calls, "Calls retrieved successfully")
}

// ListVendorCalls lists the calls addressed to the caller's vendor.
func (h *CallHandler) ListVendorCalls(c echo.Context) error {
	calls, err := h.uc.ListVendorCalls(c.Request().Context(), callerFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, calls, "Calls retrieved successfully")
}
