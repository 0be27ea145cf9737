package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"hail/internal/delivery/http/response"
	"hail/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VendorHandler holds dependencies for vendor-related handlers.
type VendorHandler struct {
	uc     usecase.VendorUsecase
	logger *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(uc usecase.VendorUsecase, logger *slog.Logger) *VendorHandler {
	return &VendorHandler{
		uc:     uc,
		logger: logger,
	}
}

type createVendorRequest struct {
	BusinessName string `json:"business_name" validate:"required,max=100"`
	BusinessType string `json:"business_type" validate:"omitempty,max=50"`
	Description  string `json:"description" validate:"omitempty,max=2000"`
}

type locationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type availabilityRequest struct {
	Active    bool     `json:"active"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// Discover lists active vendors, sorted by distance when the customer
// provides lat and lon query parameters.
func (h *VendorHandler) Discover(c echo.Context) error {
	input := &usecase.DiscoverVendorsInput{}

	if latStr := c.QueryParam("lat"); latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid latitude")
		}
		input.Latitude = &lat
	}
	if lonStr := c.QueryParam("lon"); lonStr != "" {
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid longitude")
		}
		input.Longitude = &lon
	}

	views, err := h.uc.DiscoverVendors(c.Request().Context(), callerFromContext(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]map[string]any, 0, len(views))
	for _, view := range views {
		item := map[string]any{"vendor": view.Vendor}
		if view.DistanceKm != nil {
			item["distance_km"] = *view.DistanceKm
		}
		payload = append(payload, item)
	}

	return response.Success(c, http.StatusOK, payload, "Vendors retrieved successfully")
}

// GetVendor retrieves one vendor by ID.
func (h *VendorHandler) GetVendor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid vendor ID")
	}

	vendor, err := h.uc.GetVendor(c.Request().Context(), callerFromContext(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor retrieved successfully")
}

// CreateVendor creates the caller's vendor record.
func (h *VendorHandler) CreateVendor(c echo.Context) error {
	var req createVendorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	vendor, err := h.uc.CreateVendor(c.Request().Context(), callerFromContext(c), &usecase.CreateVendorInput{
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		Description:  req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, vendor, "Vendor created successfully")
}

// GetOwnVendor retrieves the caller's vendor record.
func (h *VendorHandler) GetOwnVendor(c echo.Context) error {
	vendor, err := h.uc.GetOwnVendor(c.Request().Context(), callerFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor retrieved successfully")
}

// UpdateProfile updates the caller's vendor business metadata.
func (h *VendorHandler) UpdateProfile(c echo.Context) error {
	var req createVendorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	vendor, err := h.uc.UpdateProfile(c.Request().Context(), callerFromContext(c), &usecase.UpdateVendorProfileInput{
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		Description:  req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor updated successfully")
}

// BroadcastLocation stores one GPS fix from the vendor's device.
func (h *VendorHandler) BroadcastLocation(c echo.Context) error {
	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.uc.BroadcastLocation(c.Request().Context(), callerFromContext(c), &usecase.BroadcastLocationInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Location updated successfully")
}

// SetAvailability toggles the caller's vendor between discoverable and
// hidden. Going online requires a coordinate pair in the same request.
func (h *VendorHandler) SetAvailability(c echo.Context) error {
	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	caller := callerFromContext(c)

	if !req.Active {
		if err := h.uc.Deactivate(ctx, caller); err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, nil, "Vendor is now offline")
	}

	if req.Latitude == nil || req.Longitude == nil {
		return response.BadRequest(c, "LOCATION_REQUIRED", "Going online requires a current coordinate pair")
	}

	err := h.uc.Activate(ctx, caller, &usecase.BroadcastLocationInput{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Vendor is now online")
}

// GetHailQR renders the printable hail QR code for the caller's vendor.
func (h *VendorHandler) GetHailQR(c echo.Context) error {
	png, err := h.uc.GenerateHailQR(c.Request().Context(), callerFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
