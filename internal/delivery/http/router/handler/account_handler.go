package handler

import (
	"log/slog"
	"net/http"

	"hail/internal/delivery/http/response"
	"hail/internal/domain/entity"
	"hail/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for identity-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=vendor customer"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateContactRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
}

// identityResponse strips the password hash from identity payloads.
type identityResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt string    `json:"created_at"`
}

func toIdentityResponse(identity *entity.Identity) *identityResponse {
	return &identityResponse{
		ID:        identity.ID,
		Name:      identity.Name,
		Phone:     identity.Phone,
		Email:     identity.Email,
		Role:      identity.Role.String(),
		CreatedAt: identity.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Register handles the identity registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toIdentityResponse(output.Identity), "Identity registered successfully")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"identity":      toIdentityResponse(output.Identity),
	}, "Login successful")
}

// GetMe handles the request for the caller's own identity.
func (h *AccountHandler) GetMe(c echo.Context) error {
	caller := callerFromContext(c)

	identity, err := h.uc.GetIdentity(c.Request().Context(), caller, caller.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toIdentityResponse(identity), "Identity retrieved successfully")
}

// GetIdentity handles the request for any identity by ID.
func (h *AccountHandler) GetIdentity(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid identity ID")
	}

	identity, err := h.uc.GetIdentity(c.Request().Context(), callerFromContext(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toIdentityResponse(identity), "Identity retrieved successfully")
}

// UpdateContact handles updates to the caller's name and phone.
func (h *AccountHandler) UpdateContact(c echo.Context) error {
	var req updateContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity, err := h.uc.UpdateContact(c.Request().Context(), callerFromContext(c), &usecase.UpdateContactInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toIdentityResponse(identity), "Contact updated successfully")
}
