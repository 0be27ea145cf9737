// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"hail/internal/delivery/http/response"
	"hail/internal/domain/policy"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// callerFromContext builds the policy caller from the identity the auth
// middleware resolved. A missing identity yields an unauthenticated caller,
// which every policy predicate rejects.
func callerFromContext(c echo.Context) policy.Caller {
	if identityID, ok := c.Get("identityID").(uuid.UUID); ok {
		return policy.Caller{ID: identityID}
	}

	return policy.Caller{}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
