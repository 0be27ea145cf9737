// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hail/internal/delivery/http/middleware"
	"hail/internal/delivery/http/router/handler"
	"hail/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	VendorHandler       *handler.VendorHandler
	SubscriptionHandler *handler.SubscriptionHandler
	CallHandler         *handler.CallHandler
	DeviceHandler       *handler.DeviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	vendorHandler       *handler.VendorHandler
	subscriptionHandler *handler.SubscriptionHandler
	callHandler         *handler.CallHandler
	deviceHandler       *handler.DeviceHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		vendorHandler:       params.VendorHandler,
		subscriptionHandler: params.SubscriptionHandler,
		callHandler:         params.CallHandler,
		deviceHandler:       params.DeviceHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// Identity routes that require authentication
	identityGroup := e.Group("/identity")
	identityGroup.Use(r.authMiddleware.Authenticate)
	{
		identityGroup.GET("", r.accountHandler.GetMe)
		identityGroup.PUT("", r.accountHandler.UpdateContact)
	}

	identitiesGroup := e.Group("/identities")
	identitiesGroup.Use(r.authMiddleware.Authenticate)
	{
		identitiesGroup.GET("/:id", r.accountHandler.GetIdentity)
	}

	// Discovery routes for customers and vendors alike
	vendorsGroup := e.Group("/vendors")
	vendorsGroup.Use(r.authMiddleware.Authenticate)
	{
		vendorsGroup.GET("", r.vendorHandler.Discover)
		vendorsGroup.GET("/:id", r.vendorHandler.GetVendor)
	}

	// Vendor self-service routes that require the "vendor" role
	vendorGroup := e.Group("/vendor")
	vendorGroup.Use(r.authMiddleware.Authenticate)
	vendorGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor.String()))
	{
		vendorGroup.POST("", r.vendorHandler.CreateVendor)
		vendorGroup.GET("", r.vendorHandler.GetOwnVendor)
		vendorGroup.PUT("", r.vendorHandler.UpdateProfile)
		vendorGroup.PUT("/location", r.vendorHandler.BroadcastLocation)
		vendorGroup.PUT("/availability", r.vendorHandler.SetAvailability)
		vendorGroup.GET("/qr", r.vendorHandler.GetHailQR)

		vendorGroup.POST("/subscription", r.subscriptionHandler.RecordPayment)
		vendorGroup.GET("/subscription", r.subscriptionHandler.GetCurrent)
		vendorGroup.GET("/subscriptions", r.subscriptionHandler.ListSubscriptions)

		vendorGroup.GET("/calls", r.callHandler.ListVendorCalls)
	}

	// Call routes
	callsGroup := e.Group("/calls")
	callsGroup.Use(r.authMiddleware.Authenticate)
	{
		callsGroup.POST("", r.callHandler.PlaceCall, r.authMiddleware.RequireRole(entity.RoleCustomer.String()))
		callsGroup.GET("", r.callHandler.ListCustomerCalls)
		callsGroup.GET("/:id", r.callHandler.GetCall)
		callsGroup.POST("/:id/acknowledge", r.callHandler.Acknowledge, r.authMiddleware.RequireRole(entity.RoleVendor.String()))
		callsGroup.POST("/:id/complete", r.callHandler.Complete, r.authMiddleware.RequireRole(entity.RoleVendor.String()))
	}

	// Push device routes
	devicesGroup := e.Group("/devices")
	devicesGroup.Use(r.authMiddleware.Authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
	}
}
