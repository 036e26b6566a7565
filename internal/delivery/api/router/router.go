// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shopbot/internal/delivery/api/middleware"
	"shopbot/internal/delivery/api/router/handler"
	"shopbot/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthPath is excluded from access logs.
const HealthPath = "/health"

type RouterParams struct {
	fx.In

	WebhookHandler      *handler.WebhookHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	SignatureMiddleware *middleware.SignatureMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	webhookHandler      *handler.WebhookHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	signatureMiddleware *middleware.SignatureMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		webhookHandler:      params.WebhookHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		signatureMiddleware: params.SignatureMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET(HealthPath, handler.HealthCheck)
	e.GET("/privacy", handler.Privacy)

	// Messenger platform
	e.GET("/webhook", r.webhookHandler.Verify)
	e.POST("/webhook", r.webhookHandler.Receive, r.signatureMiddleware.Verify)

	adminGroup := e.Group("/admin")
	adminGroup.POST("/login", r.adminHandler.Login)

	// Everything else under /admin requires an operator token.
	protected := adminGroup.Group("")
	protected.Use(r.authMiddleware.Authenticate)
	protected.Use(r.authMiddleware.RequireRole(constants.AdminRole))
	{
		protected.GET("/orders", r.adminHandler.ListOrders)
		protected.GET("/orders/:id", r.adminHandler.GetOrder)
		protected.GET("/orders/:id/payment-qr", r.adminHandler.PaymentQR)
		protected.GET("/products", r.adminHandler.ListProducts)
	}
}
