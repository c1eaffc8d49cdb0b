// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account lifecycle
	e.POST("/signup", r.accountHandler.Signup)
	e.GET("/verify-email", r.accountHandler.VerifyEmail)
	e.POST("/login", r.accountHandler.Login)

	// Lookup
	e.GET("/users", r.accountHandler.ListUsers)
	e.GET("/users/:id", r.accountHandler.GetUser)

	// Routes that require a valid session token
	e.GET("/me", r.accountHandler.Me, r.authMiddleware.Authenticate)
}
