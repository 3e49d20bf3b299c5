// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"atelier/internal/delivery/http/middleware"
	"atelier/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	ProjectHandler *handler.ProjectHandler
	AuthHandler    *handler.AuthHandler
	ContactHandler *handler.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	projectHandler *handler.ProjectHandler
	authHandler    *handler.AuthHandler
	contactHandler *handler.ContactHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		projectHandler: params.ProjectHandler,
		authHandler:    params.AuthHandler,
		contactHandler: params.ContactHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/projects", r.catalogHandler.ListProjects)
		catalogGroup.GET("/projects/:name", r.catalogHandler.GetProject)
		catalogGroup.GET("/projects/:name/similar", r.catalogHandler.SimilarProjects)
		catalogGroup.GET("/projects/:name/qr", r.catalogHandler.ShareQR)
	}

	// Public contact form
	e.POST("/contact", r.contactHandler.SendMessage)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Admin routes that require authentication and the admin account
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.POST("/projects", r.projectHandler.CreateProject)
		adminGroup.PUT("/projects/:docID", r.projectHandler.UpdateProject)
		adminGroup.DELETE("/projects/:docID", r.projectHandler.DeleteProject)
	}
}
