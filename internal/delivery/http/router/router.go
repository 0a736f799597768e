// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ecodeli/internal/delivery/http/middleware"
	"ecodeli/internal/delivery/http/router/handler"
	"ecodeli/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MatchingHandler    *handler.MatchingHandler
	ApplicationHandler *handler.ApplicationHandler
	RouteHandler       *handler.RouteHandler
	LocationHandler    *handler.LocationHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	matchingHandler    *handler.MatchingHandler
	applicationHandler *handler.ApplicationHandler
	routeHandler       *handler.RouteHandler
	locationHandler    *handler.LocationHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		matchingHandler:    params.MatchingHandler,
		applicationHandler: params.ApplicationHandler,
		routeHandler:       params.RouteHandler,
		locationHandler:    params.LocationHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Deliverer routes
	delivererGroup := e.Group("/deliverer")
	delivererGroup.Use(r.authMiddleware.Authenticate)
	delivererGroup.Use(r.authMiddleware.RequireRole(entity.RoleDeliverer))
	{
		delivererGroup.PUT("/location", r.locationHandler.UpdateLocation)
		delivererGroup.PUT("/availability", r.locationHandler.UpdateAvailability)

		delivererGroup.GET("/matches", r.matchingHandler.FindAnnouncements)
		delivererGroup.POST("/announcements/:id/applications", r.applicationHandler.Apply)
		delivererGroup.GET("/applications", r.applicationHandler.ListMine)

		delivererGroup.POST("/routes/compose", r.matchingHandler.ComposeRoute)
		delivererGroup.POST("/routes/plan", r.routeHandler.PlanRoute)
		delivererGroup.GET("/routes", r.routeHandler.GetRoute)
	}

	// Client routes
	clientGroup := e.Group("/client")
	clientGroup.Use(r.authMiddleware.Authenticate)
	clientGroup.Use(r.authMiddleware.RequireRole(entity.RoleClient))
	{
		clientGroup.GET("/announcements/:id/matches", r.matchingHandler.FindDeliverers)
		clientGroup.POST("/applications/:id/accept", r.applicationHandler.Accept)
		clientGroup.POST("/applications/:id/reject", r.applicationHandler.Reject)
	}
}
