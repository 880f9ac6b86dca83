// Package http provides the HTTP handler layer for the smart search API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *SearchHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Ads group
	ads := api.Group("/ads")
	ads.POST("/search", h.SearchAds)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *SearchHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	ads := api.Group("/ads")
	ads.POST("/search", h.SearchAds)
}
