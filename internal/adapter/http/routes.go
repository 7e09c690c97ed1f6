package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes mounts the API routes on the Echo instance.
// The health endpoint stays at the root for load balancers.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")
	api.GET("/airports/search", h.SearchAirports)
	api.GET("/airports/nearby", h.NearbyAirports)
	api.POST("/flights/search", h.SearchFlights)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
