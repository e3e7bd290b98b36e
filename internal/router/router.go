package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/ai-service/internal/handler"
)

// RegisterRoutes registers the service's routes on the provided Echo
// instance.  The service exposes a single unauthenticated health check;
// every other path is left to Echo's default 404/405 handling.
func RegisterRoutes(e *echo.Echo) {
	// GET only; HEAD and other methods get Echo's 405.
	e.GET("/healthz", handler.Health)
}
