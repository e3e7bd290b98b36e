package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes

	"github.com/labstack/echo/v4" // echo is the web framework used for this project

	"github.com/iliyamo/ai-service/internal/model"
)

// Health is a simple health‑check endpoint used by load balancers and
// orchestrators to verify that the process is alive.  It ignores the
// request entirely and always answers 200 with {"ok": true, "data": null}.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, model.OK(nil)) // JSON sets Content-Type: application/json
}
