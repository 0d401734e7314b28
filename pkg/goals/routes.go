package goals

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all the routes for the reading goals domain.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		goalService: NewService(db),
	}

	e.GET("/goals", h.retrieve)
	e.PUT("/goals", h.set)
}
