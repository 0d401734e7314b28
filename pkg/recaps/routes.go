package recaps

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all the routes for the recaps domain.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		recapService: NewService(db),
	}

	e.GET("/recaps", h.retrieve)
}
