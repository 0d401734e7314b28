package recommendations

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all the routes for the recommendations domain.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		recommendationService: NewService(db),
	}

	e.GET("/recommendations", h.list)
}
