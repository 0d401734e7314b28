package quotes

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all the routes for the quotes domain.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		quoteService: NewService(db),
	}

	e.GET("/quotes", h.list)
	e.POST("/quotes", h.create)
	e.GET("/quotes/stats", h.stats)
	e.GET("/quotes/:id", h.retrieve)
	e.PATCH("/quotes/:id", h.update)
	e.DELETE("/quotes/:id", h.deleteQuote)
	e.POST("/quotes/:id/favorite", h.favorite)
}
