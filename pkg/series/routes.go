package series

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all the routes for the series domain.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		seriesService: NewService(db),
	}

	e.GET("/series", h.list)
	e.POST("/series", h.create)
	e.GET("/series/:id", h.retrieve)
	e.PATCH("/series/:id", h.update)
	e.DELETE("/series/:id", h.deleteSeries)
	e.GET("/series/:id/books", h.books)
	e.POST("/series/:id/books", h.addBook)
	e.DELETE("/series/:id/books/:bookID", h.removeBook)
}
