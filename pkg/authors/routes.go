package authors

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all the routes for the authors domain.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		authorService: NewService(db),
	}

	e.GET("/authors", h.list)
	e.GET("/authors/:id", h.retrieve)
	e.GET("/authors/:id/books", h.books)
}
