package genres

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all the routes for the genres domain.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		genreService: NewService(db),
	}

	e.GET("/genres", h.list)
	e.GET("/genres/:id", h.retrieve)
	e.GET("/genres/:id/books", h.books)
}
