package books

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all the routes for the books domain.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		bookService: NewService(db),
	}

	e.GET("/books", h.list)
	e.POST("/books", h.create)
	e.GET("/books/:id", h.retrieve)
	e.PATCH("/books/:id", h.update)
	e.DELETE("/books/:id", h.deleteBook)
}
