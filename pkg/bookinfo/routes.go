package bookinfo

import (
	"github.com/labstack/echo/v4"
	"github.com/leaflog/leaflog/pkg/books"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all the routes for the book info domain.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		infoService: NewService(db),
		bookService: books.NewService(db),
	}

	e.GET("/books/:id/info", h.retrieve)
	e.PUT("/books/:id/info", h.upsert)
	e.DELETE("/books/:id/info", h.deleteInfo)
}
