package readinglog

import (
	"github.com/labstack/echo/v4"
	"github.com/leaflog/leaflog/pkg/books"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all the routes for the reading log domain.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		logService:  NewService(db),
		bookService: books.NewService(db),
	}

	e.GET("/books/:id/log", h.retrieve)
	e.PUT("/books/:id/log", h.upsert)
	e.POST("/books/:id/log/finish", h.finish)
	e.DELETE("/books/:id/log", h.deleteEntry)
}
