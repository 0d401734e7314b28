package sessions

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all the routes for the sessions domain.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		sessionService: NewService(db),
	}

	e.GET("/sessions", h.list)
	e.POST("/sessions", h.create)
	e.PATCH("/sessions/:id", h.update)
	e.DELETE("/sessions/:id", h.deleteSession)
}
