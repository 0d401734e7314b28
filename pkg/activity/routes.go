package activity

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all the routes for the activity domain.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		activityService: NewService(db),
	}

	e.GET("/activity/daily", h.daily)
	e.GET("/activity/streaks", h.streaks)
}
