package activity

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	activityService *Service
}

func (h *handler) daily(c echo.Context) error {
	ctx := c.Request().Context()

	params := DailyActivityQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	days, err := h.activityService.ComputeDailyActivity(ctx, time.Now(), params.WindowDays)
	if err != nil {
		return errors.WithStack(err)
	}

	response := map[string]any{
		"days":        days,
		"window_days": params.WindowDays,
	}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

func (h *handler) streaks(c echo.Context) error {
	ctx := c.Request().Context()

	summary, err := h.activityService.ComputeStreaks(ctx, time.Now())
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, summary))
}
