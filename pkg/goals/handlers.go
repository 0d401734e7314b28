package goals

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	goalService *Service
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	params := GoalQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	year := time.Now().Year()
	if params.Year != nil {
		year = *params.Year
	}

	progress, err := h.goalService.RetrieveGoalProgress(ctx, year)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, progress))
}

func (h *handler) set(c echo.Context) error {
	ctx := c.Request().Context()

	params := SetGoalPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	goal, err := h.goalService.SetGoal(ctx, params.Year, SetGoalOptions{
		TargetBooks: params.TargetBooks,
		TargetPages: params.TargetPages,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, goal))
}
