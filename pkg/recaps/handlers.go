package recaps

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	recapService *Service
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	params := RecapQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	recap, err := h.recapService.ComputeMonthlyRecap(ctx, params.Year, params.Month)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, recap))
}
