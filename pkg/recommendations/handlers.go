package recommendations

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	recommendationService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	entries, err := h.recommendationService.ComputeRecommendations(ctx, time.Now())
	if err != nil {
		return errors.WithStack(err)
	}

	response := map[string]any{
		"recommendations": entries,
	}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}
