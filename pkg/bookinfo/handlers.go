package bookinfo

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/leaflog/leaflog/pkg/books"
	"github.com/leaflog/leaflog/pkg/errcodes"
	"github.com/pkg/errors"
)

type handler struct {
	infoService *Service
	bookService *books.Service
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	bookID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	info, err := h.infoService.RetrieveInfo(ctx, bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, info))
}

func (h *handler) upsert(c echo.Context) error {
	ctx := c.Request().Context()
	bookID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	params := UpsertInfoPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.bookService.RetrieveBook(ctx, books.RetrieveBookOptions{ID: &bookID}); err != nil {
		return errors.WithStack(err)
	}

	info, err := h.infoService.UpsertInfo(ctx, bookID, UpsertInfoOptions{
		Description:   params.Description,
		CoverURL:      params.CoverURL,
		AverageRating: params.AverageRating,
		RatingsCount:  params.RatingsCount,
		SourceURL:     params.SourceURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, info))
}

func (h *handler) deleteInfo(c echo.Context) error {
	ctx := c.Request().Context()
	bookID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	err = h.infoService.DeleteInfo(ctx, bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
