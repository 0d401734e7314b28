package readinglog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/leaflog/leaflog/pkg/books"
	"github.com/leaflog/leaflog/pkg/errcodes"
	"github.com/leaflog/leaflog/pkg/models"
	"github.com/pkg/errors"
)

type handler struct {
	logService  *Service
	bookService *books.Service
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	bookID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	entry, err := h.logService.RetrieveEntry(ctx, bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, entry))
}

func (h *handler) upsert(c echo.Context) error {
	ctx := c.Request().Context()
	bookID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	params := UpsertEntryPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.bookService.RetrieveBook(ctx, books.RetrieveBookOptions{ID: &bookID}); err != nil {
		return errors.WithStack(err)
	}

	opts := UpsertEntryOptions{
		CurrentPage: params.CurrentPage,
		Rating:      params.Rating,
		Review:      params.Review,
		DateStarted: params.DateStarted,
	}
	if params.Status != nil {
		status := models.ReadingStatus(*params.Status)
		opts.Status = &status
	}

	entry, err := h.logService.UpsertEntry(ctx, bookID, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, entry))
}

func (h *handler) finish(c echo.Context) error {
	ctx := c.Request().Context()
	bookID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	c.Set("disallow_empty_body", false)
	params := MarkFinishedPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.bookService.RetrieveBook(ctx, books.RetrieveBookOptions{ID: &bookID}); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.logService.MarkFinished(ctx, bookID, time.Now(), MarkFinishedOptions{
		Rating: params.Rating,
		Review: params.Review,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, entry))
}

func (h *handler) deleteEntry(c echo.Context) error {
	ctx := c.Request().Context()
	bookID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	err = h.logService.DeleteEntry(ctx, bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
