package series

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/leaflog/leaflog/pkg/errcodes"
	"github.com/leaflog/leaflog/pkg/models"
	"github.com/pkg/errors"
)

type handler struct {
	seriesService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListSeriesQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	series, err := h.seriesService.ListSeries(ctx, ListSeriesOptions{
		Limit:  &params.Limit,
		Offset: &params.Offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	response := map[string]any{
		"series": series,
	}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateSeriesPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	opts := CreateSeriesOptions{
		Title:       params.Title,
		Description: params.Description,
		TotalBooks:  params.TotalBooks,
	}
	if params.Status != nil {
		status := models.SeriesStatus(*params.Status)
		opts.Status = &status
	}

	series, err := h.seriesService.CreateSeries(ctx, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, series))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Series")
	}

	series, err := h.seriesService.RetrieveSeries(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, series))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Series")
	}

	params := UpdateSeriesPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	series, err := h.seriesService.RetrieveSeries(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	opts := UpdateSeriesOptions{}
	if params.Title != nil {
		series.Title = *params.Title
		opts.Columns = append(opts.Columns, "title")
	}
	if params.Description != nil {
		series.Description = params.Description
		opts.Columns = append(opts.Columns, "description")
	}
	if params.TotalBooks != nil {
		series.TotalBooks = params.TotalBooks
		opts.Columns = append(opts.Columns, "total_books")
	}
	if params.Status != nil {
		series.Status = models.SeriesStatus(*params.Status)
		opts.Columns = append(opts.Columns, "status")
	}

	err = h.seriesService.UpdateSeries(ctx, series, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, series))
}

func (h *handler) deleteSeries(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Series")
	}

	err = h.seriesService.DeleteSeries(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *handler) books(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Series")
	}

	if _, err := h.seriesService.RetrieveSeries(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	entries, err := h.seriesService.GetBooks(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, entries))
}

func (h *handler) addBook(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Series")
	}

	params := AddSeriesBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	opts := AddBookOptions{Position: params.Position}
	if params.IsSideStory != nil {
		opts.IsSideStory = *params.IsSideStory
	}

	entry, err := h.seriesService.AddBook(ctx, id, params.BookID, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, entry))
}

func (h *handler) removeBook(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Series")
	}
	bookID, err := strconv.Atoi(c.Param("bookID"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	err = h.seriesService.RemoveBook(ctx, id, bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
