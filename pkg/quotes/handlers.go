package quotes

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/leaflog/leaflog/pkg/errcodes"
	"github.com/pkg/errors"
)

type handler struct {
	quoteService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListQuotesQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	quotes, err := h.quoteService.ListQuotes(ctx, ListQuotesOptions{
		Limit:    &params.Limit,
		Offset:   &params.Offset,
		BookID:   params.BookID,
		Favorite: params.Favorite,
		Search:   params.Search,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	response := map[string]any{
		"quotes": quotes,
	}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateQuotePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	opts := CreateQuoteOptions{
		BookID:     params.BookID,
		QuoteText:  params.QuoteText,
		PageNumber: params.PageNumber,
		Chapter:    params.Chapter,
		Tags:       params.Tags,
		Notes:      params.Notes,
	}
	if params.IsFavorite != nil {
		opts.IsFavorite = *params.IsFavorite
	}

	quote, err := h.quoteService.CreateQuote(ctx, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, quote))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Quote")
	}

	quote, err := h.quoteService.RetrieveQuote(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, quote))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Quote")
	}

	params := UpdateQuotePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	quote, err := h.quoteService.RetrieveQuote(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	opts := UpdateQuoteOptions{}
	if params.QuoteText != nil {
		quote.QuoteText = *params.QuoteText
		opts.Columns = append(opts.Columns, "quote_text")
	}
	if params.PageNumber != nil {
		quote.PageNumber = params.PageNumber
		opts.Columns = append(opts.Columns, "page_number")
	}
	if params.Chapter != nil {
		quote.Chapter = params.Chapter
		opts.Columns = append(opts.Columns, "chapter")
	}
	if params.Tags != nil {
		quote.Tags = params.Tags
		opts.Columns = append(opts.Columns, "tags")
	}
	if params.IsFavorite != nil {
		quote.IsFavorite = *params.IsFavorite
		opts.Columns = append(opts.Columns, "is_favorite")
	}
	if params.Notes != nil {
		quote.Notes = params.Notes
		opts.Columns = append(opts.Columns, "notes")
	}

	err = h.quoteService.UpdateQuote(ctx, quote, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, quote))
}

func (h *handler) deleteQuote(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Quote")
	}

	err = h.quoteService.DeleteQuote(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *handler) favorite(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Quote")
	}

	quote, err := h.quoteService.ToggleFavorite(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, quote))
}

func (h *handler) stats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.quoteService.ComputeStats(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, stats))
}
