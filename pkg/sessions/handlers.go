package sessions

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/leaflog/leaflog/pkg/errcodes"
	"github.com/pkg/errors"
)

type handler struct {
	sessionService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListSessionsQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	sessions, err := h.sessionService.ListSessions(ctx, ListSessionsOptions{
		Limit:  &params.Limit,
		Offset: &params.Offset,
		BookID: params.BookID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	response := map[string]any{
		"sessions": sessions,
	}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateSessionPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.sessionService.CreateSession(ctx, CreateSessionOptions{
		BookID:      params.BookID,
		SessionDate: params.SessionDate,
		PagesRead:   params.PagesRead,
		MinutesRead: params.MinutesRead,
		StartPage:   params.StartPage,
		EndPage:     params.EndPage,
		Notes:       params.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, result))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Reading session")
	}

	params := UpdateSessionPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.sessionService.RetrieveSession(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	opts := UpdateSessionOptions{}
	if params.SessionDate != nil {
		session.SessionDate = *params.SessionDate
		opts.Columns = append(opts.Columns, "session_date")
	}
	if params.PagesRead != nil {
		session.PagesRead = params.PagesRead
		opts.Columns = append(opts.Columns, "pages_read")
	}
	if params.MinutesRead != nil {
		session.MinutesRead = params.MinutesRead
		opts.Columns = append(opts.Columns, "minutes_read")
	}
	if params.StartPage != nil {
		session.StartPage = params.StartPage
		opts.Columns = append(opts.Columns, "start_page")
	}
	if params.EndPage != nil {
		session.EndPage = params.EndPage
		opts.Columns = append(opts.Columns, "end_page")
	}
	if params.Notes != nil {
		session.Notes = params.Notes
		opts.Columns = append(opts.Columns, "notes")
	}

	err = h.sessionService.UpdateSession(ctx, session, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, session))
}

func (h *handler) deleteSession(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Reading session")
	}

	err = h.sessionService.DeleteSession(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
