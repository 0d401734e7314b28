package sessions

import (
	"context"
	"database/sql"
	"time"

	"github.com/leaflog/leaflog/pkg/errcodes"
	"github.com/leaflog/leaflog/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

const dateLayout = "2006-01-02"

type CreateSessionOptions struct {
	BookID      int
	SessionDate string
	PagesRead   *int
	MinutesRead *int
	StartPage   *int
	EndPage     *int
	Notes       *string
}

// CreateSessionResult carries the created session plus whether it pushed the
// book over its page count.
type CreateSessionResult struct {
	Session       *models.ReadingSession `json:"session"`
	BookCompleted bool                   `json:"book_completed"`
}

type ListSessionsOptions struct {
	Limit  *int
	Offset *int
	BookID *int
}

type UpdateSessionOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CreateSession records a sitting and advances the book's reading log in the
// same transaction: the current page moves forward by the pages read, a
// want-to-read book flips to reading, the start date is set on first
// activity, and the log auto-finishes once the current page reaches the
// book's page count.
func (svc *Service) CreateSession(ctx context.Context, opts CreateSessionOptions) (*CreateSessionResult, error) {
	now := time.Now()
	session := &models.ReadingSession{
		CreatedAt:   now,
		UpdatedAt:   now,
		BookID:      opts.BookID,
		SessionDate: opts.SessionDate,
		PagesRead:   opts.PagesRead,
		MinutesRead: opts.MinutesRead,
		StartPage:   opts.StartPage,
		EndPage:     opts.EndPage,
		Notes:       opts.Notes,
	}
	result := &CreateSessionResult{Session: session}

	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		book := &models.Book{}
		err := tx.NewSelect().
			Model(book).
			Where("b.id = ?", opts.BookID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errcodes.NotFound("Book")
			}
			return errors.WithStack(err)
		}

		_, err = tx.NewInsert().
			Model(session).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		completed, err := advanceLog(ctx, tx, book, opts)
		if err != nil {
			return err
		}
		result.BookCompleted = completed
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (svc *Service) RetrieveSession(ctx context.Context, id int) (*models.ReadingSession, error) {
	session := &models.ReadingSession{}

	err := svc.db.
		NewSelect().
		Model(session).
		Relation("Book").
		Where("rs.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Reading session")
		}
		return nil, errors.WithStack(err)
	}

	return session, nil
}

func (svc *Service) ListSessions(ctx context.Context, opts ListSessionsOptions) ([]*models.ReadingSession, error) {
	var sessions []*models.ReadingSession

	q := svc.db.
		NewSelect().
		Model(&sessions).
		Relation("Book").
		OrderExpr("rs.session_date DESC, rs.id DESC")

	if opts.BookID != nil {
		q = q.Where("rs.book_id = ?", *opts.BookID)
	}
	if opts.Limit != nil {
		q = q.Limit(*opts.Limit)
	}
	if opts.Offset != nil {
		q = q.Offset(*opts.Offset)
	}

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return sessions, nil
}

// UpdateSession edits a session's own fields. It does not replay reading-log
// side effects; the log reflects activity as it was recorded.
func (svc *Service) UpdateSession(ctx context.Context, session *models.ReadingSession, opts UpdateSessionOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	session.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	_, err := svc.db.
		NewUpdate().
		Model(session).
		Column(columns...).
		WherePK().
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) DeleteSession(ctx context.Context, id int) error {
	result, err := svc.db.
		NewDelete().
		Model((*models.ReadingSession)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return errcodes.NotFound("Reading session")
	}
	return nil
}

// advanceLog applies the session's progression to the book's log entry,
// creating the entry if this is the book's first activity. Returns whether
// the book was auto-finished.
func advanceLog(ctx context.Context, tx bun.Tx, book *models.Book, opts CreateSessionOptions) (bool, error) {
	now := time.Now()

	entry := &models.ReadingLogEntry{}
	err := tx.NewSelect().
		Model(entry).
		Where("rl.book_id = ?", book.ID).
		Scan(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, errors.WithStack(err)
	}
	missing := errors.Is(err, sql.ErrNoRows)

	pagesRead := 0
	if opts.PagesRead != nil {
		pagesRead = *opts.PagesRead
	}
	currentPage := pagesRead
	if !missing {
		currentPage += entry.CurrentPage
	}
	totalPages := 0
	if book.Pages != nil {
		totalPages = *book.Pages
	}
	completed := totalPages > 0 && currentPage >= totalPages
	if completed {
		currentPage = totalPages
	}

	if missing {
		entry = &models.ReadingLogEntry{
			CreatedAt:   now,
			UpdatedAt:   now,
			BookID:      book.ID,
			Status:      models.StatusReading,
			CurrentPage: currentPage,
			DateStarted: &opts.SessionDate,
		}
		if completed {
			entry.Status = models.StatusFinished
			entry.DateFinished = &opts.SessionDate
			entry.ReadingDays = readingDays(entry.DateStarted, opts.SessionDate)
		}

		_, err = tx.NewInsert().Model(entry).Exec(ctx)
		return completed, errors.WithStack(err)
	}

	entry.CurrentPage = currentPage
	if entry.DateStarted == nil {
		entry.DateStarted = &opts.SessionDate
	}
	switch {
	case completed:
		entry.Status = models.StatusFinished
		entry.DateFinished = &opts.SessionDate
		entry.ReadingDays = readingDays(entry.DateStarted, opts.SessionDate)
	case entry.Status == models.StatusWantToRead:
		entry.Status = models.StatusReading
	}
	entry.UpdatedAt = now

	_, err = tx.NewUpdate().Model(entry).WherePK().Exec(ctx)
	return completed, errors.WithStack(err)
}

// readingDays computes the day span between the start date and the finish
// date, counting same-day finishes as one day.
func readingDays(started *string, finished string) *int {
	if started == nil {
		return nil
	}
	start, err := time.ParseInLocation(dateLayout, *started, time.UTC)
	if err != nil {
		return nil
	}
	end, err := time.ParseInLocation(dateLayout, finished, time.UTC)
	if err != nil {
		return nil
	}

	days := int(end.Sub(start) / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	return &days
}
