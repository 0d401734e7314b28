package readinglog

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

type UpsertEntryOptions struct {
	Status      *models.ReadingStatus
	CurrentPage *int
	Rating      *int
	Review      *string
	DateStarted *string
}

type MarkFinishedOptions struct {
	Rating *int
	Review *string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// RetrieveEntry returns the log entry for a book, or a not-found error when
// the book has never been logged.
func (svc *Service) RetrieveEntry(ctx context.Context, bookID int) (*models.ReadingLogEntry, error) {
	entry := &models.ReadingLogEntry{}

	err := svc.db.
		NewSelect().
		Model(entry).
		Where("rl.book_id = ?", bookID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Reading log entry")
		}
		return nil, errors.WithStack(err)
	}

	return entry, nil
}

// UpsertEntry creates or updates the single log entry for a book. Only the
// fields present in opts are written.
func (svc *Service) UpsertEntry(ctx context.Context, bookID int, opts UpsertEntryOptions) (*models.ReadingLogEntry, error) {
	now := time.Now()

	entry, err := svc.RetrieveEntry(ctx, bookID)
	if errors.Is(err, errcodes.NotFound("Reading log entry")) {
		entry = &models.ReadingLogEntry{
			CreatedAt: now,
			UpdatedAt: now,
			BookID:    bookID,
			Status:    models.StatusWantToRead,
		}
		applyOptions(entry, opts)

		_, err = svc.db.
			NewInsert().
			Model(entry).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return entry, nil
	}
	if err != nil {
		return nil, err
	}

	applyOptions(entry, opts)
	entry.UpdatedAt = now

	_, err = svc.db.
		NewUpdate().
		Model(entry).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return entry, nil
}

// MarkFinished flips a book's entry to finished as of today, records an
// optional rating and review, and derives the reading-day count from the
// start date. Books finished the day they were started count as one day.
func (svc *Service) MarkFinished(ctx context.Context, bookID int, today time.Time, opts MarkFinishedOptions) (*models.ReadingLogEntry, error) {
	finished := today.UTC().Format(dateLayout)

	entry, err := svc.UpsertEntry(ctx, bookID, UpsertEntryOptions{})
	if err != nil {
		return nil, err
	}

	entry.Status = models.StatusFinished
	entry.DateFinished = &finished
	if opts.Rating != nil {
		entry.Rating = opts.Rating
	}
	if opts.Review != nil {
		entry.Review = opts.Review
	}
	if days := readingDays(entry.DateStarted, finished); days != nil {
		entry.ReadingDays = days
	}
	entry.UpdatedAt = time.Now()

	_, err = svc.db.
		NewUpdate().
		Model(entry).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return entry, nil
}

// DeleteEntry removes a book's log entry.
func (svc *Service) DeleteEntry(ctx context.Context, bookID int) error {
	result, err := svc.db.
		NewDelete().
		Model((*models.ReadingLogEntry)(nil)).
		Where("book_id = ?", bookID).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return errcodes.NotFound("Reading log entry")
	}
	return nil
}

func applyOptions(entry *models.ReadingLogEntry, opts UpsertEntryOptions) {
	if opts.Status != nil {
		entry.Status = *opts.Status
	}
	if opts.CurrentPage != nil {
		entry.CurrentPage = *opts.CurrentPage
	}
	if opts.Rating != nil {
		entry.Rating = opts.Rating
	}
	if opts.Review != nil {
		entry.Review = opts.Review
	}
	if opts.DateStarted != nil {
		entry.DateStarted = opts.DateStarted
	}
}

// readingDays computes the inclusive-start day span between two dates. A
// finish on or before the start date still counts as one day. Returns nil
// when the start date is missing or unparseable.
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
