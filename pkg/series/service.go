package series

import (
	"context"
	"database/sql"
	"time"

	"github.com/leaflog/leaflog/pkg/errcodes"
	"github.com/leaflog/leaflog/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type CreateSeriesOptions struct {
	Title       string
	Description *string
	TotalBooks  *int
	Status      *models.SeriesStatus
}

type ListSeriesOptions struct {
	Limit  *int
	Offset *int
}

type UpdateSeriesOptions struct {
	Columns []string
}

type AddBookOptions struct {
	Position    int
	IsSideStory bool
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateSeries(ctx context.Context, opts CreateSeriesOptions) (*models.Series, error) {
	now := time.Now()
	series := &models.Series{
		CreatedAt:   now,
		UpdatedAt:   now,
		Title:       opts.Title,
		Description: opts.Description,
		TotalBooks:  opts.TotalBooks,
		Status:      models.SeriesUnknown,
	}
	if opts.Status != nil {
		series.Status = *opts.Status
	}

	_, err := svc.db.
		NewInsert().
		Model(series).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return series, nil
}

func (svc *Service) RetrieveSeries(ctx context.Context, id int) (*models.Series, error) {
	series := &models.Series{}

	err := svc.db.
		NewSelect().
		Model(series).
		Where("sr.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Series")
		}
		return nil, errors.WithStack(err)
	}

	return series, nil
}

// ListSeries returns series newest first with their library book counts.
func (svc *Service) ListSeries(ctx context.Context, opts ListSeriesOptions) ([]*models.Series, error) {
	var series []*models.Series

	q := svc.db.
		NewSelect().
		Model(&series).
		ColumnExpr("sr.*").
		ColumnExpr("COUNT(sb.book_id) AS book_count").
		Join("LEFT JOIN series_books AS sb ON sb.series_id = sr.id").
		GroupExpr("sr.id").
		OrderExpr("sr.created_at DESC, sr.id DESC")

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

	return series, nil
}

func (svc *Service) UpdateSeries(ctx context.Context, series *models.Series, opts UpdateSeriesOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	series.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	_, err := svc.db.
		NewUpdate().
		Model(series).
		Column(columns...).
		WherePK().
		Exec(ctx)
	return errors.WithStack(err)
}

// DeleteSeries removes a series and its book memberships. The books themselves
// are untouched.
func (svc *Service) DeleteSeries(ctx context.Context, id int) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.SeriesBook)(nil)).
			Where("series_id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		result, err := tx.NewDelete().
			Model((*models.Series)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return errcodes.NotFound("Series")
		}
		return nil
	})
}

// AddBook places a book into a series at the given position. A book can only
// appear once per series.
func (svc *Service) AddBook(ctx context.Context, seriesID, bookID int, opts AddBookOptions) (*models.SeriesBook, error) {
	if _, err := svc.RetrieveSeries(ctx, seriesID); err != nil {
		return nil, err
	}

	exists, err := svc.db.
		NewSelect().
		Model((*models.Book)(nil)).
		Where("b.id = ?", bookID).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !exists {
		return nil, errcodes.NotFound("Book")
	}

	member, err := svc.db.
		NewSelect().
		Model((*models.SeriesBook)(nil)).
		Where("sb.series_id = ? AND sb.book_id = ?", seriesID, bookID).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if member {
		return nil, errcodes.Conflict("Book is already in this series.")
	}

	entry := &models.SeriesBook{
		SeriesID:    seriesID,
		BookID:      bookID,
		Position:    opts.Position,
		IsSideStory: opts.IsSideStory,
	}
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

func (svc *Service) RemoveBook(ctx context.Context, seriesID, bookID int) error {
	result, err := svc.db.
		NewDelete().
		Model((*models.SeriesBook)(nil)).
		Where("series_id = ? AND book_id = ?", seriesID, bookID).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return errcodes.NotFound("Series book")
	}
	return nil
}

// GetBooks returns the series entries in position order with their books.
func (svc *Service) GetBooks(ctx context.Context, seriesID int) ([]*models.SeriesBook, error) {
	var entries []*models.SeriesBook

	err := svc.db.
		NewSelect().
		Model(&entries).
		Relation("Book").
		Relation("Book.Authors").
		Where("sb.series_id = ?", seriesID).
		OrderExpr("sb.position ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return entries, nil
}
