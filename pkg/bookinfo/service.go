package bookinfo

import (
	"context"
	"database/sql"
	"time"

	"github.com/leaflog/leaflog/pkg/errcodes"
	"github.com/leaflog/leaflog/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type UpsertInfoOptions struct {
	Description   *string
	CoverURL      *string
	AverageRating *float64
	RatingsCount  *int
	SourceURL     *string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) RetrieveInfo(ctx context.Context, bookID int) (*models.BookInfo, error) {
	info := &models.BookInfo{}

	err := svc.db.
		NewSelect().
		Model(info).
		Where("bi.book_id = ?", bookID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book info")
		}
		return nil, errors.WithStack(err)
	}

	return info, nil
}

// UpsertInfo writes externally sourced metadata for a book, overwriting the
// previous row if one exists. There is at most one info row per book.
func (svc *Service) UpsertInfo(ctx context.Context, bookID int, opts UpsertInfoOptions) (*models.BookInfo, error) {
	now := time.Now()
	info := &models.BookInfo{
		CreatedAt:     now,
		UpdatedAt:     now,
		BookID:        bookID,
		Description:   opts.Description,
		CoverURL:      opts.CoverURL,
		AverageRating: opts.AverageRating,
		RatingsCount:  opts.RatingsCount,
		SourceURL:     opts.SourceURL,
	}

	_, err := svc.db.
		NewInsert().
		Model(info).
		On("CONFLICT (book_id) DO UPDATE").
		Set("updated_at = EXCLUDED.updated_at").
		Set("description = EXCLUDED.description").
		Set("cover_url = EXCLUDED.cover_url").
		Set("average_rating = EXCLUDED.average_rating").
		Set("ratings_count = EXCLUDED.ratings_count").
		Set("source_url = EXCLUDED.source_url").
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return svc.RetrieveInfo(ctx, bookID)
}

func (svc *Service) DeleteInfo(ctx context.Context, bookID int) error {
	result, err := svc.db.
		NewDelete().
		Model((*models.BookInfo)(nil)).
		Where("book_id = ?", bookID).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return errcodes.NotFound("Book info")
	}
	return nil
}
