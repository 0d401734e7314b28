package quotes

import (
	"context"
	"database/sql"
	"time"

	"github.com/leaflog/leaflog/pkg/errcodes"
	"github.com/leaflog/leaflog/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type CreateQuoteOptions struct {
	BookID     int
	QuoteText  string
	PageNumber *int
	Chapter    *string
	Tags       []string
	IsFavorite bool
	Notes      *string
}

type ListQuotesOptions struct {
	Limit    *int
	Offset   *int
	BookID   *int
	Favorite *bool
	Search   *string
}

type UpdateQuoteOptions struct {
	Columns []string
}

// QuoteStats summarizes the quote collection as a whole.
type QuoteStats struct {
	TotalQuotes     int `bun:"total_quotes" json:"total_quotes"`
	FavoriteQuotes  int `bun:"favorite_quotes" json:"favorite_quotes"`
	BooksWithQuotes int `bun:"books_with_quotes" json:"books_with_quotes"`
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateQuote(ctx context.Context, opts CreateQuoteOptions) (*models.Quote, error) {
	exists, err := svc.db.
		NewSelect().
		Model((*models.Book)(nil)).
		Where("b.id = ?", opts.BookID).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !exists {
		return nil, errcodes.NotFound("Book")
	}

	now := time.Now()
	quote := &models.Quote{
		CreatedAt:  now,
		UpdatedAt:  now,
		BookID:     opts.BookID,
		QuoteText:  opts.QuoteText,
		PageNumber: opts.PageNumber,
		Chapter:    opts.Chapter,
		Tags:       opts.Tags,
		IsFavorite: opts.IsFavorite,
		Notes:      opts.Notes,
	}
	_, err = svc.db.
		NewInsert().
		Model(quote).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return quote, nil
}

func (svc *Service) RetrieveQuote(ctx context.Context, id int) (*models.Quote, error) {
	quote := &models.Quote{}

	err := svc.db.
		NewSelect().
		Model(quote).
		Relation("Book").
		Where("q.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Quote")
		}
		return nil, errors.WithStack(err)
	}

	return quote, nil
}

// ListQuotes returns quotes newest first. Quotes scoped to one book are
// ordered by page number instead so they read in book order.
func (svc *Service) ListQuotes(ctx context.Context, opts ListQuotesOptions) ([]*models.Quote, error) {
	var quotes []*models.Quote

	q := svc.db.
		NewSelect().
		Model(&quotes).
		Relation("Book").
		Relation("Book.Authors")

	if opts.BookID != nil {
		q = q.Where("q.book_id = ?", *opts.BookID).
			OrderExpr("q.page_number ASC, q.created_at DESC")
	} else {
		q = q.OrderExpr("q.created_at DESC, q.id DESC")
	}
	if opts.Favorite != nil {
		q = q.Where("q.is_favorite = ?", *opts.Favorite)
	}
	if opts.Search != nil && *opts.Search != "" {
		pattern := "%" + *opts.Search + "%"
		q = q.Where("(q.quote_text LIKE ? OR q.notes LIKE ? OR q.tags LIKE ?)", pattern, pattern, pattern)
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

	return quotes, nil
}

func (svc *Service) UpdateQuote(ctx context.Context, quote *models.Quote, opts UpdateQuoteOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	quote.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	_, err := svc.db.
		NewUpdate().
		Model(quote).
		Column(columns...).
		WherePK().
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) DeleteQuote(ctx context.Context, id int) error {
	result, err := svc.db.
		NewDelete().
		Model((*models.Quote)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return errcodes.NotFound("Quote")
	}
	return nil
}

// ToggleFavorite flips a quote's favorite flag and returns the updated quote.
func (svc *Service) ToggleFavorite(ctx context.Context, id int) (*models.Quote, error) {
	quote, err := svc.RetrieveQuote(ctx, id)
	if err != nil {
		return nil, err
	}

	quote.IsFavorite = !quote.IsFavorite
	quote.UpdatedAt = time.Now()

	_, err = svc.db.
		NewUpdate().
		Model(quote).
		Column("is_favorite", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return quote, nil
}

func (svc *Service) ComputeStats(ctx context.Context) (*QuoteStats, error) {
	stats := &QuoteStats{}

	err := svc.db.
		NewSelect().
		Model((*models.Quote)(nil)).
		ColumnExpr("COUNT(*) AS total_quotes").
		ColumnExpr("COALESCE(SUM(CASE WHEN q.is_favorite THEN 1 ELSE 0 END), 0) AS favorite_quotes").
		ColumnExpr("COUNT(DISTINCT q.book_id) AS books_with_quotes").
		Scan(ctx, stats)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return stats, nil
}
