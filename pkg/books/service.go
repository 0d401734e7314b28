package books

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/leaflog/leaflog/pkg/errcodes"
	"github.com/leaflog/leaflog/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type RetrieveBookOptions struct {
	ID   *int
	ISBN *string
}

type ListBooksOptions struct {
	Limit  *int
	Offset *int
	Status *models.ReadingStatus
	Search *string

	includeTotal bool
}

type CreateBookOptions struct {
	Title   string
	ISBN    *string
	Year    *int
	Pages   *int
	AddedAt *time.Time
	Authors []string
	Genres  []string
}

type UpdateBookOptions struct {
	Columns []string
	Authors []string
	Genres  []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CreateBook inserts a book and links its authors and genres in one
// transaction. Author and genre names are matched case-insensitively and
// created when missing.
func (svc *Service) CreateBook(ctx context.Context, opts CreateBookOptions) (*models.Book, error) {
	now := time.Now()
	book := &models.Book{
		CreatedAt: now,
		UpdatedAt: now,
		AddedAt:   now,
		Title:     opts.Title,
		ISBN:      opts.ISBN,
		Year:      opts.Year,
		Pages:     opts.Pages,
	}
	if opts.AddedAt != nil {
		book.AddedAt = *opts.AddedAt
	}

	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(book).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		if err := linkAuthors(ctx, tx, book.ID, opts.Authors); err != nil {
			return err
		}
		return linkGenres(ctx, tx, book.ID, opts.Genres)
	})
	if err != nil {
		return nil, err
	}

	return svc.RetrieveBook(ctx, RetrieveBookOptions{ID: &book.ID})
}

func (svc *Service) RetrieveBook(ctx context.Context, opts RetrieveBookOptions) (*models.Book, error) {
	book := &models.Book{}

	q := svc.db.
		NewSelect().
		Model(book).
		Relation("Authors").
		Relation("Genres").
		Relation("ReadingLog").
		Relation("Info")

	if opts.ID != nil {
		q = q.Where("b.id = ?", *opts.ID)
	}
	if opts.ISBN != nil {
		q = q.Where("b.isbn = ?", *opts.ISBN)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book")
		}
		return nil, errors.WithStack(err)
	}

	return book, nil
}

func (svc *Service) ListBooks(ctx context.Context, opts ListBooksOptions) ([]*models.Book, error) {
	books, _, err := svc.listBooksWithTotal(ctx, opts)
	return books, err
}

func (svc *Service) ListBooksWithTotal(ctx context.Context, opts ListBooksOptions) ([]*models.Book, int, error) {
	opts.includeTotal = true
	return svc.listBooksWithTotal(ctx, opts)
}

func (svc *Service) listBooksWithTotal(ctx context.Context, opts ListBooksOptions) ([]*models.Book, int, error) {
	var books []*models.Book
	var total int
	var err error

	q := svc.db.
		NewSelect().
		Model(&books).
		Relation("Authors").
		Relation("Genres").
		Relation("ReadingLog").
		Relation("Info").
		Order("b.title ASC")

	if opts.Status != nil {
		q = q.Join("JOIN reading_log AS rl ON rl.book_id = b.id").
			Where("rl.status = ?", *opts.Status)
	}
	if opts.Search != nil && *opts.Search != "" {
		q = q.Where("b.title LIKE ?", "%"+strings.TrimSpace(*opts.Search)+"%")
	}
	if opts.Limit != nil {
		q = q.Limit(*opts.Limit)
	}
	if opts.Offset != nil {
		q = q.Offset(*opts.Offset)
	}

	if opts.includeTotal {
		total, err = q.ScanAndCount(ctx)
	} else {
		err = q.Scan(ctx)
	}
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return books, total, nil
}

// UpdateBook updates the given columns and, when author or genre names are
// provided, replaces the corresponding links.
func (svc *Service) UpdateBook(ctx context.Context, book *models.Book, opts UpdateBookOptions) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if len(opts.Columns) > 0 {
			book.UpdatedAt = time.Now()
			columns := append(opts.Columns, "updated_at")

			_, err := tx.NewUpdate().
				Model(book).
				Column(columns...).
				WherePK().
				Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
		}

		if opts.Authors != nil {
			_, err := tx.NewDelete().
				Model((*models.BookAuthor)(nil)).
				Where("book_id = ?", book.ID).
				Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
			if err := linkAuthors(ctx, tx, book.ID, opts.Authors); err != nil {
				return err
			}
		}

		if opts.Genres != nil {
			_, err := tx.NewDelete().
				Model((*models.BookGenre)(nil)).
				Where("book_id = ?", book.ID).
				Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
			if err := linkGenres(ctx, tx, book.ID, opts.Genres); err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteBook deletes a book along with its links, log entry, sessions, and
// external info.
func (svc *Service) DeleteBook(ctx context.Context, bookID int) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		for _, model := range []any{
			(*models.BookAuthor)(nil),
			(*models.BookGenre)(nil),
			(*models.ReadingLogEntry)(nil),
			(*models.ReadingSession)(nil),
			(*models.BookInfo)(nil),
		} {
			_, err := tx.NewDelete().
				Model(model).
				Where("book_id = ?", bookID).
				Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
		}

		result, err := tx.NewDelete().
			Model((*models.Book)(nil)).
			Where("id = ?", bookID).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return errcodes.NotFound("Book")
		}
		return nil
	})
}

func linkAuthors(ctx context.Context, tx bun.Tx, bookID int, names []string) error {
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		author := &models.Author{}
		err := tx.NewSelect().
			Model(author).
			Where("LOWER(a.name) = LOWER(?)", name).
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			now := time.Now()
			author = &models.Author{CreatedAt: now, UpdatedAt: now, Name: name}
			_, err = tx.NewInsert().Model(author).Returning("*").Exec(ctx)
		}
		if err != nil {
			return errors.WithStack(err)
		}

		link := &models.BookAuthor{BookID: bookID, AuthorID: author.ID, AuthorOrder: i + 1}
		_, err = tx.NewInsert().Model(link).Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func linkGenres(ctx context.Context, tx bun.Tx, bookID int, names []string) error {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		genre := &models.Genre{}
		err := tx.NewSelect().
			Model(genre).
			Where("LOWER(g.name) = LOWER(?)", name).
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			now := time.Now()
			genre = &models.Genre{CreatedAt: now, UpdatedAt: now, Name: name}
			_, err = tx.NewInsert().Model(genre).Returning("*").Exec(ctx)
		}
		if err != nil {
			return errors.WithStack(err)
		}

		link := &models.BookGenre{BookID: bookID, GenreID: genre.ID}
		_, err = tx.NewInsert().Model(link).Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
