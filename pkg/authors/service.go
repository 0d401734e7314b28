package authors

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

type RetrieveAuthorOptions struct {
	ID   *int
	Name *string
}

type ListAuthorsOptions struct {
	Limit  *int
	Offset *int
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateAuthor(ctx context.Context, author *models.Author) error {
	now := time.Now()
	if author.CreatedAt.IsZero() {
		author.CreatedAt = now
	}
	author.UpdatedAt = author.CreatedAt

	_, err := svc.db.
		NewInsert().
		Model(author).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) RetrieveAuthor(ctx context.Context, opts RetrieveAuthorOptions) (*models.Author, error) {
	author := &models.Author{}

	q := svc.db.
		NewSelect().
		Model(author)

	if opts.ID != nil {
		q = q.Where("a.id = ?", *opts.ID)
	}
	if opts.Name != nil {
		// Case-insensitive match
		q = q.Where("LOWER(a.name) = LOWER(?)", *opts.Name)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Author")
		}
		return nil, errors.WithStack(err)
	}

	return author, nil
}

// FindOrCreateAuthor finds an existing author by case-insensitive name or
// creates a new one.
func (svc *Service) FindOrCreateAuthor(ctx context.Context, name string) (*models.Author, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("author name cannot be empty")
	}

	author, err := svc.RetrieveAuthor(ctx, RetrieveAuthorOptions{Name: &name})
	if err == nil {
		return author, nil
	}
	if !errors.Is(err, errcodes.NotFound("Author")) {
		return nil, err
	}

	author = &models.Author{Name: name}
	err = svc.CreateAuthor(ctx, author)
	if err != nil {
		return nil, err
	}
	return author, nil
}

// ListAuthors returns authors ordered by name along with their book counts.
func (svc *Service) ListAuthors(ctx context.Context, opts ListAuthorsOptions) ([]*models.Author, error) {
	var authors []*models.Author

	q := svc.db.
		NewSelect().
		Model(&authors).
		ColumnExpr("a.*").
		ColumnExpr("COUNT(DISTINCT ba.book_id) AS book_count").
		Join("LEFT JOIN book_authors AS ba ON ba.author_id = a.id").
		GroupExpr("a.id").
		Order("a.name ASC")

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

	return authors, nil
}

// GetBooks returns all books credited to this author.
func (svc *Service) GetBooks(ctx context.Context, authorID int) ([]*models.Book, error) {
	var books []*models.Book

	err := svc.db.
		NewSelect().
		Model(&books).
		Join("INNER JOIN book_authors AS ba ON ba.book_id = b.id").
		Where("ba.author_id = ?", authorID).
		Order("b.title ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return books, nil
}

// CleanupOrphanedAuthors deletes authors with no book associations.
func (svc *Service) CleanupOrphanedAuthors(ctx context.Context) (int, error) {
	result, err := svc.db.
		NewDelete().
		Model((*models.Author)(nil)).
		Where("id NOT IN (SELECT DISTINCT author_id FROM book_authors)").
		Exec(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	n, _ := result.RowsAffected()
	return int(n), nil
}
