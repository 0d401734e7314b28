package recaps

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/leaflog/leaflog/pkg/errcodes"
	"github.com/leaflog/leaflog/pkg/migrations"
	"github.com/leaflog/leaflog/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func setupTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	db.RegisterModel((*models.BookAuthor)(nil), (*models.BookGenre)(nil))

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

type finishOptions struct {
	pages       *int
	rating      *int
	readingDays *int
	authors     []string
	genres      []string
}

func finishBook(t *testing.T, db *bun.DB, title, dateFinished string, opts finishOptions) *models.Book {
	t.Helper()
	ctx := context.Background()

	book := &models.Book{
		Title:   title,
		Pages:   opts.pages,
		AddedAt: time.Now(),
	}
	_, err := db.NewInsert().Model(book).Exec(ctx)
	require.NoError(t, err)

	entry := &models.ReadingLogEntry{
		BookID:       book.ID,
		Status:       models.StatusFinished,
		Rating:       opts.rating,
		DateFinished: &dateFinished,
		ReadingDays:  opts.readingDays,
	}
	_, err = db.NewInsert().Model(entry).Exec(ctx)
	require.NoError(t, err)

	for i, name := range opts.authors {
		author := &models.Author{}
		err = db.NewSelect().Model(author).Where("LOWER(name) = LOWER(?)", name).Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			author = &models.Author{Name: name}
			_, err = db.NewInsert().Model(author).Exec(ctx)
		}
		require.NoError(t, err)

		link := &models.BookAuthor{BookID: book.ID, AuthorID: author.ID, AuthorOrder: i}
		_, err = db.NewInsert().Model(link).Exec(ctx)
		require.NoError(t, err)
	}

	for _, name := range opts.genres {
		genre := &models.Genre{}
		err = db.NewSelect().Model(genre).Where("LOWER(name) = LOWER(?)", name).Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			genre = &models.Genre{Name: name}
			_, err = db.NewInsert().Model(genre).Exec(ctx)
		}
		require.NoError(t, err)

		link := &models.BookGenre{BookID: book.ID, GenreID: genre.ID}
		_, err = db.NewInsert().Model(link).Exec(ctx)
		require.NoError(t, err)
	}

	return book
}

func TestService_ComputeMonthlyRecap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("rejects out-of-range month", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		_, err := svc.ComputeMonthlyRecap(ctx, 2024, 13)
		require.Error(t, err)
		cerr := &errcodes.Error{}
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 422, cerr.HTTPCode)
	})

	t.Run("empty month produces a recap of zeros and nils", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		recap, err := svc.ComputeMonthlyRecap(ctx, 2024, 3)
		require.NoError(t, err)
		assert.Equal(t, "March", recap.Month)
		assert.Equal(t, 0, recap.BooksFinished)
		assert.Nil(t, recap.TopGenre)
		assert.Nil(t, recap.TopRatedBook)
		assert.Nil(t, recap.FastestBook)
		assert.Nil(t, recap.FavoriteAuthor)
	})

	t.Run("only finishes inside the month count", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		finishBook(t, db, "In Month", "2024-03-15", finishOptions{pages: intPtr(200)})
		finishBook(t, db, "Previous Month", "2024-02-29", finishOptions{pages: intPtr(100)})
		finishBook(t, db, "Next Month", "2024-04-01", finishOptions{pages: intPtr(100)})

		recap, err := svc.ComputeMonthlyRecap(ctx, 2024, 3)
		require.NoError(t, err)
		assert.Equal(t, 1, recap.BooksFinished)
		assert.Equal(t, 200, recap.PagesRead)
	})

	t.Run("december range rolls into the next year", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		finishBook(t, db, "Year End", "2024-12-31", finishOptions{pages: intPtr(150)})
		finishBook(t, db, "New Year", "2025-01-01", finishOptions{pages: intPtr(150)})

		recap, err := svc.ComputeMonthlyRecap(ctx, 2024, 12)
		require.NoError(t, err)
		assert.Equal(t, "December", recap.Month)
		assert.Equal(t, 1, recap.BooksFinished)
	})

	t.Run("full recap with every field populated", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		finishBook(t, db, "The Quick One", "2024-03-05", finishOptions{
			pages:       intPtr(120),
			rating:      intPtr(4),
			readingDays: intPtr(2),
			authors:     []string{"Alice Munro"},
			genres:      []string{"Short Stories"},
		})
		finishBook(t, db, "The Great One", "2024-03-20", finishOptions{
			pages:       intPtr(400),
			rating:      intPtr(5),
			readingDays: intPtr(12),
			authors:     []string{"Alice Munro", "Someone Else"},
			genres:      []string{"Short Stories", "Fiction"},
		})

		recap, err := svc.ComputeMonthlyRecap(ctx, 2024, 3)
		require.NoError(t, err)

		assert.Equal(t, 2, recap.BooksFinished)
		assert.Equal(t, 520, recap.PagesRead)
		assert.Equal(t, 14, recap.TotalReadingDays)

		require.NotNil(t, recap.TopGenre)
		assert.Equal(t, "Short Stories", *recap.TopGenre)

		require.NotNil(t, recap.FavoriteAuthor)
		assert.Equal(t, "Alice Munro", *recap.FavoriteAuthor)

		require.NotNil(t, recap.TopRatedBook)
		assert.Equal(t, "The Great One", recap.TopRatedBook.Title)
		assert.Equal(t, 5, recap.TopRatedBook.Rating)
		assert.Contains(t, recap.TopRatedBook.Authors, "Alice Munro")

		require.NotNil(t, recap.FastestBook)
		assert.Equal(t, "The Quick One", recap.FastestBook.Title)
		assert.Equal(t, 2, recap.FastestBook.Days)
	})

	t.Run("author-less top rated book shows Unknown", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		finishBook(t, db, "Anonymous Work", "2024-03-12", finishOptions{
			pages:  intPtr(180),
			rating: intPtr(4),
		})

		recap, err := svc.ComputeMonthlyRecap(ctx, 2024, 3)
		require.NoError(t, err)
		require.NotNil(t, recap.TopRatedBook)
		assert.Equal(t, "Unknown", recap.TopRatedBook.Authors)
	})

	t.Run("query failure surfaces as an error", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		_, err := db.Exec("DROP TABLE reading_log")
		require.NoError(t, err)

		recap, err := svc.ComputeMonthlyRecap(ctx, 2024, 3)
		require.Error(t, err)
		assert.Nil(t, recap)
	})

	t.Run("missing signals stay independently nil", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		finishBook(t, db, "Bare", "2024-03-10", finishOptions{
			pages:   intPtr(300),
			genres:  []string{"Memoir"},
			authors: nil,
		})

		recap, err := svc.ComputeMonthlyRecap(ctx, 2024, 3)
		require.NoError(t, err)
		require.NotNil(t, recap.TopGenre)
		assert.Equal(t, "Memoir", *recap.TopGenre)
		assert.Nil(t, recap.TopRatedBook)
		assert.Nil(t, recap.FastestBook)
		assert.Nil(t, recap.FavoriteAuthor)
	})
}
