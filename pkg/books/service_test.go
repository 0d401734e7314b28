package books

import (
	"context"
	"database/sql"
	"testing"

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

func intPtr(i int) *int {
	return &i
}

func TestService_CreateBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates a book with author and genre links", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		book, err := svc.CreateBook(ctx, CreateBookOptions{
			Title:   "The Left Hand of Darkness",
			Pages:   intPtr(304),
			Authors: []string{"Ursula K. Le Guin"},
			Genres:  []string{"Science Fiction", "Classic"},
		})
		require.NoError(t, err)
		assert.NotZero(t, book.ID)
		require.Len(t, book.Authors, 1)
		assert.Equal(t, "Ursula K. Le Guin", book.Authors[0].Name)
		assert.Len(t, book.Genres, 2)
	})

	t.Run("reuses existing authors case-insensitively", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		first, err := svc.CreateBook(ctx, CreateBookOptions{
			Title:   "Book One",
			Authors: []string{"Octavia Butler"},
		})
		require.NoError(t, err)

		second, err := svc.CreateBook(ctx, CreateBookOptions{
			Title:   "Book Two",
			Authors: []string{"octavia butler"},
		})
		require.NoError(t, err)

		require.Len(t, first.Authors, 1)
		require.Len(t, second.Authors, 1)
		assert.Equal(t, first.Authors[0].ID, second.Authors[0].ID)
	})
}

func TestService_ListBooks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDB(t)
	svc := NewService(db)

	kindred, err := svc.CreateBook(ctx, CreateBookOptions{Title: "Kindred"})
	require.NoError(t, err)
	_, err = svc.CreateBook(ctx, CreateBookOptions{Title: "Parable of the Sower"})
	require.NoError(t, err)

	status := models.StatusReading
	entry := &models.ReadingLogEntry{BookID: kindred.ID, Status: status}
	_, err = db.NewInsert().Model(entry).Exec(ctx)
	require.NoError(t, err)

	t.Run("lists all with total", func(t *testing.T) {
		books, total, err := svc.ListBooksWithTotal(ctx, ListBooksOptions{})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, books, 2)
	})

	t.Run("filters by status", func(t *testing.T) {
		books, err := svc.ListBooks(ctx, ListBooksOptions{Status: &status})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Kindred", books[0].Title)
	})

	t.Run("searches by title", func(t *testing.T) {
		search := "parable"
		books, err := svc.ListBooks(ctx, ListBooksOptions{Search: &search})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Parable of the Sower", books[0].Title)
	})
}

func TestService_UpdateBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDB(t)
	svc := NewService(db)

	book, err := svc.CreateBook(ctx, CreateBookOptions{
		Title:   "Draft Title",
		Genres:  []string{"Fantasy"},
		Authors: []string{"Somebody"},
	})
	require.NoError(t, err)

	book.Title = "Final Title"
	err = svc.UpdateBook(ctx, book, UpdateBookOptions{
		Columns: []string{"title"},
		Genres:  []string{"Horror"},
	})
	require.NoError(t, err)

	updated, err := svc.RetrieveBook(ctx, RetrieveBookOptions{ID: &book.ID})
	require.NoError(t, err)
	assert.Equal(t, "Final Title", updated.Title)
	require.Len(t, updated.Genres, 1)
	assert.Equal(t, "Horror", updated.Genres[0].Name)
	// Authors untouched when not provided
	require.Len(t, updated.Authors, 1)
}

func TestService_DeleteBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDB(t)
	svc := NewService(db)

	book, err := svc.CreateBook(ctx, CreateBookOptions{
		Title:   "Doomed",
		Authors: []string{"Anon"},
	})
	require.NoError(t, err)

	session := &models.ReadingSession{BookID: book.ID, SessionDate: "2024-03-01"}
	_, err = db.NewInsert().Model(session).Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBook(ctx, book.ID))

	_, err = svc.RetrieveBook(ctx, RetrieveBookOptions{ID: &book.ID})
	assert.ErrorIs(t, err, errcodes.NotFound("Book"))

	count, err := db.NewSelect().
		Model((*models.ReadingSession)(nil)).
		Where("book_id = ?", book.ID).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	err = svc.DeleteBook(ctx, book.ID)
	assert.ErrorIs(t, err, errcodes.NotFound("Book"))
}
