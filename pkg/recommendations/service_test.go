package recommendations

import (
	"context"
	"database/sql"
	"testing"
	"time"

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

func createBookWithStatus(t *testing.T, db *bun.DB, title string, status models.ReadingStatus, addedAt time.Time) *models.Book {
	t.Helper()
	ctx := context.Background()

	book := &models.Book{
		Title:   title,
		AddedAt: addedAt,
	}
	_, err := db.NewInsert().Model(book).Exec(ctx)
	require.NoError(t, err)

	if status != "" {
		entry := &models.ReadingLogEntry{
			BookID: book.ID,
			Status: status,
		}
		_, err = db.NewInsert().Model(entry).Exec(ctx)
		require.NoError(t, err)
	}

	return book
}

func TestService_ComputeRecommendations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("excludes finished, abandoned, and on-hold books", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		createBookWithStatus(t, db, "Finished", models.StatusFinished, now)
		createBookWithStatus(t, db, "Abandoned", models.StatusDidNotFinish, now)
		createBookWithStatus(t, db, "On Hold", models.StatusOnHold, now)
		wanted := createBookWithStatus(t, db, "Wanted", models.StatusWantToRead, now)
		unlogged := createBookWithStatus(t, db, "Unlogged", "", now)

		entries, err := svc.ComputeRecommendations(ctx, now)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		titles := []string{entries[0].Book.Title, entries[1].Book.Title}
		assert.Contains(t, titles, wanted.Title)
		assert.Contains(t, titles, unlogged.Title)
	})

	t.Run("in-progress books rank above unread ones", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		createBookWithStatus(t, db, "Unread", models.StatusWantToRead, now)
		createBookWithStatus(t, db, "In Progress", models.StatusReading, now)

		entries, err := svc.ComputeRecommendations(ctx, now)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "In Progress", entries[0].Book.Title)
		assert.GreaterOrEqual(t, entries[0].Score-entries[1].Score, 99.0)
	})

	t.Run("external rating info feeds the score", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		plain := createBookWithStatus(t, db, "Plain", models.StatusWantToRead, now)
		rated := createBookWithStatus(t, db, "Rated", models.StatusWantToRead, now)
		_ = plain

		rating := 4.5
		count := 2000
		info := &models.BookInfo{
			BookID:        rated.ID,
			AverageRating: &rating,
			RatingsCount:  &count,
		}
		_, err := db.NewInsert().Model(info).Exec(ctx)
		require.NoError(t, err)

		entries, err := svc.ComputeRecommendations(ctx, now)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Rated", entries[0].Book.Title)
		assert.InDelta(t, 65, entries[0].Score, 0.001)
	})

	t.Run("query failure surfaces as an error", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		_, err := db.Exec("DROP TABLE books")
		require.NoError(t, err)

		entries, err := svc.ComputeRecommendations(ctx, now)
		require.Error(t, err)
		assert.Nil(t, entries)
	})

	t.Run("returns at most ten entries", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		for i := 0; i < 14; i++ {
			createBookWithStatus(t, db, "Backlog", models.StatusWantToRead, now)
		}

		entries, err := svc.ComputeRecommendations(ctx, now)
		require.NoError(t, err)
		assert.Len(t, entries, 10)
	})
}
