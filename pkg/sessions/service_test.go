package sessions

import (
	"context"
	"database/sql"
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

func createTestBook(t *testing.T, db *bun.DB, title string, pages *int) *models.Book {
	t.Helper()
	book := &models.Book{
		Title:   title,
		Pages:   pages,
		AddedAt: time.Now(),
	}
	_, err := db.NewInsert().Model(book).Exec(context.Background())
	require.NoError(t, err)
	return book
}

func getLogEntry(t *testing.T, db *bun.DB, bookID int) *models.ReadingLogEntry {
	t.Helper()
	entry := &models.ReadingLogEntry{}
	err := db.NewSelect().Model(entry).Where("rl.book_id = ?", bookID).Scan(context.Background())
	require.NoError(t, err)
	return entry
}

func intPtr(i int) *int {
	return &i
}

func TestService_CreateSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)

		_, err := svc.CreateSession(ctx, CreateSessionOptions{
			BookID:      999,
			SessionDate: "2024-03-01",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errcodes.NotFound("Book"))
	})

	t.Run("first session creates a reading log entry", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)
		book := createTestBook(t, db, "Fresh Start", intPtr(300))

		result, err := svc.CreateSession(ctx, CreateSessionOptions{
			BookID:      book.ID,
			SessionDate: "2024-03-01",
			PagesRead:   intPtr(50),
			MinutesRead: intPtr(30),
		})
		require.NoError(t, err)
		assert.False(t, result.BookCompleted)
		assert.NotZero(t, result.Session.ID)

		entry := getLogEntry(t, db, book.ID)
		assert.Equal(t, models.StatusReading, entry.Status)
		assert.Equal(t, 50, entry.CurrentPage)
		require.NotNil(t, entry.DateStarted)
		assert.Equal(t, "2024-03-01", *entry.DateStarted)
		assert.Nil(t, entry.DateFinished)
	})

	t.Run("sessions accumulate the current page", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)
		book := createTestBook(t, db, "Accumulator", intPtr(300))

		_, err := svc.CreateSession(ctx, CreateSessionOptions{
			BookID:      book.ID,
			SessionDate: "2024-03-01",
			PagesRead:   intPtr(50),
		})
		require.NoError(t, err)
		_, err = svc.CreateSession(ctx, CreateSessionOptions{
			BookID:      book.ID,
			SessionDate: "2024-03-02",
			PagesRead:   intPtr(70),
		})
		require.NoError(t, err)

		entry := getLogEntry(t, db, book.ID)
		assert.Equal(t, 120, entry.CurrentPage)
		assert.Equal(t, models.StatusReading, entry.Status)
		require.NotNil(t, entry.DateStarted)
		assert.Equal(t, "2024-03-01", *entry.DateStarted)
	})

	t.Run("want_to_read flips to reading", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)
		book := createTestBook(t, db, "Wishlisted", intPtr(300))

		entry := &models.ReadingLogEntry{BookID: book.ID, Status: models.StatusWantToRead}
		_, err := db.NewInsert().Model(entry).Exec(ctx)
		require.NoError(t, err)

		_, err = svc.CreateSession(ctx, CreateSessionOptions{
			BookID:      book.ID,
			SessionDate: "2024-03-01",
			PagesRead:   intPtr(10),
		})
		require.NoError(t, err)

		updated := getLogEntry(t, db, book.ID)
		assert.Equal(t, models.StatusReading, updated.Status)
		assert.Equal(t, 10, updated.CurrentPage)
	})

	t.Run("reaching the page count auto-finishes the book", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)
		book := createTestBook(t, db, "Almost Done", intPtr(100))

		started := "2024-03-01"
		entry := &models.ReadingLogEntry{
			BookID:      book.ID,
			Status:      models.StatusReading,
			CurrentPage: 90,
			DateStarted: &started,
		}
		_, err := db.NewInsert().Model(entry).Exec(ctx)
		require.NoError(t, err)

		result, err := svc.CreateSession(ctx, CreateSessionOptions{
			BookID:      book.ID,
			SessionDate: "2024-03-05",
			PagesRead:   intPtr(25),
		})
		require.NoError(t, err)
		assert.True(t, result.BookCompleted)

		updated := getLogEntry(t, db, book.ID)
		assert.Equal(t, models.StatusFinished, updated.Status)
		assert.Equal(t, 100, updated.CurrentPage)
		require.NotNil(t, updated.DateFinished)
		assert.Equal(t, "2024-03-05", *updated.DateFinished)
		require.NotNil(t, updated.ReadingDays)
		assert.Equal(t, 4, *updated.ReadingDays)
	})

	t.Run("single-session finish counts one reading day", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)
		book := createTestBook(t, db, "One Sitting", intPtr(80))

		result, err := svc.CreateSession(ctx, CreateSessionOptions{
			BookID:      book.ID,
			SessionDate: "2024-03-01",
			PagesRead:   intPtr(80),
		})
		require.NoError(t, err)
		assert.True(t, result.BookCompleted)

		entry := getLogEntry(t, db, book.ID)
		assert.Equal(t, models.StatusFinished, entry.Status)
		require.NotNil(t, entry.ReadingDays)
		assert.Equal(t, 1, *entry.ReadingDays)
	})

	t.Run("unknown page count never auto-finishes", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)
		book := createTestBook(t, db, "Endless", nil)

		result, err := svc.CreateSession(ctx, CreateSessionOptions{
			BookID:      book.ID,
			SessionDate: "2024-03-01",
			PagesRead:   intPtr(500),
		})
		require.NoError(t, err)
		assert.False(t, result.BookCompleted)

		entry := getLogEntry(t, db, book.ID)
		assert.Equal(t, models.StatusReading, entry.Status)
		assert.Equal(t, 500, entry.CurrentPage)
	})

	t.Run("session without pages still starts the log", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := NewService(db)
		book := createTestBook(t, db, "Just Minutes", intPtr(200))

		_, err := svc.CreateSession(ctx, CreateSessionOptions{
			BookID:      book.ID,
			SessionDate: "2024-03-01",
			MinutesRead: intPtr(45),
		})
		require.NoError(t, err)

		entry := getLogEntry(t, db, book.ID)
		assert.Equal(t, models.StatusReading, entry.Status)
		assert.Equal(t, 0, entry.CurrentPage)
	})
}

func TestService_ListSessions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDB(t)
	svc := NewService(db)
	first := createTestBook(t, db, "First", intPtr(300))
	second := createTestBook(t, db, "Second", intPtr(300))

	for _, c := range []struct {
		bookID int
		date   string
	}{
		{first.ID, "2024-03-01"},
		{first.ID, "2024-03-03"},
		{second.ID, "2024-03-02"},
	} {
		_, err := svc.CreateSession(ctx, CreateSessionOptions{
			BookID:      c.bookID,
			SessionDate: c.date,
			PagesRead:   intPtr(10),
		})
		require.NoError(t, err)
	}

	t.Run("orders by most recent date", func(t *testing.T) {
		sessions, err := svc.ListSessions(ctx, ListSessionsOptions{})
		require.NoError(t, err)
		require.Len(t, sessions, 3)
		assert.Equal(t, "2024-03-03", sessions[0].SessionDate)
		assert.Equal(t, "2024-03-01", sessions[2].SessionDate)
	})

	t.Run("filters by book", func(t *testing.T) {
		sessions, err := svc.ListSessions(ctx, ListSessionsOptions{BookID: &second.ID})
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, second.ID, sessions[0].BookID)
	})
}
