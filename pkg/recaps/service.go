package recaps

import (
	"context"
	"fmt"
	"sync"

	"github.com/leaflog/leaflog/pkg/errcodes"
	"github.com/leaflog/leaflog/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// ComputeMonthlyRecap builds the recap for one calendar month. The three
// source queries are independent reads, so they run concurrently and are
// joined before the recap is assembled; any failure fails the whole recap.
func (svc *Service) ComputeMonthlyRecap(ctx context.Context, year, month int) (*MonthlyRecap, error) {
	if month < 1 || month > 12 {
		return nil, errcodes.ValidationError(fmt.Sprintf("%q must be between 1 and 12", "month"))
	}

	from, to := monthRange(year, month)

	var (
		entries []finishedEntry
		genres  []leaderboardRow
		authors []leaderboardRow
		errs    [3]error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		entries, errs[0] = svc.listFinishedEntries(ctx, from, to)
	}()
	go func() {
		defer wg.Done()
		genres, errs[1] = svc.genreLeaderboard(ctx, from, to)
	}()
	go func() {
		defer wg.Done()
		authors, errs[2] = svc.authorLeaderboard(ctx, from, to)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return buildRecap(year, month, entries, genres, authors), nil
}

// monthRange returns the half-open [from, to) date-string bounds for a month.
// Lexicographic comparison on YYYY-MM-DD strings matches chronological order.
func monthRange(year, month int) (string, string) {
	from := fmt.Sprintf("%04d-%02d-01", year, month)
	nextYear, nextMonth := year, month+1
	if nextMonth > 12 {
		nextYear, nextMonth = year+1, 1
	}
	to := fmt.Sprintf("%04d-%02d-01", nextYear, nextMonth)
	return from, to
}

func (svc *Service) listFinishedEntries(ctx context.Context, from, to string) ([]finishedEntry, error) {
	var rows []finishedEntry

	err := svc.db.
		NewSelect().
		Model((*models.ReadingLogEntry)(nil)).
		ColumnExpr("b.title AS title").
		ColumnExpr("COALESCE(b.pages, 0) AS pages").
		ColumnExpr("rl.rating AS rating").
		ColumnExpr("rl.date_finished AS date_finished").
		ColumnExpr("rl.reading_days AS reading_days").
		ColumnExpr("COALESCE(GROUP_CONCAT(DISTINCT a.name), 'Unknown') AS authors").
		Join("JOIN books AS b ON b.id = rl.book_id").
		Join("LEFT JOIN book_authors AS ba ON ba.book_id = b.id").
		Join("LEFT JOIN authors AS a ON a.id = ba.author_id").
		Where("rl.status = ?", models.StatusFinished).
		Where("rl.date_finished >= ? AND rl.date_finished < ?", from, to).
		GroupExpr("rl.id").
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return rows, nil
}

func (svc *Service) genreLeaderboard(ctx context.Context, from, to string) ([]leaderboardRow, error) {
	var rows []leaderboardRow

	err := svc.db.
		NewSelect().
		Model((*models.ReadingLogEntry)(nil)).
		ColumnExpr("g.name AS name").
		ColumnExpr("COUNT(DISTINCT rl.book_id) AS books").
		Join("JOIN book_genres AS bg ON bg.book_id = rl.book_id").
		Join("JOIN genres AS g ON g.id = bg.genre_id").
		Where("rl.status = ?", models.StatusFinished).
		Where("rl.date_finished >= ? AND rl.date_finished < ?", from, to).
		GroupExpr("g.id").
		OrderExpr("books DESC, g.name ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return rows, nil
}

func (svc *Service) authorLeaderboard(ctx context.Context, from, to string) ([]leaderboardRow, error) {
	var rows []leaderboardRow

	err := svc.db.
		NewSelect().
		Model((*models.ReadingLogEntry)(nil)).
		ColumnExpr("a.name AS name").
		ColumnExpr("COUNT(DISTINCT rl.book_id) AS books").
		Join("JOIN book_authors AS ba ON ba.book_id = rl.book_id").
		Join("JOIN authors AS a ON a.id = ba.author_id").
		Where("rl.status = ?", models.StatusFinished).
		Where("rl.date_finished >= ? AND rl.date_finished < ?", from, to).
		GroupExpr("a.id").
		OrderExpr("books DESC, a.name ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return rows, nil
}
