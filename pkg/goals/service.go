package goals

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/leaflog/leaflog/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// defaultTargetBooks is the book-a-week target assumed for years without an
// explicit goal.
const defaultTargetBooks = 52

type SetGoalOptions struct {
	TargetBooks *int
	TargetPages *int
}

// GoalProgress is a year's goal joined with live progress from the reading
// log. A year with no stored goal still reports progress against the default
// book target.
type GoalProgress struct {
	Year         int  `json:"year"`
	TargetBooks  *int `json:"target_books"`
	TargetPages  *int `json:"target_pages"`
	CurrentBooks int  `json:"current_books"`
	CurrentPages int  `json:"current_pages"`
}

type progressRow struct {
	Books int `bun:"books"`
	Pages int `bun:"pages"`
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// RetrieveGoalProgress returns the goal for a year with the finished-book and
// page counts derived from the reading log.
func (svc *Service) RetrieveGoalProgress(ctx context.Context, year int) (*GoalProgress, error) {
	progress := &GoalProgress{Year: year}

	goal := &models.ReadingGoal{}
	err := svc.db.
		NewSelect().
		Model(goal).
		Where("rg.year = ?", year).
		Scan(ctx)
	switch {
	case err == nil:
		progress.TargetBooks = goal.TargetBooks
		progress.TargetPages = goal.TargetPages
	case errors.Is(err, sql.ErrNoRows):
		target := defaultTargetBooks
		progress.TargetBooks = &target
	default:
		return nil, errors.WithStack(err)
	}

	from := fmt.Sprintf("%04d-01-01", year)
	to := fmt.Sprintf("%04d-01-01", year+1)

	row := progressRow{}
	err = svc.db.
		NewSelect().
		Model((*models.ReadingLogEntry)(nil)).
		ColumnExpr("COUNT(DISTINCT rl.id) AS books").
		ColumnExpr("COALESCE(SUM(COALESCE(b.pages, 0)), 0) AS pages").
		Join("LEFT JOIN books AS b ON b.id = rl.book_id").
		Where("rl.status = ?", models.StatusFinished).
		Where("rl.date_finished >= ? AND rl.date_finished < ?", from, to).
		Scan(ctx, &row)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	progress.CurrentBooks = row.Books
	progress.CurrentPages = row.Pages

	return progress, nil
}

// SetGoal creates or replaces the goal for a year.
func (svc *Service) SetGoal(ctx context.Context, year int, opts SetGoalOptions) (*models.ReadingGoal, error) {
	now := time.Now()

	goal := &models.ReadingGoal{}
	err := svc.db.
		NewSelect().
		Model(goal).
		Where("rg.year = ?", year).
		Scan(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, errors.WithStack(err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		goal = &models.ReadingGoal{
			CreatedAt:   now,
			UpdatedAt:   now,
			Year:        year,
			TargetBooks: opts.TargetBooks,
			TargetPages: opts.TargetPages,
		}
		_, err = svc.db.
			NewInsert().
			Model(goal).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return goal, nil
	}

	goal.TargetBooks = opts.TargetBooks
	goal.TargetPages = opts.TargetPages
	goal.UpdatedAt = now

	_, err = svc.db.
		NewUpdate().
		Model(goal).
		Column("target_books", "target_pages", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return goal, nil
}
