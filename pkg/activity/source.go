package activity

import (
	"context"

	"github.com/leaflog/leaflog/pkg/models"
	"github.com/pkg/errors"
)

// sessionDay is a per-date rollup of logged reading sessions.
type sessionDay struct {
	Date     string `bun:"date"`
	Pages    int    `bun:"pages"`
	Minutes  int    `bun:"minutes"`
	Sessions int    `bun:"sessions"`
}

// finishDay is a per-date rollup of books finished on that day. It only
// matters for days without any logged sessions, where the finished book's page
// count stands in for real session figures.
type finishDay struct {
	Date  string `bun:"date"`
	Pages int    `bun:"pages"`
	Books int    `bun:"books"`
}

func (svc *Service) listSessionDays(ctx context.Context, since string) ([]sessionDay, error) {
	var rows []sessionDay

	err := svc.db.
		NewSelect().
		Model((*models.ReadingSession)(nil)).
		ColumnExpr("rs.session_date AS date").
		ColumnExpr("COALESCE(SUM(rs.pages_read), 0) AS pages").
		ColumnExpr("COALESCE(SUM(rs.minutes_read), 0) AS minutes").
		ColumnExpr("COUNT(*) AS sessions").
		Where("rs.session_date >= ?", since).
		GroupExpr("rs.session_date").
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return rows, nil
}

func (svc *Service) listFinishDays(ctx context.Context, since string) ([]finishDay, error) {
	var rows []finishDay

	err := svc.db.
		NewSelect().
		Model((*models.ReadingLogEntry)(nil)).
		ColumnExpr("rl.date_finished AS date").
		ColumnExpr("COALESCE(SUM(COALESCE(b.pages, 0)), 0) AS pages").
		ColumnExpr("COUNT(*) AS books").
		Join("LEFT JOIN books AS b ON b.id = rl.book_id").
		Where("rl.status = ?", models.StatusFinished).
		Where("rl.date_finished IS NOT NULL").
		Where("rl.date_finished >= ?", since).
		GroupExpr("rl.date_finished").
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return rows, nil
}

// listActiveDates returns every distinct date with any reading signal, either
// a logged session or a finished book. No window is applied since streaks look
// at the full history.
func (svc *Service) listActiveDates(ctx context.Context) ([]string, error) {
	var sessionDates []string
	err := svc.db.
		NewSelect().
		Model((*models.ReadingSession)(nil)).
		ColumnExpr("DISTINCT rs.session_date").
		Scan(ctx, &sessionDates)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var finishDates []string
	err = svc.db.
		NewSelect().
		Model((*models.ReadingLogEntry)(nil)).
		ColumnExpr("DISTINCT rl.date_finished").
		Where("rl.status = ?", models.StatusFinished).
		Where("rl.date_finished IS NOT NULL").
		Scan(ctx, &finishDates)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	seen := make(map[string]struct{}, len(sessionDates)+len(finishDates))
	dates := make([]string, 0, len(sessionDates)+len(finishDates))
	for _, d := range append(sessionDates, finishDates...) {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}

	return dates, nil
}
