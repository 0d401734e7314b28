package activity

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// DefaultWindowDays is how far back daily activity reaches when no window is
// given.
const DefaultWindowDays = 365

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// ComputeDailyActivity aggregates per-day reading activity for the window
// ending at now. Days without sessions fall back to finished-book page counts;
// days with neither signal are omitted entirely.
func (svc *Service) ComputeDailyActivity(ctx context.Context, now time.Time, windowDays int) ([]DailyActivity, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	since := now.UTC().AddDate(0, 0, -windowDays).Format(dateLayout)

	sessions, err := svc.listSessionDays(ctx, since)
	if err != nil {
		return nil, err
	}
	finishes, err := svc.listFinishDays(ctx, since)
	if err != nil {
		return nil, err
	}

	return buildDailyActivity(sessions, finishes), nil
}

// ComputeStreaks computes current and best reading streaks over the full
// activity history, anchored to today.
func (svc *Service) ComputeStreaks(ctx context.Context, today time.Time) (*StreakSummary, error) {
	dates, err := svc.listActiveDates(ctx)
	if err != nil {
		return nil, err
	}

	summary := computeStreaks(dates, today.UTC())
	return &summary, nil
}
