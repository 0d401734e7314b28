package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return parsed
}

func TestComputeStreaks(t *testing.T) {
	t.Parallel()

	t.Run("empty history", func(t *testing.T) {
		t.Parallel()
		summary := computeStreaks(nil, day(t, "2024-03-10"))
		assert.Equal(t, StreakSummary{}, summary)
	})

	t.Run("single day today", func(t *testing.T) {
		t.Parallel()
		summary := computeStreaks([]string{"2024-03-10"}, day(t, "2024-03-10"))
		assert.Equal(t, StreakSummary{CurrentStreak: 1, BestStreak: 1, TotalActiveDays: 1}, summary)
	})

	t.Run("anchor tolerates yesterday", func(t *testing.T) {
		t.Parallel()
		dates := []string{"2024-03-07", "2024-03-08", "2024-03-09"}
		summary := computeStreaks(dates, day(t, "2024-03-10"))
		assert.Equal(t, 3, summary.CurrentStreak)
		assert.Equal(t, 3, summary.BestStreak)
	})

	t.Run("current streak breaks when last activity is older than yesterday", func(t *testing.T) {
		t.Parallel()
		dates := []string{"2024-03-05", "2024-03-06", "2024-03-07"}
		summary := computeStreaks(dates, day(t, "2024-03-10"))
		assert.Equal(t, 0, summary.CurrentStreak)
		assert.Equal(t, 3, summary.BestStreak)
		assert.Equal(t, 3, summary.TotalActiveDays)
	})

	t.Run("gap inside the walk stops the current streak", func(t *testing.T) {
		t.Parallel()
		dates := []string{"2024-03-04", "2024-03-05", "2024-03-08", "2024-03-09", "2024-03-10"}
		summary := computeStreaks(dates, day(t, "2024-03-10"))
		assert.Equal(t, 3, summary.CurrentStreak)
		assert.Equal(t, 3, summary.BestStreak)
		assert.Equal(t, 5, summary.TotalActiveDays)
	})

	t.Run("best streak can live in the past", func(t *testing.T) {
		t.Parallel()
		dates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-03-10"}
		summary := computeStreaks(dates, day(t, "2024-03-10"))
		assert.Equal(t, 1, summary.CurrentStreak)
		assert.Equal(t, 4, summary.BestStreak)
	})

	t.Run("duplicate and unordered dates are handled", func(t *testing.T) {
		t.Parallel()
		dates := []string{"2024-03-10", "2024-03-09", "2024-03-09", "2024-03-08"}
		summary := computeStreaks(dates, day(t, "2024-03-10"))
		assert.Equal(t, 3, summary.CurrentStreak)
		assert.Equal(t, 3, summary.BestStreak)
		assert.Equal(t, 3, summary.TotalActiveDays)
	})
}
