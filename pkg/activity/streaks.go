package activity

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// StreakSummary describes consecutive-day reading behavior across the full
// history of activity.
type StreakSummary struct {
	CurrentStreak   int `json:"current_streak"`
	BestStreak      int `json:"best_streak"`
	TotalActiveDays int `json:"total_active_days"`
}

// computeStreaks walks the distinct active dates. The current streak is
// anchored to today: it only counts if the most recent active date is today or
// yesterday, and it extends backwards through exactly consecutive days. The
// best streak is the longest consecutive run anywhere in the history.
func computeStreaks(dates []string, today time.Time) StreakSummary {
	seen := make(map[string]struct{}, len(dates))
	parsed := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		t, err := time.ParseInLocation(dateLayout, d, time.UTC)
		if err != nil {
			continue
		}
		seen[d] = struct{}{}
		parsed = append(parsed, t)
	}
	sort.Slice(parsed, func(i, j int) bool {
		return parsed[i].Before(parsed[j])
	})

	summary := StreakSummary{TotalActiveDays: len(parsed)}
	if len(parsed) == 0 {
		return summary
	}

	best := 1
	run := 1
	for i := 1; i < len(parsed); i++ {
		if daysBetween(parsed[i-1], parsed[i]) == 1 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	summary.BestStreak = best

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	anchor := daysBetween(parsed[len(parsed)-1], day)
	if anchor != 0 && anchor != 1 {
		return summary
	}

	current := 1
	for i := len(parsed) - 2; i >= 0; i-- {
		if daysBetween(parsed[i], parsed[i+1]) != 1 {
			break
		}
		current++
	}
	summary.CurrentStreak = current

	return summary
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
