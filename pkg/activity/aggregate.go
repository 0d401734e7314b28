package activity

import "sort"

// DailyActivity is one calendar day of reading activity.
type DailyActivity struct {
	Date         string `json:"date"`
	PagesRead    int    `json:"pages_read"`
	MinutesRead  int    `json:"minutes_read"`
	SessionCount int    `json:"session_count"`
}

// buildDailyActivity merges session rollups with finished-book fallbacks. A
// day with any logged sessions keeps its session figures untouched; the
// fallback only fills days where a book was finished without a single session.
func buildDailyActivity(sessions []sessionDay, finishes []finishDay) []DailyActivity {
	byDate := make(map[string]DailyActivity, len(sessions)+len(finishes))

	for _, f := range finishes {
		byDate[f.Date] = DailyActivity{
			Date:         f.Date,
			PagesRead:    f.Pages,
			SessionCount: f.Books,
		}
	}
	for _, s := range sessions {
		byDate[s.Date] = DailyActivity{
			Date:         s.Date,
			PagesRead:    s.Pages,
			MinutesRead:  s.Minutes,
			SessionCount: s.Sessions,
		}
	}

	days := make([]DailyActivity, 0, len(byDate))
	for _, day := range byDate {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return days
}
