package recommendations

import (
	"math"
	"sort"
	"time"

	"github.com/leaflog/leaflog/pkg/models"
)

// Entry pairs a book with its computed recommendation score. Scores are never
// persisted; they are recomputed from current state on every request.
type Entry struct {
	Book  *models.Book `json:"book"`
	Score float64      `json:"score"`
}

const maxResults = 10

// score computes the additive heuristic score for one eligible book. Books
// already in progress get a large head start; external ratings, popularity,
// shorter length, and time spent sitting in the library all nudge the score
// upward with caps on each term.
func score(book *models.Book, now time.Time) float64 {
	var total float64

	if book.ReadingLog != nil && book.ReadingLog.Status == models.StatusReading {
		total += 100
	}

	if info := book.Info; info != nil {
		if info.AverageRating != nil {
			total += *info.AverageRating * 10
		}
		if info.RatingsCount != nil {
			total += math.Min(float64(*info.RatingsCount)/100, 20)
		}
	}

	if book.Pages != nil {
		total += math.Max(0, float64(500-*book.Pages)/100)
	}

	daysInLibrary := now.Sub(book.AddedAt).Hours() / 24
	total += math.Min(daysInLibrary/10, 15)

	return total
}

// rank scores every book and returns up to maxResults entries, highest score
// first. The sort is stable, so ties keep catalog order.
func rank(books []*models.Book, now time.Time) []Entry {
	entries := make([]Entry, 0, len(books))
	for _, book := range books {
		entries = append(entries, Entry{Book: book, Score: score(book, now)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	if len(entries) > maxResults {
		entries = entries[:maxResults]
	}
	return entries
}
