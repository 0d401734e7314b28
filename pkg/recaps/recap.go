package recaps

import "time"

// MonthlyRecap summarizes one calendar month of finished books. Each derived
// field is independently nullable; a month with no ratings still reports its
// genre and author leaders, and vice versa.
type MonthlyRecap struct {
	Year             int        `json:"year"`
	Month            string     `json:"month"`
	BooksFinished    int        `json:"books_finished"`
	PagesRead        int        `json:"pages_read"`
	TopGenre         *string    `json:"top_genre"`
	TopRatedBook     *RatedBook `json:"top_rated_book"`
	FastestBook      *FastBook  `json:"fastest_book"`
	TotalReadingDays int        `json:"total_reading_days"`
	FavoriteAuthor   *string    `json:"favorite_author"`
}

// RatedBook is the highest-rated finish of the month.
type RatedBook struct {
	Title   string `json:"title"`
	Rating  int    `json:"rating"`
	Authors string `json:"authors"`
}

// FastBook is the quickest finish of the month.
type FastBook struct {
	Title string `json:"title"`
	Days  int    `json:"days"`
}

// finishedEntry is one finished log entry joined to its book and a delimited
// author display string.
type finishedEntry struct {
	Title        string `bun:"title"`
	Pages        int    `bun:"pages"`
	Rating       *int   `bun:"rating"`
	DateFinished string `bun:"date_finished"`
	ReadingDays  *int   `bun:"reading_days"`
	Authors      string `bun:"authors"`
}

// leaderboardRow is a name with its distinct-book count, already ordered
// descending by the query.
type leaderboardRow struct {
	Name  string `bun:"name"`
	Books int    `bun:"books"`
}

// buildRecap assembles a recap from the month's finished entries and the
// pre-ordered genre and author leaderboards.
func buildRecap(year, month int, entries []finishedEntry, genres, authors []leaderboardRow) *MonthlyRecap {
	recap := &MonthlyRecap{
		Year:          year,
		Month:         time.Month(month).String(),
		BooksFinished: len(entries),
	}

	for _, entry := range entries {
		recap.PagesRead += entry.Pages
		if entry.ReadingDays != nil {
			recap.TotalReadingDays += *entry.ReadingDays
		}
	}

	if len(genres) > 0 {
		name := genres[0].Name
		recap.TopGenre = &name
	}
	if len(authors) > 0 {
		name := authors[0].Name
		recap.FavoriteAuthor = &name
	}

	recap.TopRatedBook = pickTopRated(entries)
	recap.FastestBook = pickFastest(entries)

	return recap
}

// pickTopRated returns the entry with the highest rating, breaking ties by
// most recent finish date. Entries without a rating are ignored.
func pickTopRated(entries []finishedEntry) *RatedBook {
	var best *finishedEntry
	for i := range entries {
		entry := &entries[i]
		if entry.Rating == nil {
			continue
		}
		if best == nil ||
			*entry.Rating > *best.Rating ||
			(*entry.Rating == *best.Rating && entry.DateFinished > best.DateFinished) {
			best = entry
		}
	}
	if best == nil {
		return nil
	}
	return &RatedBook{
		Title:   best.Title,
		Rating:  *best.Rating,
		Authors: best.Authors,
	}
}

// pickFastest returns the entry with the smallest positive reading-day count.
// Entries with a missing or non-positive count are ignored.
func pickFastest(entries []finishedEntry) *FastBook {
	var best *finishedEntry
	for i := range entries {
		entry := &entries[i]
		if entry.ReadingDays == nil || *entry.ReadingDays <= 0 {
			continue
		}
		if best == nil || *entry.ReadingDays < *best.ReadingDays {
			best = entry
		}
	}
	if best == nil {
		return nil
	}
	return &FastBook{
		Title: best.Title,
		Days:  *best.ReadingDays,
	}
}
