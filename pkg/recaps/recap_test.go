package recaps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func TestBuildRecap(t *testing.T) {
	t.Parallel()

	t.Run("empty month", func(t *testing.T) {
		t.Parallel()
		recap := buildRecap(2024, 3, nil, nil, nil)
		assert.Equal(t, 2024, recap.Year)
		assert.Equal(t, "March", recap.Month)
		assert.Equal(t, 0, recap.BooksFinished)
		assert.Equal(t, 0, recap.PagesRead)
		assert.Equal(t, 0, recap.TotalReadingDays)
		assert.Nil(t, recap.TopGenre)
		assert.Nil(t, recap.TopRatedBook)
		assert.Nil(t, recap.FastestBook)
		assert.Nil(t, recap.FavoriteAuthor)
	})

	t.Run("totals sum pages and reading days", func(t *testing.T) {
		t.Parallel()
		entries := []finishedEntry{
			{Title: "A", Pages: 200, ReadingDays: intPtr(5)},
			{Title: "B", Pages: 150},
			{Title: "C", Pages: 0, ReadingDays: intPtr(2)},
		}

		recap := buildRecap(2024, 1, entries, nil, nil)
		assert.Equal(t, "January", recap.Month)
		assert.Equal(t, 3, recap.BooksFinished)
		assert.Equal(t, 350, recap.PagesRead)
		assert.Equal(t, 7, recap.TotalReadingDays)
	})

	t.Run("leaderboard winners come from the first row", func(t *testing.T) {
		t.Parallel()
		genres := []leaderboardRow{{Name: "Fantasy", Books: 3}, {Name: "Horror", Books: 1}}
		authors := []leaderboardRow{{Name: "Ursula K. Le Guin", Books: 2}}

		recap := buildRecap(2024, 12, nil, genres, authors)
		require.NotNil(t, recap.TopGenre)
		assert.Equal(t, "Fantasy", *recap.TopGenre)
		require.NotNil(t, recap.FavoriteAuthor)
		assert.Equal(t, "Ursula K. Le Guin", *recap.FavoriteAuthor)
		assert.Equal(t, "December", recap.Month)
	})
}

func TestPickTopRated(t *testing.T) {
	t.Parallel()

	t.Run("nil when no entry has a rating", func(t *testing.T) {
		t.Parallel()
		entries := []finishedEntry{{Title: "A"}, {Title: "B"}}
		assert.Nil(t, pickTopRated(entries))
	})

	t.Run("highest rating wins", func(t *testing.T) {
		t.Parallel()
		entries := []finishedEntry{
			{Title: "Three Stars", Rating: intPtr(3), DateFinished: "2024-03-20"},
			{Title: "Five Stars", Rating: intPtr(5), DateFinished: "2024-03-02", Authors: "Some Author"},
		}

		best := pickTopRated(entries)
		require.NotNil(t, best)
		assert.Equal(t, "Five Stars", best.Title)
		assert.Equal(t, 5, best.Rating)
		assert.Equal(t, "Some Author", best.Authors)
	})

	t.Run("ties broken by most recent finish", func(t *testing.T) {
		t.Parallel()
		entries := []finishedEntry{
			{Title: "Earlier", Rating: intPtr(4), DateFinished: "2024-03-05"},
			{Title: "Later", Rating: intPtr(4), DateFinished: "2024-03-25"},
		}

		best := pickTopRated(entries)
		require.NotNil(t, best)
		assert.Equal(t, "Later", best.Title)
	})
}

func TestPickFastest(t *testing.T) {
	t.Parallel()

	t.Run("nil when no entry has a positive count", func(t *testing.T) {
		t.Parallel()
		entries := []finishedEntry{
			{Title: "Unknown"},
			{Title: "Zero", ReadingDays: intPtr(0)},
			{Title: "Negative", ReadingDays: intPtr(-3)},
		}
		assert.Nil(t, pickFastest(entries))
	})

	t.Run("smallest positive count wins", func(t *testing.T) {
		t.Parallel()
		entries := []finishedEntry{
			{Title: "Slow", ReadingDays: intPtr(30)},
			{Title: "Quick", ReadingDays: intPtr(2)},
			{Title: "Zero", ReadingDays: intPtr(0)},
		}

		best := pickFastest(entries)
		require.NotNil(t, best)
		assert.Equal(t, "Quick", best.Title)
		assert.Equal(t, 2, best.Days)
	})
}
