package models

import (
	"time"

	"github.com/uptrace/bun"
)

type SeriesStatus string

const (
	SeriesOngoing   SeriesStatus = "ongoing"
	SeriesCompleted SeriesStatus = "completed"
	SeriesCancelled SeriesStatus = "cancelled"
	SeriesUnknown   SeriesStatus = "unknown"
)

// SeriesStatuses lists every valid series status.
var SeriesStatuses = []SeriesStatus{
	SeriesOngoing,
	SeriesCompleted,
	SeriesCancelled,
	SeriesUnknown,
}

// Series groups books into an ordered run. TotalBooks is the declared length
// of the series, which may exceed the number of books in the library.
type Series struct {
	bun.BaseModel `bun:"table:series,alias:sr"`

	ID          int          `bun:",pk,nullzero" json:"id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Title       string       `bun:",nullzero" json:"title"`
	Description *string      `json:"description"`
	TotalBooks  *int         `json:"total_books"`
	Status      SeriesStatus `bun:",nullzero" json:"status"`
	BookCount   int          `bun:",scanonly" json:"book_count,omitempty"`
}

// SeriesBook places a book at a position within a series.
type SeriesBook struct {
	bun.BaseModel `bun:"table:series_books,alias:sb"`

	ID          int     `bun:",pk,nullzero" json:"id"`
	SeriesID    int     `bun:",nullzero" json:"series_id"`
	Series      *Series `bun:"rel:belongs-to,join:series_id=id" json:"series,omitempty"`
	BookID      int     `bun:",nullzero" json:"book_id"`
	Book        *Book   `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
	Position    int     `bun:",nullzero" json:"position"`
	IsSideStory bool    `json:"is_side_story"`
}
