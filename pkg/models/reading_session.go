package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ReadingSession is a single sitting with a book. SessionDate is a calendar
// date in YYYY-MM-DD form; multiple sessions may share a book and a date.
type ReadingSession struct {
	bun.BaseModel `bun:"table:reading_sessions,alias:rs"`

	ID          int       `bun:",pk,nullzero" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	BookID      int       `bun:",nullzero" json:"book_id"`
	Book        *Book     `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
	SessionDate string    `bun:",nullzero" json:"session_date"`
	PagesRead   *int      `json:"pages_read"`
	MinutesRead *int      `json:"minutes_read"`
	StartPage   *int      `json:"start_page"`
	EndPage     *int      `json:"end_page"`
	Notes       *string   `json:"notes"`
}
