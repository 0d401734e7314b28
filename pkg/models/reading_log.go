package models

import (
	"time"

	"github.com/uptrace/bun"
)

type ReadingStatus string

const (
	StatusWantToRead   ReadingStatus = "want_to_read"
	StatusReading      ReadingStatus = "reading"
	StatusFinished     ReadingStatus = "finished"
	StatusDidNotFinish ReadingStatus = "did_not_finish"
	StatusOnHold       ReadingStatus = "on_hold"
)

// ReadingStatuses lists every valid reading log status.
var ReadingStatuses = []ReadingStatus{
	StatusWantToRead,
	StatusReading,
	StatusFinished,
	StatusDidNotFinish,
	StatusOnHold,
}

// ReadingLogEntry tracks a book's place in the reading lifecycle. There is at
// most one entry per book. DateStarted and DateFinished are calendar dates in
// YYYY-MM-DD form; DateFinished is only set when the status is finished.
type ReadingLogEntry struct {
	bun.BaseModel `bun:"table:reading_log,alias:rl"`

	ID           int           `bun:",pk,nullzero" json:"id"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	BookID       int           `bun:",nullzero" json:"book_id"`
	Book         *Book         `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
	Status       ReadingStatus `bun:",nullzero" json:"status"`
	CurrentPage  int           `json:"current_page"`
	Rating       *int          `json:"rating"`
	Review       *string       `json:"review"`
	DateStarted  *string       `json:"date_started"`
	DateFinished *string       `json:"date_finished"`
	ReadingDays  *int          `json:"reading_days"`
}
