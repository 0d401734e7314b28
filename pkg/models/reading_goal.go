package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ReadingGoal is a yearly target. There is at most one goal per year.
// Progress toward the targets is derived from the reading log at read time
// rather than stored.
type ReadingGoal struct {
	bun.BaseModel `bun:"table:reading_goals,alias:rg"`

	ID          int       `bun:",pk,nullzero" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Year        int       `bun:",nullzero" json:"year"`
	TargetBooks *int      `json:"target_books"`
	TargetPages *int      `json:"target_pages"`
}
