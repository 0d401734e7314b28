package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Quote is a saved passage or highlight from a book. Tags are stored as a
// JSON array in a text column.
type Quote struct {
	bun.BaseModel `bun:"table:book_quotes,alias:q"`

	ID         int       `bun:",pk,nullzero" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	BookID     int       `bun:",nullzero" json:"book_id"`
	Book       *Book     `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
	QuoteText  string    `bun:",nullzero" json:"quote_text"`
	PageNumber *int      `json:"page_number"`
	Chapter    *string   `json:"chapter"`
	Tags       []string  `bun:",nullzero" json:"tags"`
	IsFavorite bool      `json:"is_favorite"`
	Notes      *string   `json:"notes"`
}
