package models

import (
	"time"

	"github.com/uptrace/bun"
)

// BookInfo holds externally sourced metadata for a book (at most one row per
// book). Every field besides the book reference is optional; absence of the
// whole row or of any field is an absent signal, not an error.
type BookInfo struct {
	bun.BaseModel `bun:"table:book_info,alias:bi"`

	ID            int       `bun:",pk,nullzero" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	BookID        int       `bun:",nullzero" json:"book_id"`
	Description   *string   `json:"description"`
	CoverURL      *string   `json:"cover_url"`
	AverageRating *float64  `json:"average_rating"`
	RatingsCount  *int      `json:"ratings_count"`
	SourceURL     *string   `json:"source_url"`
}
