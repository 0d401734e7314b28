package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	AddedAt   time.Time `bun:",nullzero" json:"added_at"`
	Title     string    `bun:",nullzero" json:"title"`
	ISBN      *string   `json:"isbn"`
	Year      *int      `json:"year"`
	Pages     *int      `json:"pages"`

	Authors    []*Author        `bun:"m2m:book_authors,join:Book=Author" json:"authors,omitempty"`
	Genres     []*Genre         `bun:"m2m:book_genres,join:Book=Genre" json:"genres,omitempty"`
	ReadingLog *ReadingLogEntry `bun:"rel:has-one,join:id=book_id" json:"reading_log,omitempty"`
	Info       *BookInfo        `bun:"rel:has-one,join:id=book_id" json:"info,omitempty"`
}

type BookAuthor struct {
	bun.BaseModel `bun:"table:book_authors,alias:ba"`

	ID          int     `bun:",pk,nullzero" json:"id"`
	BookID      int     `bun:",nullzero" json:"book_id"`
	Book        *Book   `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
	AuthorID    int     `bun:",nullzero" json:"author_id"`
	Author      *Author `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
	AuthorOrder int     `json:"author_order"`
}

type BookGenre struct {
	bun.BaseModel `bun:"table:book_genres,alias:bg"`

	ID      int    `bun:",pk,nullzero" json:"id"`
	BookID  int    `bun:",nullzero" json:"book_id"`
	Book    *Book  `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
	GenreID int    `bun:",nullzero" json:"genre_id"`
	Genre   *Genre `bun:"rel:belongs-to,join:genre_id=id" json:"genre,omitempty"`
}
