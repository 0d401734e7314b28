package books

import "time"

type ListBooksQuery struct {
	Limit  int     `query:"limit" json:"limit" default:"50" validate:"min=1,max=500"`
	Offset int     `query:"offset" json:"offset" validate:"min=0"`
	Status *string `query:"status" json:"status" validate:"omitempty,oneof=want_to_read reading finished did_not_finish on_hold"`
	Search *string `query:"search" json:"search" validate:"omitempty,max=200"`
}

type CreateBookPayload struct {
	Title   string     `json:"title" mod:"trim" validate:"required,max=500"`
	ISBN    *string    `json:"isbn" mod:"trim" validate:"omitempty,max=20"`
	Year    *int       `json:"year" validate:"omitempty,min=0,max=3000"`
	Pages   *int       `json:"pages" validate:"omitempty,min=1"`
	AddedAt *time.Time `json:"added_at"`
	Authors []string   `json:"authors" validate:"omitempty,max=20,dive,max=200"`
	Genres  []string   `json:"genres" validate:"omitempty,max=20,dive,max=100"`
}

type UpdateBookPayload struct {
	Title   *string  `json:"title" mod:"trim" validate:"omitempty,min=1,max=500"`
	ISBN    *string  `json:"isbn" mod:"trim" validate:"omitempty,max=20"`
	Year    *int     `json:"year" validate:"omitempty,min=0,max=3000"`
	Pages   *int     `json:"pages" validate:"omitempty,min=1"`
	Authors []string `json:"authors" validate:"omitempty,max=20,dive,max=200"`
	Genres  []string `json:"genres" validate:"omitempty,max=20,dive,max=100"`
}
