package sessions

type ListSessionsQuery struct {
	Limit  int  `query:"limit" json:"limit" default:"50" validate:"min=1,max=500"`
	Offset int  `query:"offset" json:"offset" validate:"min=0"`
	BookID *int `query:"book_id" json:"book_id" validate:"omitempty,min=1"`
}

type CreateSessionPayload struct {
	BookID      int     `json:"book_id" validate:"required,min=1"`
	SessionDate string  `json:"session_date" validate:"required,date"`
	PagesRead   *int    `json:"pages_read" validate:"omitempty,min=0"`
	MinutesRead *int    `json:"minutes_read" validate:"omitempty,min=0"`
	StartPage   *int    `json:"start_page" validate:"omitempty,min=0"`
	EndPage     *int    `json:"end_page" validate:"omitempty,min=0"`
	Notes       *string `json:"notes" validate:"omitempty,max=10000"`
}

type UpdateSessionPayload struct {
	SessionDate *string `json:"session_date" validate:"omitempty,date,ne="`
	PagesRead   *int    `json:"pages_read" validate:"omitempty,min=0"`
	MinutesRead *int    `json:"minutes_read" validate:"omitempty,min=0"`
	StartPage   *int    `json:"start_page" validate:"omitempty,min=0"`
	EndPage     *int    `json:"end_page" validate:"omitempty,min=0"`
	Notes       *string `json:"notes" validate:"omitempty,max=10000"`
}
