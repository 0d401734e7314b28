package quotes

type ListQuotesQuery struct {
	Limit    int     `query:"limit" json:"limit" default:"100" validate:"min=1,max=500"`
	Offset   int     `query:"offset" json:"offset" validate:"min=0"`
	BookID   *int    `query:"book_id" json:"book_id" validate:"omitempty,min=1"`
	Favorite *bool   `query:"favorite" json:"favorite"`
	Search   *string `query:"search" json:"search" validate:"omitempty,max=500"`
}

type CreateQuotePayload struct {
	BookID     int      `json:"book_id" validate:"required,min=1"`
	QuoteText  string   `json:"quote_text" validate:"required,max=10000"`
	PageNumber *int     `json:"page_number" validate:"omitempty,min=1"`
	Chapter    *string  `json:"chapter" validate:"omitempty,max=500"`
	Tags       []string `json:"tags" validate:"omitempty,dive,min=1,max=100"`
	IsFavorite *bool    `json:"is_favorite"`
	Notes      *string  `json:"notes" validate:"omitempty,max=10000"`
}

type UpdateQuotePayload struct {
	QuoteText  *string  `json:"quote_text" validate:"omitempty,min=1,max=10000"`
	PageNumber *int     `json:"page_number" validate:"omitempty,min=1"`
	Chapter    *string  `json:"chapter" validate:"omitempty,max=500"`
	Tags       []string `json:"tags" validate:"omitempty,dive,min=1,max=100"`
	IsFavorite *bool    `json:"is_favorite"`
	Notes      *string  `json:"notes" validate:"omitempty,max=10000"`
}
