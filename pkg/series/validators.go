package series

type ListSeriesQuery struct {
	Limit  int `query:"limit" json:"limit" default:"100" validate:"min=1,max=500"`
	Offset int `query:"offset" json:"offset" validate:"min=0"`
}

type CreateSeriesPayload struct {
	Title       string  `json:"title" validate:"required,max=500"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
	TotalBooks  *int    `json:"total_books" validate:"omitempty,min=1"`
	Status      *string `json:"status" validate:"omitempty,oneof=ongoing completed cancelled unknown"`
}

type UpdateSeriesPayload struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=500"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
	TotalBooks  *int    `json:"total_books" validate:"omitempty,min=1"`
	Status      *string `json:"status" validate:"omitempty,oneof=ongoing completed cancelled unknown"`
}

type AddSeriesBookPayload struct {
	BookID      int   `json:"book_id" validate:"required,min=1"`
	Position    int   `json:"position" validate:"required,min=1"`
	IsSideStory *bool `json:"is_side_story"`
}
