package bookinfo

type UpsertInfoPayload struct {
	Description   *string  `json:"description" validate:"omitempty,max=20000"`
	CoverURL      *string  `json:"cover_url" mod:"trim" validate:"omitempty,url,max=2000"`
	AverageRating *float64 `json:"average_rating" validate:"omitempty,min=0,max=5"`
	RatingsCount  *int     `json:"ratings_count" validate:"omitempty,min=0"`
	SourceURL     *string  `json:"source_url" mod:"trim" validate:"omitempty,url,max=2000"`
}
