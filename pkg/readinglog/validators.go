package readinglog

type UpsertEntryPayload struct {
	Status      *string `json:"status" validate:"omitempty,oneof=want_to_read reading finished did_not_finish on_hold"`
	CurrentPage *int    `json:"current_page" validate:"omitempty,min=0"`
	Rating      *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Review      *string `json:"review" validate:"omitempty,max=10000"`
	DateStarted *string `json:"date_started" validate:"omitempty,date"`
}

type MarkFinishedPayload struct {
	Rating *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Review *string `json:"review" validate:"omitempty,max=10000"`
}
