package goals

type GoalQuery struct {
	Year *int `query:"year" json:"year" validate:"omitempty,min=1,max=9999"`
}

type SetGoalPayload struct {
	Year        int  `json:"year" validate:"required,min=1,max=9999"`
	TargetBooks *int `json:"target_books" validate:"omitempty,min=1"`
	TargetPages *int `json:"target_pages" validate:"omitempty,min=1"`
}
