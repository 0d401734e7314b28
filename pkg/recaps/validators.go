package recaps

type RecapQuery struct {
	Year  int `query:"year" json:"year" validate:"required,min=1,max=9999"`
	Month int `query:"month" json:"month" validate:"required,min=1,max=12"`
}
