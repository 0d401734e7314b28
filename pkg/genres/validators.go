package genres

type ListGenresQuery struct {
	Limit  int `query:"limit" json:"limit" default:"100" validate:"min=1,max=500"`
	Offset int `query:"offset" json:"offset" validate:"min=0"`
}
