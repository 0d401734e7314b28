package activity

type DailyActivityQuery struct {
	WindowDays int `query:"window_days" json:"window_days" default:"365" validate:"min=1,max=3650"`
}
