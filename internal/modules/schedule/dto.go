package schedule

import "hoodbook/internal/modules/catalog"

type DayColumn struct {
	Date      string                 `json:"date"`
	Weekday   string                 `json:"weekday"`
	DayOfWeek int                    `json:"day_of_week"`
	Offerings []catalog.OfferingView `json:"offerings"`
}

type WeekResponse struct {
	Start    string      `json:"start"`
	End      string      `json:"end"`
	Label    string      `json:"label"`
	PrevWeek string      `json:"prev_week"`
	NextWeek string      `json:"next_week"`
	Days     []DayColumn `json:"days"`
}
