package models

// DayView is one rendered diary day: the laid-out events plus the number
// of side-by-side columns the view needs.
type DayView struct {
	Date          string       `json:"date"` // "YYYY-MM-DD"
	MaxConcurrent int          `json:"max_concurrent"`
	Events        []TimedEvent `json:"events"`
}

// WeekView is seven consecutive day views starting on a Monday.
type WeekView struct {
	WeekStart string    `json:"week_start"` // "YYYY-MM-DD", always a Monday
	Days      []DayView `json:"days"`
}

// MonthView gives the per-day booking counts for a month grid.
type MonthView struct {
	Month  string         `json:"month"` // "YYYY-MM"
	Counts map[string]int `json:"counts"`
}
