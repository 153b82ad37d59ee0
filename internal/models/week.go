package models

// DayProgress is one day's worship completion snapshot. Progress is the
// rounded percentage of completed checklist points for that date.
type DayProgress struct {
	Date     string `json:"date"` // YYYY-MM-DD format
	Progress int    `json:"progress"`
}

// Week holds the progress points for one seven-day block of the tracked
// period. Days are ordered by date and never include future dates.
type Week struct {
	ID        string        `json:"id"`
	StartDate string        `json:"start_date"` // YYYY-MM-DD format
	EndDate   string        `json:"end_date"`   // YYYY-MM-DD format
	Days      []DayProgress `json:"days"`
}

// Contains reports whether the date falls inside the week's range.
func (w Week) Contains(date string) bool {
	return date >= w.StartDate && date <= w.EndDate
}
