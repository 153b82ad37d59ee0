package models

// QuranProgress tracks the overall khatam target. Completed never exceeds
// Target and only decreases on an explicit reset.
type QuranProgress struct {
	PerDay    int `json:"per_day"`
	PerPrayer int `json:"per_prayer"`
	Completed int `json:"completed"`
	Target    int `json:"target"`
}

// DailyReading maps a calendar date (YYYY-MM-DD) to the number of pages
// read that day. Daily totals are uncapped; they only feed the quota gate.
type DailyReading map[string]int
