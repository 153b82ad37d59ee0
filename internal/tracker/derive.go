package tracker

import (
	"math"
	"sort"
	"time"

	"github.com/Draconik513/web-puasa/internal/constants"
	"github.com/Draconik513/web-puasa/internal/models"
)

// CompletionRatio returns the point-weighted share of completed checklist
// items as an exact value in [0, 1]. A list with zero total points (or no
// items at all) yields 0. Rounding happens only at presentation boundaries
// via Percent.
func CompletionRatio(items []models.WorshipItem) float64 {
	var completed, total int
	for _, item := range items {
		total += item.Points
		if item.Completed {
			completed += item.Points
		}
	}
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total)
}

// Percent converts an exact ratio to a whole display percentage.
func Percent(ratio float64) int {
	return int(math.Round(ratio * 100))
}

// RecomputeDay sets the progress point for date inside the week, appending
// the point in date order when the day is seen for the first time. The
// whole-list snapshot percentage replaces any previous value for the day.
func RecomputeDay(week *models.Week, date string, percent int) {
	for i := range week.Days {
		if week.Days[i].Date == date {
			week.Days[i].Progress = percent
			return
		}
	}

	week.Days = append(week.Days, models.DayProgress{Date: date, Progress: percent})
	sort.Slice(week.Days, func(i, j int) bool {
		return week.Days[i].Date < week.Days[j].Date
	})
}

// WeekSummary aggregates a week's progress points over elapsed days only.
type WeekSummary struct {
	Average          float64
	BestDay          int
	BestDate         string
	ProductiveDays   int
	NeedsImprovement int
	PastDays         int
}

// SummarizeWeek derives the weekly aggregate from days dated on or before
// today. Future-dated points, should any exist, are excluded.
func SummarizeWeek(week models.Week, today string) WeekSummary {
	var s WeekSummary
	var sum int
	for _, day := range week.Days {
		if day.Date > today {
			continue
		}
		s.PastDays++
		sum += day.Progress
		if day.Progress >= s.BestDay {
			if day.Progress > s.BestDay || s.BestDate == "" {
				s.BestDate = day.Date
			}
			s.BestDay = day.Progress
		}
		if day.Progress >= constants.ProductiveDayMin {
			s.ProductiveDays++
		}
		if day.Progress < constants.NeedsImprovementMax {
			s.NeedsImprovement++
		}
	}
	if s.PastDays > 0 {
		s.Average = float64(sum) / float64(s.PastDays)
	}
	return s
}

// MonthlySeries produces one value per calendar day of the tracked period,
// starting at start. Days without a recorded point are reported as zero,
// which deliberately conflates "not yet started" with "no progress" the
// way the charting has always done.
func MonthlySeries(weeks []models.Week, start time.Time, length int) []int {
	byDate := make(map[string]int)
	for _, week := range weeks {
		for _, day := range week.Days {
			byDate[day.Date] = day.Progress
		}
	}

	series := make([]int, length)
	day := Midnight(start)
	for i := 0; i < length; i++ {
		series[i] = byDate[DateKey(day)]
		day = day.AddDate(0, 0, 1)
	}
	return series
}

// FastingDay reports the 1-indexed day of the fasting period and the days
// remaining. Before the period it returns day 0 with a countdown; after it
// the full period length with zero remaining.
func FastingDay(now, periodStart, periodEnd time.Time, periodDays int) (day, remaining int) {
	today := Midnight(now)
	start := Midnight(periodStart)
	end := Midnight(periodEnd)

	switch {
	case today.Before(start):
		return 0, int(start.Sub(today).Hours() / 24)
	case today.After(end):
		return periodDays, 0
	default:
		day = int(today.Sub(start).Hours()/24) + 1
		if day > periodDays {
			day = periodDays
		}
		return day, periodDays - day
	}
}
