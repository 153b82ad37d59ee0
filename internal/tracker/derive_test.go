package tracker

import (
	"testing"
	"time"

	"github.com/Draconik513/web-puasa/internal/constants"
	"github.com/Draconik513/web-puasa/internal/models"
)

func TestCompletionRatio(t *testing.T) {
	tests := []struct {
		name  string
		items []models.WorshipItem
		want  float64
	}{
		{
			name:  "empty list",
			items: nil,
			want:  0,
		},
		{
			name: "all zero points",
			items: []models.WorshipItem{
				{ID: "a", Completed: true},
				{ID: "b"},
			},
			want: 0,
		},
		{
			name: "partial completion",
			items: []models.WorshipItem{
				{ID: "a", Points: 30, Completed: true},
				{ID: "b", Points: 70},
			},
			want: 0.3,
		},
		{
			name: "all completed",
			items: []models.WorshipItem{
				{ID: "a", Points: 25, Completed: true},
				{ID: "b", Points: 75, Completed: true},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletionRatio(tt.items)
			if got != tt.want {
				t.Errorf("CompletionRatio() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("CompletionRatio() = %v, outside [0,1]", got)
			}
		})
	}
}

func TestCompletionRatio_ExactValueRetained(t *testing.T) {
	// 73 of 100 points: the ratio is exact, rounding happens in Percent.
	items := []models.WorshipItem{
		{ID: "a", Points: 73, Completed: true},
		{ID: "b", Points: 27},
	}
	ratio := CompletionRatio(items)
	if ratio != 0.73 {
		t.Errorf("CompletionRatio() = %v, want 0.73", ratio)
	}
	if Percent(ratio) != 73 {
		t.Errorf("Percent(%v) = %d, want 73", ratio, Percent(ratio))
	}
}

func TestRecomputeDay(t *testing.T) {
	week := models.Week{
		ID:        "week-1",
		StartDate: "2026-02-18",
		EndDate:   "2026-02-24",
		Days: []models.DayProgress{
			{Date: "2026-02-18", Progress: 40},
			{Date: "2026-02-19", Progress: 60},
		},
	}

	// Existing day is replaced, not duplicated
	RecomputeDay(&week, "2026-02-19", 80)
	if len(week.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(week.Days))
	}
	if week.Days[1].Progress != 80 {
		t.Errorf("expected progress 80, got %d", week.Days[1].Progress)
	}

	// A new day is appended in date order
	RecomputeDay(&week, "2026-02-20", 50)
	if len(week.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(week.Days))
	}
	for i := 1; i < len(week.Days); i++ {
		if week.Days[i-1].Date >= week.Days[i].Date {
			t.Errorf("days out of order: %s before %s", week.Days[i-1].Date, week.Days[i].Date)
		}
	}
}

func TestSummarizeWeek(t *testing.T) {
	week := models.Week{
		StartDate: "2026-02-18",
		EndDate:   "2026-02-24",
		Days: []models.DayProgress{
			{Date: "2026-02-18", Progress: 80},
			{Date: "2026-02-19", Progress: 60},
			{Date: "2026-02-20", Progress: 40},
		},
	}

	s := SummarizeWeek(week, "2026-02-20")
	if s.Average != 60 {
		t.Errorf("Average = %v, want 60", s.Average)
	}
	if s.BestDay != 80 || s.BestDate != "2026-02-18" {
		t.Errorf("BestDay = %d (%s), want 80 (2026-02-18)", s.BestDay, s.BestDate)
	}
	if s.ProductiveDays != 1 {
		t.Errorf("ProductiveDays = %d, want 1", s.ProductiveDays)
	}
	if s.NeedsImprovement != 1 {
		t.Errorf("NeedsImprovement = %d, want 1", s.NeedsImprovement)
	}
}

func TestSummarizeWeek_ExcludesFutureDays(t *testing.T) {
	week := models.Week{
		StartDate: "2026-02-18",
		EndDate:   "2026-02-24",
		Days: []models.DayProgress{
			{Date: "2026-02-18", Progress: 80},
			{Date: "2026-02-19", Progress: 60},
			{Date: "2026-02-20", Progress: 40},
			{Date: "2026-02-22", Progress: 100}, // future relative to "today"
		},
	}

	s := SummarizeWeek(week, "2026-02-20")
	if s.PastDays != 3 {
		t.Errorf("PastDays = %d, want 3", s.PastDays)
	}
	if s.Average != 60 {
		t.Errorf("Average = %v, want 60 (future day must be excluded)", s.Average)
	}
}

func TestSummarizeWeek_Empty(t *testing.T) {
	s := SummarizeWeek(models.Week{StartDate: "2026-02-18", EndDate: "2026-02-24"}, "2026-02-20")
	if s.Average != 0 || s.PastDays != 0 {
		t.Errorf("empty week should average 0, got %v over %d days", s.Average, s.PastDays)
	}
}

func TestMonthlySeries(t *testing.T) {
	weeks := []models.Week{
		{
			StartDate: "2026-02-18",
			EndDate:   "2026-02-24",
			Days: []models.DayProgress{
				{Date: "2026-02-18", Progress: 50},
				{Date: "2026-02-20", Progress: 90},
			},
		},
	}

	series := MonthlySeries(weeks, constants.PeriodStart, constants.PeriodDays)
	if len(series) != 30 {
		t.Fatalf("expected 30 values, got %d", len(series))
	}
	if series[0] != 50 {
		t.Errorf("day 1 = %d, want 50", series[0])
	}
	if series[1] != 0 {
		t.Errorf("missing day should be 0, got %d", series[1])
	}
	if series[2] != 90 {
		t.Errorf("day 3 = %d, want 90", series[2])
	}
}

func TestFastingDay(t *testing.T) {
	start := constants.PeriodStart
	end := constants.PeriodEnd

	tests := []struct {
		name          string
		now           time.Time
		wantDay       int
		wantRemaining int
	}{
		{"first day", start, 1, 29},
		{"three days before", start.AddDate(0, 0, -3), 0, 3},
		{"mid period", start.AddDate(0, 0, 9), 10, 20},
		{"last day", end, 30, 0},
		{"well past the end", start.AddDate(0, 0, 35), 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, remaining := FastingDay(tt.now, start, end, constants.PeriodDays)
			if day != tt.wantDay || remaining != tt.wantRemaining {
				t.Errorf("FastingDay() = (%d, %d), want (%d, %d)", day, remaining, tt.wantDay, tt.wantRemaining)
			}
		})
	}
}

func TestDateKey_NormalizesZone(t *testing.T) {
	// 18:00 UTC on the 18th is already the 19th in the reference zone.
	utc := time.Date(2026, time.February, 18, 18, 0, 0, 0, time.UTC)
	if got := DateKey(utc); got != "2026-02-19" {
		t.Errorf("DateKey() = %s, want 2026-02-19", got)
	}
}
