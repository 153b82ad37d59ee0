// Package export renders already-derived weekly data as a flat CSV report.
// It performs no computation of its own beyond formatting.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/Draconik513/web-puasa/internal/achievements"
	"github.com/Draconik513/web-puasa/internal/constants"
	"github.com/Draconik513/web-puasa/internal/models"
	"github.com/Draconik513/web-puasa/internal/tracker"
)

var weekdayNames = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

func longDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// WeeklyReport writes the progress report for one week as CSV: a titled
// header, one row per day of the week, and a summary block. Days after
// today are rendered as upcoming with a placeholder percentage.
func WeeklyReport(w io.Writer, week models.Week, today string) error {
	start, err := time.ParseInLocation("2006-01-02", week.StartDate, constants.Zone)
	if err != nil {
		return fmt.Errorf("invalid week start date: %w", err)
	}
	end, err := time.ParseInLocation("2006-01-02", week.EndDate, constants.Zone)
	if err != nil {
		return fmt.Errorf("invalid week end date: %w", err)
	}

	byDate := make(map[string]int, len(week.Days))
	for _, day := range week.Days {
		byDate[day.Date] = day.Progress
	}

	cw := csv.NewWriter(w)
	rows := [][]string{
		{"LAPORAN PROGRESS IBADAH MINGGUAN"},
		{fmt.Sprintf("Ramadhan Journey %d H", constants.HijriYear)},
		{""},
		{fmt.Sprintf("Periode: %s - %s", longDate(start), longDate(end))},
		{""},
		{"Hari", "Tanggal", "Progress", "Status"},
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := tracker.DateKey(day)
		if key > today {
			rows = append(rows, []string{weekdayNames[day.Weekday()], longDate(day), "-", "Akan Datang"})
			continue
		}
		progress := byDate[key]
		rows = append(rows, []string{
			weekdayNames[day.Weekday()],
			longDate(day),
			fmt.Sprintf("%d%%", progress),
			achievements.ReportLabel(progress),
		})
	}

	summary := tracker.SummarizeWeek(week, today)
	rows = append(rows,
		[]string{""},
		[]string{"RINGKASAN"},
		[]string{"Rata-rata Progress", fmt.Sprintf("%d%%", int(math.Round(summary.Average)))},
		[]string{"Hari Terbaik", fmt.Sprintf("%d%%", summary.BestDay)},
		[]string{"Hari Produktif", fmt.Sprintf("%d/%d", summary.ProductiveDays, summary.PastDays)},
		[]string{"Perlu Perbaikan", fmt.Sprintf("%d/%d", summary.NeedsImprovement, summary.PastDays)},
	)

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
