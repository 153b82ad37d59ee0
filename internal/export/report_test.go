package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Draconik513/web-puasa/internal/models"
)

func TestWeeklyReport(t *testing.T) {
	week := models.Week{
		ID:        "week-1",
		StartDate: "2026-02-18",
		EndDate:   "2026-02-24",
		Days: []models.DayProgress{
			{Date: "2026-02-18", Progress: 85},
			{Date: "2026-02-19", Progress: 65},
			{Date: "2026-02-20", Progress: 30},
		},
	}

	var buf bytes.Buffer
	if err := WeeklyReport(&buf, week, "2026-02-20"); err != nil {
		t.Fatalf("WeeklyReport failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"LAPORAN PROGRESS IBADAH MINGGUAN",
		"Ramadhan Journey 1447 H",
		"Periode: 18 Februari 2026 - 24 Februari 2026",
		"Rabu,18 Februari 2026,85%,Baik",
		"Kamis,19 Februari 2026,65%,Cukup",
		"Jumat,20 Februari 2026,30%,Rendah",
		"Sabtu,21 Februari 2026,-,Akan Datang",
		"RINGKASAN",
		"Rata-rata Progress,60%",
		"Hari Terbaik,85%",
		"Hari Produktif,1/3",
		"Perlu Perbaikan,1/3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}

	// 6 header/period rows + 7 day rows + 6 summary rows
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 19 {
		t.Errorf("expected 19 lines, got %d", len(lines))
	}
}

func TestWeeklyReport_RecordedFutureDayStaysUpcoming(t *testing.T) {
	week := models.Week{
		StartDate: "2026-02-18",
		EndDate:   "2026-02-24",
		Days: []models.DayProgress{
			{Date: "2026-02-22", Progress: 100},
		},
	}

	var buf bytes.Buffer
	if err := WeeklyReport(&buf, week, "2026-02-19"); err != nil {
		t.Fatalf("WeeklyReport failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Minggu,22 Februari 2026,-,Akan Datang") {
		t.Errorf("a day after today must render as upcoming\n%s", out)
	}
	if strings.Contains(out, "100%") {
		t.Errorf("future progress leaked into the report\n%s", out)
	}
}

func TestWeeklyReport_MissingDaysCountZero(t *testing.T) {
	week := models.Week{
		StartDate: "2026-02-18",
		EndDate:   "2026-02-24",
		Days: []models.DayProgress{
			{Date: "2026-02-18", Progress: 90},
		},
	}

	var buf bytes.Buffer
	if err := WeeklyReport(&buf, week, "2026-02-19"); err != nil {
		t.Fatalf("WeeklyReport failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Kamis,19 Februari 2026,0%,Rendah") {
		t.Errorf("an unrecorded past day should show 0%%\n%s", out)
	}
}

func TestWeeklyReport_InvalidDates(t *testing.T) {
	var buf bytes.Buffer
	err := WeeklyReport(&buf, models.Week{StartDate: "bogus", EndDate: "2026-02-24"}, "2026-02-20")
	if err == nil {
		t.Error("an invalid start date should fail")
	}
}
