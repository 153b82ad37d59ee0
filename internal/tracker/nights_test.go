package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/Draconik513/web-puasa/internal/constants"
	"github.com/Draconik513/web-puasa/internal/models"
)

// third night of the window
var nightsNow = time.Date(2026, time.March, 12, 21, 0, 0, 0, constants.Zone)

func TestNightDates(t *testing.T) {
	dates := NightDates()
	if len(dates) != 10 {
		t.Fatalf("expected 10 dates, got %d", len(dates))
	}
	if dates[0] != "2026-03-10" || dates[9] != "2026-03-19" {
		t.Errorf("window = %s..%s, want 2026-03-10..2026-03-19", dates[0], dates[9])
	}
}

func TestSetNightRitual(t *testing.T) {
	svc := newTestService(t, nightsNow)

	if err := svc.SetNightRitual("2026-03-10", models.RitualTarawih, true); err != nil {
		t.Fatalf("checking a past night failed: %v", err)
	}

	nights, _ := svc.NightChecklist()
	if !nights["2026-03-10"][models.RitualTarawih] {
		t.Error("ritual flag not persisted")
	}

	tests := []struct {
		name   string
		date   string
		ritual string
		check  func(err error) bool
	}{
		{
			"unknown night", "2026-03-01", models.RitualFasting,
			func(err error) bool { var e NotFoundError; return errors.As(err, &e) },
		},
		{
			"unknown ritual", "2026-03-10", "sholawat",
			func(err error) bool { var e NotFoundError; return errors.As(err, &e) },
		},
		{
			"future night", "2026-03-15", models.RitualFasting,
			func(err error) bool { var e DateUnavailableError; return errors.As(err, &e) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SetNightRitual(tt.date, tt.ritual, true)
			if !tt.check(err) {
				t.Errorf("SetNightRitual(%s, %s) error = %v", tt.date, tt.ritual, err)
			}
		})
	}
}

func TestSetNightRitual_QuranGate(t *testing.T) {
	svc := newTestService(t, nightsNow)

	err := svc.SetNightRitual("2026-03-12", models.RitualQuran, true)
	var quotaErr QuotaNotMetError
	if !errors.As(err, &quotaErr) {
		t.Fatalf("expected QuotaNotMetError without pages logged, got %v", err)
	}

	if _, err := svc.AddPages(constants.DailyPageQuota); err != nil {
		t.Fatalf("AddPages failed: %v", err)
	}
	if err := svc.SetNightRitual("2026-03-12", models.RitualQuran, true); err != nil {
		t.Fatalf("checking with quota met failed: %v", err)
	}

	// The gate is per date: the 12th's pages do not unlock the 10th.
	err = svc.SetNightRitual("2026-03-10", models.RitualQuran, true)
	if !errors.As(err, &quotaErr) {
		t.Errorf("expected QuotaNotMetError for a different date, got %v", err)
	}

	// Unchecking is never gated.
	if err := svc.SetNightRitual("2026-03-12", models.RitualQuran, false); err != nil {
		t.Errorf("unchecking failed: %v", err)
	}
}

func TestNightProgress(t *testing.T) {
	nights := models.NightChecklist{
		"2026-03-10": {
			models.RitualFasting: true,
			models.RitualPrayers: true,
		},
	}
	log := models.DailyReading{}

	if got := NightProgress(nights, log, "2026-03-10"); got != 50 {
		t.Errorf("NightProgress = %d, want 50", got)
	}
	if got := NightProgress(nights, log, "2026-03-11"); got != 0 {
		t.Errorf("untouched night = %d, want 0", got)
	}

	// A checked reading ritual without the quota behind it does not count.
	nights["2026-03-10"][models.RitualQuran] = true
	if got := NightProgress(nights, log, "2026-03-10"); got != 50 {
		t.Errorf("ungated reading counted: %d, want 50", got)
	}
	log["2026-03-10"] = constants.DailyPageQuota
	if got := NightProgress(nights, log, "2026-03-10"); got != 75 {
		t.Errorf("NightProgress = %d, want 75", got)
	}
}

func TestSummarizeNights(t *testing.T) {
	svc := newTestService(t, nightsNow)

	summary, err := svc.SummarizeNights()
	if err != nil {
		t.Fatalf("SummarizeNights failed: %v", err)
	}
	if summary.Perfect {
		t.Error("an untouched window must not be perfect")
	}
	if summary.Recorded != 0 || summary.Average != 0 {
		t.Errorf("empty window summary = %+v", summary)
	}

	if err := svc.SetNightRitual("2026-03-10", models.RitualFasting, true); err != nil {
		t.Fatalf("SetNightRitual failed: %v", err)
	}
	summary, _ = svc.SummarizeNights()
	if summary.Recorded != 1 {
		t.Errorf("Recorded = %d, want 1", summary.Recorded)
	}
	if summary.Progress["2026-03-10"] != 25 {
		t.Errorf("night progress = %d, want 25", summary.Progress["2026-03-10"])
	}
	if summary.Perfect {
		t.Error("one ritual on one night is not perfect")
	}
}
