package tracker

import (
	"errors"
	"testing"

	"github.com/Draconik513/web-puasa/internal/constants"
)

func TestAddPages_AccumulatesAndLogs(t *testing.T) {
	svc := newTestService(t, testNow)

	res, err := svc.AddPages(4)
	if err != nil {
		t.Fatalf("AddPages failed: %v", err)
	}
	if res.Completed != 4 || res.TodayPages != 4 {
		t.Errorf("got completed=%d today=%d, want 4/4", res.Completed, res.TodayPages)
	}
	if res.NewJuz != 0 || res.AutoCompleted {
		t.Errorf("4 pages should cross nothing: %+v", res)
	}

	res, err = svc.AddPages(3)
	if err != nil {
		t.Fatalf("AddPages failed: %v", err)
	}
	if res.Completed != 7 || res.TodayPages != 7 {
		t.Errorf("got completed=%d today=%d, want 7/7", res.Completed, res.TodayPages)
	}
}

func TestAddPages_RejectsNonPositive(t *testing.T) {
	svc := newTestService(t, testNow)

	for _, pages := range []int{0, -5} {
		if _, err := svc.AddPages(pages); err == nil {
			t.Errorf("AddPages(%d) should fail", pages)
		}
	}
}

func TestAddPages_AutoCompletesQuranItem(t *testing.T) {
	svc := newTestService(t, testNow)

	// 8 pages: below the quota, nothing checked
	if _, err := svc.AddPages(8); err != nil {
		t.Fatalf("AddPages failed: %v", err)
	}
	log, err := svc.DailyReading()
	if err != nil {
		t.Fatalf("DailyReading failed: %v", err)
	}
	if CanCompleteQuranItem(log, svc.Today()) {
		t.Error("quota should not be met at 8 pages")
	}

	// 4 more crosses the boundary exactly once
	res, err := svc.AddPages(4)
	if err != nil {
		t.Fatalf("AddPages failed: %v", err)
	}
	if !res.AutoCompleted {
		t.Error("crossing the quota should auto-complete the checklist item")
	}
	if res.NewJuz != 1 || res.JuzToday != 1 {
		t.Errorf("NewJuz=%d JuzToday=%d, want 1/1", res.NewJuz, res.JuzToday)
	}

	items, _ := svc.WorshipItems()
	for _, item := range items {
		if item.ID == "quran" && !item.Completed {
			t.Error("Baca Quran should be checked after the quota is crossed")
		}
	}

	// Further adds never re-fire the auto-complete
	res, err = svc.AddPages(10)
	if err != nil {
		t.Fatalf("AddPages failed: %v", err)
	}
	if res.AutoCompleted {
		t.Error("auto-complete must fire only on the crossing add")
	}
}

func TestAddPages_CapsAtTarget(t *testing.T) {
	svc := newTestService(t, testNow)

	res, err := svc.AddPages(constants.QuranTarget + 50)
	if err != nil {
		t.Fatalf("AddPages failed: %v", err)
	}
	if res.Completed != constants.QuranTarget {
		t.Errorf("Completed = %d, want cap at %d", res.Completed, constants.QuranTarget)
	}
	if !res.Khatam {
		t.Error("reaching the target should report khatam")
	}
	// The daily log keeps the true amount
	if res.TodayPages != constants.QuranTarget+50 {
		t.Errorf("TodayPages = %d, want %d", res.TodayPages, constants.QuranTarget+50)
	}

	_, err = svc.AddPages(1)
	var exceeded TargetExceededError
	if !errors.As(err, &exceeded) {
		t.Errorf("expected TargetExceededError after khatam, got %v", err)
	}

	quran, _ := svc.QuranProgress()
	if quran.Completed != constants.QuranTarget {
		t.Errorf("rejected add must not move the count: %d", quran.Completed)
	}
}

func TestAddPages_KhatamReportedOnce(t *testing.T) {
	svc := newTestService(t, testNow)

	res, err := svc.AddPages(constants.QuranTarget - 1)
	if err != nil {
		t.Fatalf("AddPages failed: %v", err)
	}
	if res.Khatam {
		t.Error("one page short is not khatam")
	}

	res, err = svc.AddPages(1)
	if err != nil {
		t.Fatalf("AddPages failed: %v", err)
	}
	if !res.Khatam {
		t.Error("the finishing page should report khatam")
	}
}

func TestResetQuran(t *testing.T) {
	svc := newTestService(t, testNow)

	if _, err := svc.AddPages(25); err != nil {
		t.Fatalf("AddPages failed: %v", err)
	}
	if err := svc.ResetQuran(); err != nil {
		t.Fatalf("ResetQuran failed: %v", err)
	}

	quran, _ := svc.QuranProgress()
	if quran.Completed != 0 {
		t.Errorf("Completed = %d after reset, want 0", quran.Completed)
	}
	if quran.Target != constants.QuranTarget {
		t.Errorf("reset must keep the target, got %d", quran.Target)
	}
	log, _ := svc.DailyReading()
	if len(log) != 0 {
		t.Errorf("daily log should be empty after reset, got %d entries", len(log))
	}
}
