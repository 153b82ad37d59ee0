package tracker

import (
	"testing"

	"github.com/Draconik513/web-puasa/internal/models"
)

func TestSuggestReflection(t *testing.T) {
	svc := newTestService(t, testNow)

	// 65 of 100 points completed
	for _, id := range []string{"subuh", "dzuhur", "ashar", "maghrib", "isya", "puasa", "tarawih", "dzikir-pagi", "dzikir-petang"} {
		if _, err := svc.ToggleWorship(id); err != nil {
			t.Fatalf("toggle %s failed: %v", id, err)
		}
	}

	ratio, _ := svc.WorshipRatio()
	want := Percent(ratio)

	entry, err := svc.SuggestReflection()
	if err != nil {
		t.Fatalf("SuggestReflection failed: %v", err)
	}
	if entry.Purity != want {
		t.Errorf("suggested purity = %d, want %d", entry.Purity, want)
	}
	if entry.Date != "2026-02-20" {
		t.Errorf("suggested date = %s, want today", entry.Date)
	}
	if entry.Mood != models.MoodCalm {
		t.Errorf("suggested mood = %s, want %s at 65%%", entry.Mood, models.MoodCalm)
	}
}

func TestSubmitReflection(t *testing.T) {
	svc := newTestService(t, testNow)

	first, err := svc.SubmitReflection(models.ReflectionEntry{
		Mood:   models.MoodGood,
		Purity: 80,
		Note:   "Alhamdulillah",
	})
	if err != nil {
		t.Fatalf("SubmitReflection failed: %v", err)
	}
	if first.ID == "" || first.CreatedAt.IsZero() {
		t.Error("submitted entry should get an ID and timestamp")
	}
	if first.Date != "2026-02-20" {
		t.Errorf("blank date should default to today, got %s", first.Date)
	}

	second, err := svc.SubmitReflection(models.ReflectionEntry{Purity: 60})
	if err != nil {
		t.Fatalf("SubmitReflection failed: %v", err)
	}
	if second.Mood != models.MoodGood {
		t.Errorf("blank mood should default to good, got %s", second.Mood)
	}

	entries, _ := svc.Reflections()
	if len(entries) != 2 || entries[0].ID != second.ID {
		t.Error("journal should be newest first")
	}
}

func TestSubmitReflection_RejectsBadPurity(t *testing.T) {
	svc := newTestService(t, testNow)

	for _, purity := range []int{-1, 101} {
		if _, err := svc.SubmitReflection(models.ReflectionEntry{Purity: purity}); err == nil {
			t.Errorf("purity %d should be rejected", purity)
		}
	}
	entries, _ := svc.Reflections()
	if len(entries) != 0 {
		t.Errorf("rejected entries must not be stored, got %d", len(entries))
	}
}
