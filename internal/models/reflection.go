package models

import "time"

type Mood string

const (
	MoodExcellent Mood = "excellent"
	MoodGood      Mood = "good"
	MoodCalm      Mood = "calm"
	MoodTired     Mood = "tired"
	MoodSad       Mood = "sad"
)

// MoodInfo carries the presentation metadata for a mood choice.
type MoodInfo struct {
	Mood  Mood
	Icon  string
	Label string
}

// Moods lists the selectable moods in display order.
func Moods() []MoodInfo {
	return []MoodInfo{
		{MoodExcellent, "🌟", "Sangat Baik"},
		{MoodGood, "😊", "Baik"},
		{MoodCalm, "😌", "Tenang"},
		{MoodTired, "😴", "Lelah"},
		{MoodSad, "😔", "Sedih"},
	}
}

// ReflectionEntry is one self-reflection journal entry. Mood and Purity are
// pre-filled from the day's worship ratio but may be overridden before
// saving. The list is append-only, newest first.
type ReflectionEntry struct {
	ID                 string    `json:"id"`
	Date               string    `json:"date"` // YYYY-MM-DD format
	Mood               Mood      `json:"mood"`
	Purity             int       `json:"purity"` // 0-100 self-purity percent
	Note               string    `json:"note"`
	AvoidedTemptations []string  `json:"avoided_temptations"`
	CreatedAt          time.Time `json:"created_at"`
}

// Temptations is the fixed catalogue of avoidable temptations offered on
// the reflection form.
func Temptations() []string {
	return []string{
		"Meninggalkan Sholat",
		"Berkata Kasar",
		"Ghibah (Membicarakan orang lain)",
		"Bohong",
		"Marah berlebihan",
		"Melihat hal haram",
		"Mendengarkan musik haram",
		"Menyakiti orang lain",
	}
}
