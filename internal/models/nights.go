package models

// Ritual names tracked per night during the last ten nights.
const (
	RitualFasting = "Puasa"
	RitualPrayers = "Sholat Lima Waktu"
	RitualTarawih = "Sholat Tarawih"
	RitualQuran   = "Baca Quran 1 Juz"
)

// NightRituals lists the fixed four rituals in display order.
func NightRituals() []string {
	return []string{RitualFasting, RitualPrayers, RitualTarawih, RitualQuran}
}

// NightChecklist maps a calendar date (YYYY-MM-DD) within the last-ten
// window to the per-ritual completion flags for that night.
type NightChecklist map[string]map[string]bool
