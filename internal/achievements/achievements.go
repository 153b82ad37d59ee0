// Package achievements maps derived aggregates to unlock states and
// categorical labels. Everything here is stateless: unlocks are recomputed
// from the current aggregates on every read, so an achievement can re-lock
// when its underlying count drops (for example after a reset or deletion).
// Whether that matches user expectations of "monotonic" badges is an open
// question; the behavior is kept as-is.
package achievements

import "github.com/Draconik513/web-puasa/internal/constants"

// Stats carries the current aggregates the evaluator reads.
type Stats struct {
	CompletedWorship int     // completed checklist items, cumulative count
	QuranPages       int     // overall pages read toward the target
	CharityTotal     float64 // sum of recorded donations
	Reflections      int     // journal entries
}

// Achievement is a badge with its unlock state.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Unlocked    bool
}

// Evaluate returns every badge with its unlock state for the given stats.
// Thresholds live in the constants package and are not user-configurable.
func Evaluate(stats Stats) []Achievement {
	return []Achievement{
		{
			ID:          "diligent_worship",
			Name:        "Rajin Ibadah",
			Description: "Menyelesaikan semua ibadah wajib 7 hari berturut-turut",
			Icon:        "🌟",
			Unlocked:    stats.CompletedWorship >= constants.BadgeWorshipCount,
		},
		{
			ID:          "quran_lover",
			Name:        "Pecinta Quran",
			Description: "Membaca 100 halaman Quran",
			Icon:        "📚",
			Unlocked:    stats.QuranPages >= constants.BadgeQuranPages,
		},
		{
			ID:          "generous",
			Name:        "Dermawan",
			Description: "Bersedekah 5 kali dalam seminggu",
			Icon:        "🤲",
			Unlocked:    stats.CharityTotal >= constants.BadgeCharityTotal,
		},
		{
			ID:          "productive_ramadan",
			Name:        "Ramadhan Productive",
			Description: "Produktif setiap hari di bulan Ramadhan",
			Icon:        "🕋",
			Unlocked:    stats.Reflections >= constants.BadgeReflectionCount,
		},
	}
}

// CountUnlocked returns how many badges are unlocked for the given stats.
func CountUnlocked(stats Stats) int {
	count := 0
	for _, a := range Evaluate(stats) {
		if a.Unlocked {
			count++
		}
	}
	return count
}
