package achievements

import (
	"github.com/Draconik513/web-puasa/internal/constants"
	"github.com/Draconik513/web-puasa/internal/models"
)

// MoodForProgress maps a worship completion percentage to the suggested
// reflection mood. These bands (90/70/50/30) are NOT the same as the color
// bands below; the two scales are intentionally distinct.
func MoodForProgress(percent int) models.Mood {
	switch {
	case percent >= 90:
		return models.MoodExcellent
	case percent >= 70:
		return models.MoodGood
	case percent >= 50:
		return models.MoodCalm
	case percent >= 30:
		return models.MoodTired
	default:
		return models.MoodSad
	}
}

// Band is the five-tier color scale used for progress displays.
type Band int

const (
	BandRed Band = iota
	BandOrange
	BandYellow
	BandEmerald
	BandGreen
)

// ColorBand maps a percentage to its display tier at 80/60/40/20.
func ColorBand(percent int) Band {
	switch {
	case percent >= 80:
		return BandGreen
	case percent >= 60:
		return BandEmerald
	case percent >= 40:
		return BandYellow
	case percent >= 20:
		return BandOrange
	default:
		return BandRed
	}
}

// ReportLabel is the qualitative day label used in the weekly report.
func ReportLabel(percent int) string {
	switch {
	case percent >= 80:
		return "Baik"
	case percent >= 60:
		return "Cukup"
	case percent >= 40:
		return "Kurang"
	default:
		return "Rendah"
	}
}

// On-fire states. Thresholds differ per feature and are kept that way.

func QuranOnFire(percent float64) bool {
	return percent >= constants.FireQuranMin
}

func WeeklyOnFire(average float64) bool {
	return average >= constants.FireWeeklyMin
}

func WorshipOnFire(percent int) bool {
	return percent >= constants.FireWorshipMin
}
