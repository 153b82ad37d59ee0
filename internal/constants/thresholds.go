package constants

// Quran reading targets. One juz is counted as ten pages; the daily quota
// that gates the "Baca Quran" worship item is a single juz.
const (
	QuranTarget      = 300
	PagesPerJuz      = 10
	DailyPageQuota   = PagesPerJuz
	DefaultPerDay    = 10
	DefaultPerPrayer = 2
)

// Weekly summary thresholds. A day counts as productive at 80% and is
// flagged for improvement below 60%.
const (
	ProductiveDayMin    = 80
	NeedsImprovementMax = 60
)

// On-fire thresholds. These are intentionally different per feature: the
// Quran card lights up at the halfway mark, the worship cards only at 80.
const (
	FireQuranMin   = 50
	FireWeeklyMin  = 80
	FireWorshipMin = 80
)

// Achievement thresholds, compared against current aggregates on every read.
const (
	BadgeWorshipCount    = 70
	BadgeQuranPages      = 100
	BadgeCharityTotal    = 100000
	BadgeReflectionCount = 7
)

// QuickCharityAmounts are the preset donation amounts offered when no
// amount is given on the command line.
var QuickCharityAmounts = []float64{10000, 20000, 50000, 100000, 200000, 500000}
