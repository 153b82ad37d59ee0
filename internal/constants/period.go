package constants

import "time"

// Zone is the single reference timezone for every date-keyed record.
// All calendar comparisons are done after normalizing to this zone so a
// record written just before midnight never lands on the wrong day.
var Zone = time.FixedZone("WIB", 7*60*60)

// Tracked fasting period for 1447H: 18 Feb 2026 through 19 Mar 2026.
var (
	PeriodStart = time.Date(2026, time.February, 18, 0, 0, 0, 0, Zone)
	PeriodEnd   = time.Date(2026, time.March, 19, 0, 0, 0, 0, Zone)

	// LastTenStart is the first of the ten final nights (night 21).
	LastTenStart = time.Date(2026, time.March, 10, 0, 0, 0, 0, Zone)
)

const (
	HijriYear  = 1447
	PeriodDays = 30

	// LastTenNights is the number of nights in the Lailatul Qadar window.
	LastTenNights = 10
)
