package tracker

import (
	"time"

	"github.com/Draconik513/web-puasa/internal/constants"
)

// Clock supplies "now" so date-sensitive logic can be pinned in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().In(constants.Zone)
}

// SystemClock returns the wall clock in the reference timezone.
func SystemClock() Clock {
	return systemClock{}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// FixedClock returns a clock frozen at t, for tests.
func FixedClock(t time.Time) Clock {
	return fixedClock{t: t.In(constants.Zone)}
}

// DateKey normalizes a time to its calendar date in the reference zone.
func DateKey(t time.Time) string {
	return t.In(constants.Zone).Format("2006-01-02")
}

// Midnight truncates a time to the start of its calendar day in the
// reference zone.
func Midnight(t time.Time) time.Time {
	t = t.In(constants.Zone)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, constants.Zone)
}
