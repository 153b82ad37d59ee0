package tracker

import "fmt"

// QuotaNotMetError is returned when the Quran worship item, or the reading
// ritual on a last-ten night, is checked before that day's reading quota is
// met. The attempted mutation is rejected and state is left unchanged.
type QuotaNotMetError struct {
	Date     string
	Read     int
	Required int
}

func (e QuotaNotMetError) Error() string {
	return fmt.Sprintf("reading quota not met for %s: %d of %d pages read", e.Date, e.Read, e.Required)
}

// InvalidAmountError rejects a charity entry with a non-positive amount
// before any record is mutated.
type InvalidAmountError struct {
	Amount float64
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid charity amount: %v", e.Amount)
}

// TargetExceededError signals that the khatam target is already reached.
// It is a soft failure: callers show a notice and nothing is written.
type TargetExceededError struct {
	Target int
}

func (e TargetExceededError) Error() string {
	return fmt.Sprintf("reading target of %d pages already completed", e.Target)
}

// NotFoundError is returned by delete/toggle operations that reference an
// id absent from the relevant list.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// DateUnavailableError rejects edits to a last-ten night that has not
// arrived yet.
type DateUnavailableError struct {
	Date string
}

func (e DateUnavailableError) Error() string {
	return fmt.Sprintf("night %s is not available yet", e.Date)
}
