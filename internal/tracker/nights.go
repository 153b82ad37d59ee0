package tracker

import (
	"math"

	"github.com/Draconik513/web-puasa/internal/constants"
	"github.com/Draconik513/web-puasa/internal/models"
)

// NightDates returns the ten fixed dates of the Lailatul Qadar window in
// order, nights 21 through 30.
func NightDates() []string {
	dates := make([]string, 0, constants.LastTenNights)
	for i := 0; i < constants.LastTenNights; i++ {
		dates = append(dates, DateKey(constants.LastTenStart.AddDate(0, 0, i)))
	}
	return dates
}

func isNightDate(date string) bool {
	for _, d := range NightDates() {
		if d == date {
			return true
		}
	}
	return false
}

// NightChecklist returns the stored per-night ritual flags.
func (s *Service) NightChecklist() (models.NightChecklist, error) {
	return s.store.GetNightChecklist()
}

// SetNightRitual checks or unchecks a ritual for one of the last ten
// nights. A night is only editable once its date has arrived, and the
// reading ritual can only be checked once that date's log holds a full juz.
// Unchecking is never gated.
func (s *Service) SetNightRitual(date, ritual string, done bool) error {
	if !isNightDate(date) {
		return NotFoundError{Kind: "night", ID: date}
	}

	known := false
	for _, name := range models.NightRituals() {
		if name == ritual {
			known = true
			break
		}
	}
	if !known {
		return NotFoundError{Kind: "ritual", ID: ritual}
	}

	if date > s.Today() {
		return DateUnavailableError{Date: date}
	}

	if done && ritual == models.RitualQuran {
		log, err := s.store.GetDailyReading()
		if err != nil {
			return err
		}
		if !CanCompleteQuranItem(log, date) {
			return QuotaNotMetError{
				Date:     date,
				Read:     log[date],
				Required: constants.DailyPageQuota,
			}
		}
	}

	nights, err := s.store.GetNightChecklist()
	if err != nil {
		return err
	}
	if nights[date] == nil {
		nights[date] = make(map[string]bool)
	}
	nights[date][ritual] = done
	return s.store.SaveNightChecklist(nights)
}

// NightProgress derives a night's completion percentage over the four
// rituals. The reading ritual only counts when that date's quota is also
// met, mirroring the gate it sits behind.
func NightProgress(nights models.NightChecklist, log models.DailyReading, date string) int {
	rituals := nights[date]
	if len(rituals) == 0 {
		return 0
	}

	names := models.NightRituals()
	done := 0
	for _, name := range names {
		if !rituals[name] {
			continue
		}
		if name == models.RitualQuran && !CanCompleteQuranItem(log, date) {
			continue
		}
		done++
	}
	return int(math.Round(float64(done) / float64(len(names)) * 100))
}

// NightsSummary is the derived state of the whole window.
type NightsSummary struct {
	Progress map[string]int // per-night percentage
	Average  int
	Recorded int // nights with at least one flag set
	Perfect  bool
}

// SummarizeNights derives the window aggregate. Perfect requires every
// night at 100 and at least one night actually recorded, so an untouched
// checklist is never vacuously perfect.
func (s *Service) SummarizeNights() (NightsSummary, error) {
	nights, err := s.store.GetNightChecklist()
	if err != nil {
		return NightsSummary{}, err
	}
	log, err := s.store.GetDailyReading()
	if err != nil {
		return NightsSummary{}, err
	}

	summary := NightsSummary{Progress: make(map[string]int)}
	sum := 0
	for _, date := range NightDates() {
		p := NightProgress(nights, log, date)
		summary.Progress[date] = p
		sum += p
		if len(nights[date]) > 0 {
			summary.Recorded++
		}
	}
	summary.Average = int(math.Round(float64(sum) / float64(constants.LastTenNights)))
	summary.Perfect = summary.Average == 100 && summary.Recorded > 0
	return summary, nil
}
