package tracker

import (
	"fmt"
	"time"

	"github.com/Draconik513/web-puasa/internal/constants"
	"github.com/Draconik513/web-puasa/internal/models"
	"github.com/Draconik513/web-puasa/internal/storage"
)

// Service is the single entry point for every mutation and derived read.
// All methods run read-compute-write against the injected store; there is
// no other writer.
type Service struct {
	store storage.Provider
	clock Clock
}

func New(store storage.Provider, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock()
	}
	return &Service{
		store: store,
		clock: clock,
	}
}

func (s *Service) Store() storage.Provider {
	return s.store
}

func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// Today returns the current calendar date key in the reference zone.
func (s *Service) Today() string {
	return DateKey(s.clock.Now())
}

// Load opens the store and seeds any record that is still empty: the
// default checklist on first run, the Quran target, and the week covering
// today once the period has started.
func (s *Service) Load() error {
	if err := s.store.Load(); err != nil {
		return err
	}

	items, err := s.store.GetWorshipItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		if err := s.store.SaveWorshipItems(models.DefaultWorshipItems()); err != nil {
			return fmt.Errorf("failed to seed checklist: %w", err)
		}
	}

	quran, err := s.store.GetQuranProgress()
	if err != nil {
		return err
	}
	if quran.Target == 0 {
		quran = models.QuranProgress{
			PerDay:    constants.DefaultPerDay,
			PerPrayer: constants.DefaultPerPrayer,
			Target:    constants.QuranTarget,
		}
		if err := s.store.SaveQuranProgress(quran); err != nil {
			return fmt.Errorf("failed to seed reading target: %w", err)
		}
	}

	if _, err := s.ensureCurrentWeek(); err != nil {
		return err
	}

	return nil
}

// ensureCurrentWeek returns the week covering today, creating it (and any
// elapsed zero-progress days inside it) on first touch. Outside the
// tracked period it returns nil without error.
func (s *Service) ensureCurrentWeek() (*models.Week, error) {
	today := Midnight(s.clock.Now())
	start := Midnight(constants.PeriodStart)
	if today.Before(start) || today.After(Midnight(constants.PeriodEnd)) {
		return nil, nil
	}

	weeks, err := s.store.GetWeeks()
	if err != nil {
		return nil, err
	}

	todayKey := DateKey(today)
	for i := range weeks {
		if weeks[i].Contains(todayKey) {
			if s.backfillWeek(&weeks[i], today) {
				if err := s.store.SaveWeeks(weeks); err != nil {
					return nil, err
				}
			}
			return &weeks[i], nil
		}
	}

	// Weeks are aligned in seven-day blocks from the period start.
	index := int(today.Sub(start).Hours()/24) / 7
	weekStart := start.AddDate(0, 0, index*7)
	week := models.Week{
		ID:        fmt.Sprintf("week-%d", index+1),
		StartDate: DateKey(weekStart),
		EndDate:   DateKey(weekStart.AddDate(0, 0, 6)),
	}
	s.backfillWeek(&week, today)

	weeks = append(weeks, week)
	if err := s.store.SaveWeeks(weeks); err != nil {
		return nil, err
	}
	return &weeks[len(weeks)-1], nil
}

// backfillWeek adds zero-progress points for every elapsed day of the week
// up to today. Reports whether anything was added.
func (s *Service) backfillWeek(week *models.Week, today time.Time) bool {
	start, err := time.ParseInLocation("2006-01-02", week.StartDate, constants.Zone)
	if err != nil {
		return false
	}

	have := make(map[string]bool, len(week.Days))
	for _, d := range week.Days {
		have[d.Date] = true
	}

	added := false
	for day := start; !day.After(today) && DateKey(day) <= week.EndDate; day = day.AddDate(0, 0, 1) {
		key := DateKey(day)
		if !have[key] {
			RecomputeDay(week, key, 0)
			added = true
		}
	}
	return added
}

// CurrentWeek returns the tracked week covering today, or false when the
// period has not started (or is over and no week matches).
func (s *Service) CurrentWeek() (models.Week, bool, error) {
	weeks, err := s.store.GetWeeks()
	if err != nil {
		return models.Week{}, false, err
	}
	today := s.Today()
	for _, week := range weeks {
		if week.Contains(today) {
			return week, true, nil
		}
	}
	return models.Week{}, false, nil
}

// Weeks returns every tracked week.
func (s *Service) Weeks() ([]models.Week, error) {
	return s.store.GetWeeks()
}

// FastingDay reports today's position in the fixed tracked period.
func (s *Service) FastingDay() (day, remaining int) {
	return FastingDay(s.clock.Now(), constants.PeriodStart, constants.PeriodEnd, constants.PeriodDays)
}

// MonthlySeries returns the 30-value progress series for the period.
func (s *Service) MonthlySeries() ([]int, error) {
	weeks, err := s.store.GetWeeks()
	if err != nil {
		return nil, err
	}
	return MonthlySeries(weeks, constants.PeriodStart, constants.PeriodDays), nil
}

// recordTodayProgress recomputes today's progress point from the given
// checklist snapshot and persists it. Called after every toggle so the
// weekly series always reflects the latest whole-list state.
func (s *Service) recordTodayProgress(items []models.WorshipItem) error {
	week, err := s.ensureCurrentWeek()
	if err != nil || week == nil {
		return err
	}

	weeks, err := s.store.GetWeeks()
	if err != nil {
		return err
	}

	percent := Percent(CompletionRatio(items))
	today := s.Today()
	for i := range weeks {
		if weeks[i].Contains(today) {
			RecomputeDay(&weeks[i], today, percent)
			return s.store.SaveWeeks(weeks)
		}
	}
	return nil
}
