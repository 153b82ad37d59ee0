package tracker

import (
	"fmt"

	"github.com/Draconik513/web-puasa/internal/constants"
	"github.com/Draconik513/web-puasa/internal/models"
)

// ReadingResult describes what a single AddPages call changed, so the
// caller can raise each notice exactly once instead of re-deriving it on
// every render.
type ReadingResult struct {
	Added         int
	Completed     int // overall pages after the add, capped at target
	TodayPages    int // today's cumulative log, uncapped
	JuzToday      int // completed juz count for today
	NewJuz        int // juz boundaries crossed by this add
	Khatam        bool
	AutoCompleted bool // the Quran checklist item was auto-checked
}

// QuranProgress returns the stored khatam target state.
func (s *Service) QuranProgress() (models.QuranProgress, error) {
	return s.store.GetQuranProgress()
}

// DailyReading returns the per-day reading log.
func (s *Service) DailyReading() (models.DailyReading, error) {
	return s.store.GetDailyReading()
}

// TodayReading returns the number of pages logged today.
func (s *Service) TodayReading() (int, error) {
	log, err := s.store.GetDailyReading()
	if err != nil {
		return 0, err
	}
	return log[s.Today()], nil
}

// AddPages logs pages read now. The overall count is capped at the target
// while the daily log is not. Crossing a juz boundary for the day
// auto-checks the Quran checklist item (one-directionally) and is reported
// in the result. Once the target is reached further calls return
// TargetExceededError without touching any record.
func (s *Service) AddPages(pages int) (ReadingResult, error) {
	if pages <= 0 {
		return ReadingResult{}, fmt.Errorf("pages must be positive, got %d", pages)
	}

	quran, err := s.store.GetQuranProgress()
	if err != nil {
		return ReadingResult{}, err
	}
	if quran.Completed >= quran.Target {
		return ReadingResult{}, TargetExceededError{Target: quran.Target}
	}

	log, err := s.store.GetDailyReading()
	if err != nil {
		return ReadingResult{}, err
	}

	today := s.Today()
	prevToday := log[today]
	newToday := prevToday + pages

	prevCompleted := quran.Completed
	quran.Completed = min(quran.Completed+pages, quran.Target)
	log[today] = newToday

	if err := s.store.SaveQuranProgress(quran); err != nil {
		return ReadingResult{}, err
	}
	if err := s.store.SaveDailyReading(log); err != nil {
		return ReadingResult{}, err
	}

	result := ReadingResult{
		Added:      pages,
		Completed:  quran.Completed,
		TodayPages: newToday,
		JuzToday:   newToday / constants.PagesPerJuz,
		NewJuz:     newToday/constants.PagesPerJuz - prevToday/constants.PagesPerJuz,
		Khatam:     prevCompleted < quran.Target && quran.Completed >= quran.Target,
	}

	// Crossing the daily quota force-completes the checklist item. The flag
	// is only ever set here, never cleared.
	if prevToday < constants.DailyPageQuota && newToday >= constants.DailyPageQuota {
		autoCompleted, err := s.autoCompleteQuranItem()
		if err != nil {
			return ReadingResult{}, err
		}
		result.AutoCompleted = autoCompleted
	}

	return result, nil
}

func (s *Service) autoCompleteQuranItem() (bool, error) {
	items, err := s.store.GetWorshipItems()
	if err != nil {
		return false, err
	}
	for i := range items {
		if !isQuranItem(items[i]) || items[i].Completed {
			continue
		}
		items[i].Completed = true
		if err := s.store.SaveWorshipItems(items); err != nil {
			return false, err
		}
		return true, s.recordTodayProgress(items)
	}
	return false, nil
}

// ResetQuran clears the overall count and the daily log. The target and
// per-session increments are kept.
func (s *Service) ResetQuran() error {
	quran, err := s.store.GetQuranProgress()
	if err != nil {
		return err
	}
	quran.Completed = 0
	if err := s.store.SaveQuranProgress(quran); err != nil {
		return err
	}
	return s.store.SaveDailyReading(make(models.DailyReading))
}
