package tracker

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Draconik513/web-puasa/internal/constants"
	"github.com/Draconik513/web-puasa/internal/models"
)

// WorshipItems returns the current checklist.
func (s *Service) WorshipItems() ([]models.WorshipItem, error) {
	return s.store.GetWorshipItems()
}

// WorshipRatio returns the exact completion ratio of the checklist.
func (s *Service) WorshipRatio() (float64, error) {
	items, err := s.store.GetWorshipItems()
	if err != nil {
		return 0, err
	}
	return CompletionRatio(items), nil
}

// isQuranItem identifies the seeded reading item that is gated behind the
// daily quota. Custom items are never gated.
func isQuranItem(item models.WorshipItem) bool {
	return item.Category == models.CategoryQuran && !item.Custom
}

// CanCompleteQuranItem reports whether the reading quota for date is met.
func CanCompleteQuranItem(log models.DailyReading, date string) bool {
	return log[date] >= constants.DailyPageQuota
}

// ToggleWorship flips an item's completed flag and re-records today's
// progress point. Completing the Quran item requires today's reading log
// to hold at least one juz; the attempt is otherwise rejected with
// QuotaNotMetError and nothing changes. Un-completing is never gated.
func (s *Service) ToggleWorship(id string) (models.WorshipItem, error) {
	items, err := s.store.GetWorshipItems()
	if err != nil {
		return models.WorshipItem{}, err
	}

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.WorshipItem{}, NotFoundError{Kind: "worship item", ID: id}
	}

	if isQuranItem(items[idx]) && !items[idx].Completed {
		log, err := s.store.GetDailyReading()
		if err != nil {
			return models.WorshipItem{}, err
		}
		today := s.Today()
		if !CanCompleteQuranItem(log, today) {
			return models.WorshipItem{}, QuotaNotMetError{
				Date:     today,
				Read:     log[today],
				Required: constants.DailyPageQuota,
			}
		}
	}

	items[idx].Completed = !items[idx].Completed
	if err := s.store.SaveWorshipItems(items); err != nil {
		return models.WorshipItem{}, err
	}
	if err := s.recordTodayProgress(items); err != nil {
		return models.WorshipItem{}, err
	}
	return items[idx], nil
}

// AddCustomWorship appends a zero-point custom item to the checklist.
func (s *Service) AddCustomWorship(name string) (models.WorshipItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.WorshipItem{}, fmt.Errorf("worship item name must not be empty")
	}

	items, err := s.store.GetWorshipItems()
	if err != nil {
		return models.WorshipItem{}, err
	}

	item := models.WorshipItem{
		ID:       uuid.New().String(),
		Name:     name,
		Category: models.CategoryCustom,
		Custom:   true,
	}
	items = append(items, item)
	if err := s.store.SaveWorshipItems(items); err != nil {
		return models.WorshipItem{}, err
	}
	return item, nil
}

// DeleteWorship removes a custom item. Seeded items cannot be removed.
func (s *Service) DeleteWorship(id string) error {
	items, err := s.store.GetWorshipItems()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		if !items[i].Custom {
			return fmt.Errorf("only custom items can be removed: %s", items[i].Name)
		}
		items = append(items[:i], items[i+1:]...)
		if err := s.store.SaveWorshipItems(items); err != nil {
			return err
		}
		return s.recordTodayProgress(items)
	}
	return NotFoundError{Kind: "worship item", ID: id}
}

// FastingStats summarizes fasting consistency so far, derived from the
// fasting checklist item and the elapsed day count.
type FastingStats struct {
	DaysElapsed int
	MissedDays  int
	Consistency int // percent
}

// FastingConsistency derives fasting statistics for the current day of the
// period. An unchecked fasting item counts today as missed.
func (s *Service) FastingConsistency() (FastingStats, error) {
	items, err := s.store.GetWorshipItems()
	if err != nil {
		return FastingStats{}, err
	}

	day, _ := s.FastingDay()
	stats := FastingStats{DaysElapsed: day}
	if day == 0 {
		return stats, nil
	}

	for _, item := range items {
		if item.Category == models.CategoryFasting && !item.Custom {
			if !item.Completed {
				stats.MissedDays = 1
			}
			break
		}
	}
	stats.Consistency = Percent(float64(day-stats.MissedDays) / float64(day))
	return stats, nil
}
