package tracker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Draconik513/web-puasa/internal/achievements"
	"github.com/Draconik513/web-puasa/internal/models"
)

// SuggestReflection pre-fills a reflection entry for today from the current
// worship completion ratio: the mood band and the self-purity percentage.
// The caller may override any field before submitting.
func (s *Service) SuggestReflection() (models.ReflectionEntry, error) {
	ratio, err := s.WorshipRatio()
	if err != nil {
		return models.ReflectionEntry{}, err
	}
	percent := Percent(ratio)
	return models.ReflectionEntry{
		Date:   s.Today(),
		Mood:   achievements.MoodForProgress(percent),
		Purity: percent,
	}, nil
}

// SubmitReflection appends an entry to the journal, newest first. ID and
// creation time are assigned here.
func (s *Service) SubmitReflection(entry models.ReflectionEntry) (models.ReflectionEntry, error) {
	if entry.Purity < 0 || entry.Purity > 100 {
		return models.ReflectionEntry{}, fmt.Errorf("purity must be within 0-100, got %d", entry.Purity)
	}
	if entry.Date == "" {
		entry.Date = s.Today()
	}
	if entry.Mood == "" {
		entry.Mood = models.MoodGood
	}
	entry.ID = uuid.New().String()
	entry.CreatedAt = s.clock.Now()

	entries, err := s.store.GetReflections()
	if err != nil {
		return models.ReflectionEntry{}, err
	}
	entries = append([]models.ReflectionEntry{entry}, entries...)
	if err := s.store.SaveReflections(entries); err != nil {
		return models.ReflectionEntry{}, err
	}
	return entry, nil
}

// Reflections returns the journal, newest first.
func (s *Service) Reflections() ([]models.ReflectionEntry, error) {
	return s.store.GetReflections()
}
