package tracker

import (
	"github.com/Draconik513/web-puasa/internal/achievements"
)

// AchievementStats gathers the current aggregates the badge evaluator
// reads. Nothing is cached: deleting records changes the result.
func (s *Service) AchievementStats() (achievements.Stats, error) {
	items, err := s.store.GetWorshipItems()
	if err != nil {
		return achievements.Stats{}, err
	}
	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}

	quran, err := s.store.GetQuranProgress()
	if err != nil {
		return achievements.Stats{}, err
	}
	summary, err := s.store.GetCharitySummary()
	if err != nil {
		return achievements.Stats{}, err
	}
	reflections, err := s.store.GetReflections()
	if err != nil {
		return achievements.Stats{}, err
	}

	return achievements.Stats{
		CompletedWorship: completed,
		QuranPages:       quran.Completed,
		CharityTotal:     summary.Total,
		Reflections:      len(reflections),
	}, nil
}

// Achievements evaluates every badge against the current aggregates.
func (s *Service) Achievements() ([]achievements.Achievement, error) {
	stats, err := s.AchievementStats()
	if err != nil {
		return nil, err
	}
	return achievements.Evaluate(stats), nil
}
