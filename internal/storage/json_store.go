package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Draconik513/web-puasa/internal/models"
)

type Store struct {
	Version        int                     `json:"version"`
	WorshipItems   []models.WorshipItem    `json:"worship_items"`
	Weeks          []models.Week           `json:"weeks"`
	Quran          models.QuranProgress    `json:"quran"`
	DailyReading   models.DailyReading     `json:"daily_reading"`
	CharityEntries []models.CharityEntry   `json:"charity_entries"`
	CharitySummary models.CharitySummary   `json:"charity_summary"`
	Reflections    []models.ReflectionEntry `json:"reflections"`
	Nights         models.NightChecklist   `json:"nights"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = emptyStore()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'puasa init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.DailyReading == nil {
		s.store.DailyReading = make(models.DailyReading)
	}
	if s.store.Nights == nil {
		s.store.Nights = make(models.NightChecklist)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func emptyStore() *Store {
	return &Store{
		Version:      1,
		DailyReading: make(models.DailyReading),
		Nights:       make(models.NightChecklist),
	}
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetWorshipItems() ([]models.WorshipItem, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	items := make([]models.WorshipItem, len(s.store.WorshipItems))
	copy(items, s.store.WorshipItems)
	return items, nil
}

func (s *JSONStore) SaveWorshipItems(items []models.WorshipItem) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.WorshipItems = items
	return s.save()
}

func (s *JSONStore) GetWeeks() ([]models.Week, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	weeks := make([]models.Week, len(s.store.Weeks))
	copy(weeks, s.store.Weeks)
	return weeks, nil
}

func (s *JSONStore) SaveWeeks(weeks []models.Week) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Weeks = weeks
	return s.save()
}

func (s *JSONStore) GetQuranProgress() (models.QuranProgress, error) {
	if err := s.loaded(); err != nil {
		return models.QuranProgress{}, err
	}
	return s.store.Quran, nil
}

func (s *JSONStore) SaveQuranProgress(q models.QuranProgress) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Quran = q
	return s.save()
}

func (s *JSONStore) GetDailyReading() (models.DailyReading, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	log := make(models.DailyReading, len(s.store.DailyReading))
	for k, v := range s.store.DailyReading {
		log[k] = v
	}
	return log, nil
}

func (s *JSONStore) SaveDailyReading(log models.DailyReading) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.DailyReading = log
	return s.save()
}

func (s *JSONStore) GetCharityEntries() ([]models.CharityEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	entries := make([]models.CharityEntry, len(s.store.CharityEntries))
	copy(entries, s.store.CharityEntries)
	return entries, nil
}

func (s *JSONStore) SaveCharityEntries(entries []models.CharityEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.CharityEntries = entries
	return s.save()
}

func (s *JSONStore) GetCharitySummary() (models.CharitySummary, error) {
	if err := s.loaded(); err != nil {
		return models.CharitySummary{}, err
	}
	return s.store.CharitySummary, nil
}

func (s *JSONStore) SaveCharitySummary(summary models.CharitySummary) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.CharitySummary = summary
	return s.save()
}

func (s *JSONStore) GetReflections() ([]models.ReflectionEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	entries := make([]models.ReflectionEntry, len(s.store.Reflections))
	copy(entries, s.store.Reflections)
	return entries, nil
}

func (s *JSONStore) SaveReflections(entries []models.ReflectionEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Reflections = entries
	return s.save()
}

func (s *JSONStore) GetNightChecklist() (models.NightChecklist, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	nights := make(models.NightChecklist, len(s.store.Nights))
	for date, rituals := range s.store.Nights {
		copied := make(map[string]bool, len(rituals))
		for name, done := range rituals {
			copied[name] = done
		}
		nights[date] = copied
	}
	return nights, nil
}

func (s *JSONStore) SaveNightChecklist(nights models.NightChecklist) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Nights = nights
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple puasa processes against the same storage path at the
//     same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
