package storage

import "github.com/Draconik513/web-puasa/internal/models"

// Provider is the persistence boundary for every tracked record. The core
// never touches files or databases directly; it is handed a Provider so
// tests can swap in a temp-dir store.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Worship checklist
	GetWorshipItems() ([]models.WorshipItem, error)
	SaveWorshipItems([]models.WorshipItem) error

	// Weekly progress
	GetWeeks() ([]models.Week, error)
	SaveWeeks([]models.Week) error

	// Quran target and per-day reading log
	GetQuranProgress() (models.QuranProgress, error)
	SaveQuranProgress(models.QuranProgress) error
	GetDailyReading() (models.DailyReading, error)
	SaveDailyReading(models.DailyReading) error

	// Charity entries and running summary
	GetCharityEntries() ([]models.CharityEntry, error)
	SaveCharityEntries([]models.CharityEntry) error
	GetCharitySummary() (models.CharitySummary, error)
	SaveCharitySummary(models.CharitySummary) error

	// Reflection journal
	GetReflections() ([]models.ReflectionEntry, error)
	SaveReflections([]models.ReflectionEntry) error

	// Last-ten-nights checklist
	GetNightChecklist() (models.NightChecklist, error)
	SaveNightChecklist(models.NightChecklist) error

	// Utils
	GetConfigPath() string
}
