package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/Draconik513/web-puasa/internal/models"
)

// Storage keys, one per tracked entity.
const (
	keyWorshipItems   = "worship_items"
	keyWeeks          = "weeks"
	keyQuran          = "quran"
	keyDailyReading   = "daily_reading"
	keyCharityEntries = "charity_entries"
	keyCharitySummary = "charity_summary"
	keyReflections    = "reflections"
	keyNights         = "nights"
)

// SQLiteStore keeps each record under its own key in a single key/value
// table, with JSON values. It behaves identically to JSONStore.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'puasa init' first")
	}
	return s.open()
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS records (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// getRecord unmarshals the value stored under key into out. A missing key
// leaves out untouched so callers get their zero value as the default.
func (s *SQLiteStore) getRecord(key string, out any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	var raw string
	err := s.db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) setRecord(key string, value any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}

	_, err = s.db.Exec(`INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(raw))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetWorshipItems() ([]models.WorshipItem, error) {
	var items []models.WorshipItem
	err := s.getRecord(keyWorshipItems, &items)
	return items, err
}

func (s *SQLiteStore) SaveWorshipItems(items []models.WorshipItem) error {
	return s.setRecord(keyWorshipItems, items)
}

func (s *SQLiteStore) GetWeeks() ([]models.Week, error) {
	var weeks []models.Week
	err := s.getRecord(keyWeeks, &weeks)
	return weeks, err
}

func (s *SQLiteStore) SaveWeeks(weeks []models.Week) error {
	return s.setRecord(keyWeeks, weeks)
}

func (s *SQLiteStore) GetQuranProgress() (models.QuranProgress, error) {
	var q models.QuranProgress
	err := s.getRecord(keyQuran, &q)
	return q, err
}

func (s *SQLiteStore) SaveQuranProgress(q models.QuranProgress) error {
	return s.setRecord(keyQuran, q)
}

func (s *SQLiteStore) GetDailyReading() (models.DailyReading, error) {
	log := make(models.DailyReading)
	err := s.getRecord(keyDailyReading, &log)
	return log, err
}

func (s *SQLiteStore) SaveDailyReading(log models.DailyReading) error {
	return s.setRecord(keyDailyReading, log)
}

func (s *SQLiteStore) GetCharityEntries() ([]models.CharityEntry, error) {
	var entries []models.CharityEntry
	err := s.getRecord(keyCharityEntries, &entries)
	return entries, err
}

func (s *SQLiteStore) SaveCharityEntries(entries []models.CharityEntry) error {
	return s.setRecord(keyCharityEntries, entries)
}

func (s *SQLiteStore) GetCharitySummary() (models.CharitySummary, error) {
	var summary models.CharitySummary
	err := s.getRecord(keyCharitySummary, &summary)
	return summary, err
}

func (s *SQLiteStore) SaveCharitySummary(summary models.CharitySummary) error {
	return s.setRecord(keyCharitySummary, summary)
}

func (s *SQLiteStore) GetReflections() ([]models.ReflectionEntry, error) {
	var entries []models.ReflectionEntry
	err := s.getRecord(keyReflections, &entries)
	return entries, err
}

func (s *SQLiteStore) SaveReflections(entries []models.ReflectionEntry) error {
	return s.setRecord(keyReflections, entries)
}

func (s *SQLiteStore) GetNightChecklist() (models.NightChecklist, error) {
	nights := make(models.NightChecklist)
	err := s.getRecord(keyNights, &nights)
	return nights, err
}

func (s *SQLiteStore) SaveNightChecklist(nights models.NightChecklist) error {
	return s.setRecord(keyNights, nights)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
