package tracker

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/Draconik513/web-puasa/internal/models"
)

// AddCharity records a donation, newest first, and bumps the running
// summary. A non-positive or non-finite amount is rejected before any
// record is touched.
func (s *Service) AddCharity(amount float64, description string) (models.CharityEntry, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return models.CharityEntry{}, InvalidAmountError{Amount: amount}
	}

	entries, err := s.store.GetCharityEntries()
	if err != nil {
		return models.CharityEntry{}, err
	}
	summary, err := s.store.GetCharitySummary()
	if err != nil {
		return models.CharityEntry{}, err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		description = "Sedekah"
	}

	entry := models.CharityEntry{
		ID:          uuid.New().String(),
		Amount:      amount,
		Description: description,
		Date:        s.clock.Now(),
	}

	entries = append([]models.CharityEntry{entry}, entries...)
	summary.Total += amount
	summary.Count++

	if err := s.store.SaveCharityEntries(entries); err != nil {
		return models.CharityEntry{}, err
	}
	if err := s.store.SaveCharitySummary(summary); err != nil {
		return models.CharityEntry{}, err
	}
	return entry, nil
}

// DeleteCharity removes an entry and adjusts the summary, clamping at zero
// so a stale summary can never go negative.
func (s *Service) DeleteCharity(id string) error {
	entries, err := s.store.GetCharityEntries()
	if err != nil {
		return err
	}

	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		amount := entries[i].Amount
		entries = append(entries[:i], entries[i+1:]...)

		summary, err := s.store.GetCharitySummary()
		if err != nil {
			return err
		}
		summary.Total = math.Max(0, summary.Total-amount)
		summary.Count = max(0, summary.Count-1)

		if err := s.store.SaveCharityEntries(entries); err != nil {
			return err
		}
		return s.store.SaveCharitySummary(summary)
	}
	return NotFoundError{Kind: "charity entry", ID: id}
}

// ResetCharity clears all entries and the summary.
func (s *Service) ResetCharity() error {
	if err := s.store.SaveCharityEntries(nil); err != nil {
		return err
	}
	return s.store.SaveCharitySummary(models.CharitySummary{})
}

// CharityEntries returns the recorded donations, newest first.
func (s *Service) CharityEntries() ([]models.CharityEntry, error) {
	return s.store.GetCharityEntries()
}

// CharitySummary returns the running aggregate.
func (s *Service) CharitySummary() (models.CharitySummary, error) {
	return s.store.GetCharitySummary()
}
