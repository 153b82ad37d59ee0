package models

import "time"

// CharityEntry is a single recorded donation.
type CharityEntry struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// CharitySummary is the running aggregate over all entries, adjusted on
// every add and delete. It must always match a recount of the entry list.
type CharitySummary struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}
