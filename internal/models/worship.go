package models

type WorshipCategory string

const (
	CategoryPrayer         WorshipCategory = "sholat"
	CategoryPrayerOptional WorshipCategory = "sholat-sunnah"
	CategoryFasting        WorshipCategory = "puasa"
	CategoryQuran          WorshipCategory = "quran"
	CategoryRemembrance    WorshipCategory = "dzikir"
	CategoryCharity        WorshipCategory = "sedekah"
	CategoryCustom         WorshipCategory = "custom"
)

// WorshipItem is a single trackable ritual on the daily checklist. Points
// are fixed at creation and weight the item in the completion ratio.
type WorshipItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Completed bool            `json:"completed"`
	Wajib     bool            `json:"wajib"`
	Category  WorshipCategory `json:"category"`
	Time      string          `json:"time,omitempty"` // HH:MM schedule hint
	Points    int             `json:"points"`
	Custom    bool            `json:"custom,omitempty"`
}

// DefaultWorshipItems is the seed checklist, written once when the stored
// list is empty. Total weight is 100 points.
func DefaultWorshipItems() []WorshipItem {
	return []WorshipItem{
		{ID: "subuh", Name: "Sholat Subuh", Wajib: true, Category: CategoryPrayer, Time: "04:30", Points: 6},
		{ID: "dzuhur", Name: "Sholat Dzuhur", Wajib: true, Category: CategoryPrayer, Time: "12:00", Points: 6},
		{ID: "ashar", Name: "Sholat Ashar", Wajib: true, Category: CategoryPrayer, Time: "15:30", Points: 6},
		{ID: "maghrib", Name: "Sholat Maghrib", Wajib: true, Category: CategoryPrayer, Time: "18:00", Points: 6},
		{ID: "isya", Name: "Sholat Isya", Wajib: true, Category: CategoryPrayer, Time: "19:30", Points: 6},
		{ID: "puasa", Name: "Puasa", Wajib: true, Category: CategoryFasting, Points: 20},
		{ID: "tahajud", Name: "Sholat Tahajud", Category: CategoryPrayerOptional, Time: "03:00", Points: 5},
		{ID: "tarawih", Name: "Sholat Tarawih", Category: CategoryPrayerOptional, Time: "20:00", Points: 5},
		{ID: "witir", Name: "Sholat Witir", Category: CategoryPrayerOptional, Time: "21:00", Points: 5},
		{ID: "quran", Name: "Baca Quran", Category: CategoryQuran, Points: 10},
		{ID: "dzikir-pagi", Name: "Dzikir Pagi", Category: CategoryRemembrance, Points: 5},
		{ID: "dzikir-petang", Name: "Dzikir Petang", Category: CategoryRemembrance, Points: 5},
		{ID: "sedekah", Name: "Sedekah", Category: CategoryCharity, Points: 15},
	}
}
