package cli

import (
	"fmt"

	"github.com/Draconik513/web-puasa/internal/achievements"
	"github.com/Draconik513/web-puasa/internal/tracker"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	day, remaining := ctx.Svc.FastingDay()

	items, err := ctx.Svc.WorshipItems()
	if err != nil {
		return err
	}
	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	percent := tracker.Percent(tracker.CompletionRatio(items))

	quran, err := ctx.Svc.QuranProgress()
	if err != nil {
		return err
	}
	quranPercent := float64(0)
	if quran.Target > 0 {
		quranPercent = float64(quran.Completed) / float64(quran.Target) * 100
	}

	summary, err := ctx.Svc.CharitySummary()
	if err != nil {
		return err
	}

	fmt.Println("Assalamu'alaikum! 👋")
	fmt.Println()

	switch {
	case day == 0:
		fmt.Printf("🌙 Hari Puasa:      belum mulai (%d hari lagi)\n", remaining)
	case remaining == 0:
		fmt.Printf("🌙 Hari Puasa:      %d (selesai)\n", day)
	default:
		fmt.Printf("🌙 Hari Puasa:      %d (%d hari lagi)\n", day, remaining)
	}

	fire := ""
	if achievements.WorshipOnFire(percent) {
		fire = " 🔥"
	}
	fmt.Printf("🕌 Progress Ibadah: %d/%d  %s %s%s\n", completed, len(items), renderBar(percent, 20), renderPercent(percent), fire)

	quranFire := ""
	if achievements.QuranOnFire(quranPercent) {
		quranFire = " 🔥"
	}
	fmt.Printf("📖 Baca Quran:      %d/%d lembar (%.1f%%)%s\n", quran.Completed, quran.Target, quranPercent, quranFire)
	fmt.Printf("🤲 Sedekah:         %s (%d kali)\n", formatRupiah(summary.Total), summary.Count)

	return nil
}
