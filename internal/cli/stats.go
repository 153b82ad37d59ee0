package cli

import (
	"fmt"
	"math"

	"github.com/Draconik513/web-puasa/internal/achievements"
	"github.com/Draconik513/web-puasa/internal/constants"
	"github.com/Draconik513/web-puasa/internal/tracker"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	fmt.Println("📊 Statistik Ramadhan")
	fmt.Println()

	week, ok, err := ctx.Svc.CurrentWeek()
	if err != nil {
		return err
	}
	if ok {
		summary := tracker.SummarizeWeek(week, ctx.Svc.Today())
		average := int(math.Round(summary.Average))
		fire := ""
		if achievements.WeeklyOnFire(summary.Average) {
			fire = " 🔥"
		}
		fmt.Printf("Minggu ini: rata-rata %s%s, hari terbaik %d%% (%s)\n",
			renderPercent(average), fire, summary.BestDay, summary.BestDate)
		fmt.Printf("Hari produktif %d/%d, perlu perbaikan %d/%d\n",
			summary.ProductiveDays, summary.PastDays, summary.NeedsImprovement, summary.PastDays)
		fmt.Println()
	}

	series, err := ctx.Svc.MonthlySeries()
	if err != nil {
		return err
	}
	fmt.Println("30 hari:")
	start := tracker.Midnight(constants.PeriodStart)
	for i, value := range series {
		date := start.AddDate(0, 0, i)
		fmt.Printf("  Hari %2d (%s)  %s %s\n", i+1, date.Format("02 Jan"), renderBar(value, 10), renderPercent(value))
	}
	fmt.Println()

	fasting, err := ctx.Svc.FastingConsistency()
	if err != nil {
		return err
	}
	fmt.Printf("Konsistensi puasa: %d%% (%d hari bolong dari %d hari)\n",
		fasting.Consistency, fasting.MissedDays, fasting.DaysElapsed)
	fmt.Println()

	fmt.Println("🏅 Pencapaian Spesial")
	badges, err := ctx.Svc.Achievements()
	if err != nil {
		return err
	}
	for _, badge := range badges {
		state := "terkunci"
		if badge.Unlocked {
			state = "terbuka"
		}
		fmt.Printf("  %s %-20s %-9s  %s\n", badge.Icon, badge.Name, state, badge.Description)
	}
	return nil
}
