package cli

import (
	"errors"
	"fmt"

	"github.com/Draconik513/web-puasa/internal/models"
	"github.com/Draconik513/web-puasa/internal/tracker"
)

type NightsShowCmd struct{}

func (c *NightsShowCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	summary, err := ctx.Svc.SummarizeNights()
	if err != nil {
		return err
	}
	nights, err := ctx.Svc.NightChecklist()
	if err != nil {
		return err
	}

	fmt.Println("✨ 10 Malam Terakhir (Lailatul Qadar)")
	fmt.Println()

	today := ctx.Svc.Today()
	for i, date := range tracker.NightDates() {
		marker := ""
		if date == today {
			marker = "  ← malam ini"
		}
		if date > today {
			fmt.Printf("Malam %d  %s  (belum tersedia)%s\n", 21+i, date, marker)
			continue
		}
		fmt.Printf("Malam %d  %s  %s%s\n", 21+i, date, renderPercent(summary.Progress[date]), marker)
		for _, ritual := range models.NightRituals() {
			fmt.Printf("    %s %s\n", checkbox(nights[date][ritual]), ritual)
		}
	}

	fmt.Println()
	fmt.Printf("Total: %s", renderPercent(summary.Average))
	if summary.Perfect {
		fmt.Print("  🏆 Sempurna! Semua malam terisi penuh")
	}
	fmt.Println()
	return nil
}

type NightsCheckCmd struct {
	Date    string `arg:"" help:"Night date (YYYY-MM-DD)."`
	Ritual  string `arg:"" help:"Ritual name."`
	Uncheck bool   `short:"u" help:"Uncheck instead of check."`
}

func (c *NightsCheckCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	err := ctx.Svc.SetNightRitual(c.Date, c.Ritual, !c.Uncheck)
	var quotaErr tracker.QuotaNotMetError
	if errors.As(err, &quotaErr) {
		return fmt.Errorf("baca minimal 1 juz (%d lembar) pada tanggal itu dulu: %w", quotaErr.Required, err)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s %s — %s\n", checkbox(!c.Uncheck), c.Ritual, c.Date)
	return nil
}
