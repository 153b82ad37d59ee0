package cli

import (
	"errors"
	"fmt"

	"github.com/Draconik513/web-puasa/internal/achievements"
	"github.com/Draconik513/web-puasa/internal/tracker"
)

type QuranLogCmd struct {
	Pages int `arg:"" help:"Number of pages read."`
}

func (c *QuranLogCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	result, err := ctx.Svc.AddPages(c.Pages)
	var exceeded tracker.TargetExceededError
	if errors.As(err, &exceeded) {
		fmt.Printf("Alhamdulillah! Anda sudah menyelesaikan 30 Juz (%d lembar) 🎉\n", exceeded.Target)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Logged %d pages. Today: %d, overall: %d.\n", result.Added, result.TodayPages, result.Completed)

	if result.AutoCompleted {
		fmt.Println("✔ Baca Quran auto-checked on the worship list.")
	}
	for i := 0; i < result.NewJuz; i++ {
		juz := result.JuzToday - result.NewJuz + i + 1
		if juz == 1 {
			fmt.Println("🎉 Alhamdulillah! Selamat, Anda telah menyelesaikan 1 Juz hari ini! 📖✨")
		} else {
			fmt.Printf("🎉 Masha Allah! Anda telah menyelesaikan %d Juz hari ini! 📖✨🔥\n", juz)
		}
	}
	if result.Khatam {
		fmt.Println("🎉 Masha Allah! Anda telah menyelesaikan Khatam 30 Juz Al-Quran! 🤲")
	}
	return nil
}

type QuranStatusCmd struct{}

func (c *QuranStatusCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	quran, err := ctx.Svc.QuranProgress()
	if err != nil {
		return err
	}
	today, err := ctx.Svc.TodayReading()
	if err != nil {
		return err
	}

	percent := float64(0)
	if quran.Target > 0 {
		percent = float64(quran.Completed) / float64(quran.Target) * 100
	}
	fire := ""
	if achievements.QuranOnFire(percent) {
		fire = " 🔥"
	}

	fmt.Printf("📖 Target Khatam Quran%s\n\n", fire)
	fmt.Printf("Overall: %d/%d lembar (%.1f%%)\n", quran.Completed, quran.Target, percent)
	fmt.Printf("Hari ini: %d lembar (%d juz)\n", today, today/10)
	fmt.Printf("Target harian: %d lembar, %d tiap selesai sholat\n", quran.PerDay, quran.PerPrayer)
	return nil
}

type QuranResetCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *QuranResetCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	if !c.Force {
		fmt.Print("Reset semua pencapaian? [y/N]: ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Svc.ResetQuran(); err != nil {
		return err
	}
	fmt.Println("Reading progress reset.")
	return nil
}
