package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/Draconik513/web-puasa/internal/models"
)

type ReflectNewCmd struct{}

func (c *ReflectNewCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	// Pre-fill mood and purity from today's worship ratio; the form lets
	// the user override both before saving.
	entry, err := ctx.Svc.SuggestReflection()
	if err != nil {
		return err
	}

	moodOptions := make([]huh.Option[models.Mood], 0, 5)
	for _, info := range models.Moods() {
		moodOptions = append(moodOptions, huh.NewOption(fmt.Sprintf("%s %s", info.Icon, info.Label), info.Mood))
	}

	temptationOptions := make([]huh.Option[string], 0, 8)
	for _, name := range models.Temptations() {
		temptationOptions = append(temptationOptions, huh.NewOption(name, name))
	}

	purity := strconv.Itoa(entry.Purity)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Mood]().
				Title("Bagaimana perasaanmu hari ini?").
				Options(moodOptions...).
				Value(&entry.Mood),
			huh.NewInput().
				Title("Kebersihan diri (0-100)").
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 || n > 100 {
						return fmt.Errorf("must be a number between 0 and 100")
					}
					return nil
				}).
				Value(&purity),
			huh.NewMultiSelect[string]().
				Title("Dosa yang berhasil dihindari").
				Options(temptationOptions...).
				Value(&entry.AvoidedTemptations),
			huh.NewText().
				Title("Catatan refleksi").
				Value(&entry.Note),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}
	entry.Purity, _ = strconv.Atoi(purity)

	saved, err := ctx.Svc.SubmitReflection(entry)
	if err != nil {
		return err
	}
	fmt.Printf("Reflection saved for %s.\n", saved.Date)
	return nil
}

type ReflectListCmd struct{}

func (c *ReflectListCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	entries, err := ctx.Svc.Reflections()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("Belum ada catatan refleksi")
		return nil
	}

	icons := make(map[models.Mood]string)
	for _, info := range models.Moods() {
		icons[info.Mood] = info.Icon
	}

	for _, entry := range entries {
		fmt.Printf("%s  %s %-9s  kebersihan %d%%\n", entry.Date, icons[entry.Mood], entry.Mood, entry.Purity)
		if entry.Note != "" {
			fmt.Printf("    %s\n", entry.Note)
		}
		if len(entry.AvoidedTemptations) > 0 {
			fmt.Printf("    dihindari: %d dosa\n", len(entry.AvoidedTemptations))
		}
	}
	return nil
}
