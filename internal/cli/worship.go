package cli

import (
	"errors"
	"fmt"

	"github.com/Draconik513/web-puasa/internal/tracker"
)

type WorshipListCmd struct {
	Category string `short:"c" help:"Filter by category (sholat|sholat-sunnah|puasa|quran|dzikir|sedekah|custom)."`
}

func (c *WorshipListCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	items, err := ctx.Svc.WorshipItems()
	if err != nil {
		return err
	}

	percent := tracker.Percent(tracker.CompletionRatio(items))
	fmt.Printf("Checklist ibadah hari ini  %s %s\n\n", renderBar(percent, 20), renderPercent(percent))

	for _, item := range items {
		if c.Category != "" && string(item.Category) != c.Category {
			continue
		}
		schedule := ""
		if item.Time != "" {
			schedule = "  " + item.Time
		}
		tag := ""
		if item.Wajib {
			tag = "  (wajib)"
		}
		fmt.Printf("%s %-20s %2d poin%s%s  [%s]\n", checkbox(item.Completed), item.Name, item.Points, schedule, tag, item.ID)
	}
	return nil
}

type WorshipToggleCmd struct {
	ID string `arg:"" help:"Worship item id."`
}

func (c *WorshipToggleCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	item, err := ctx.Svc.ToggleWorship(c.ID)
	var quotaErr tracker.QuotaNotMetError
	if errors.As(err, &quotaErr) {
		return fmt.Errorf("baca minimal 1 juz (%d lembar) dulu di Target Khatam: %w", quotaErr.Required, err)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", checkbox(item.Completed), item.Name)
	return nil
}

type WorshipAddCmd struct {
	Name string `arg:"" help:"Name for the custom worship item."`
}

func (c *WorshipAddCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	item, err := ctx.Svc.AddCustomWorship(c.Name)
	if err != nil {
		return err
	}

	fmt.Printf("Added custom item: %s (ID: %s)\n", item.Name, item.ID)
	return nil
}

type WorshipDeleteCmd struct {
	ID string `arg:"" help:"Worship item id."`
}

func (c *WorshipDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	if err := ctx.Svc.DeleteWorship(c.ID); err != nil {
		return err
	}

	fmt.Println("Deleted.")
	return nil
}
