package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/Draconik513/web-puasa/internal/constants"
)

type CharityAddCmd struct {
	Amount      float64 `arg:"" optional:"" help:"Donation amount in rupiah. Omit to pick a preset."`
	Description string  `arg:"" optional:"" help:"What the donation was for."`
}

func (c *CharityAddCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	if c.Amount == 0 {
		options := make([]huh.Option[float64], 0, len(constants.QuickCharityAmounts))
		for _, amount := range constants.QuickCharityAmounts {
			options = append(options, huh.NewOption(formatRupiah(amount), amount))
		}
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[float64]().
				Title("Jumlah sedekah").
				Options(options...).
				Value(&c.Amount),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	entry, err := ctx.Svc.AddCharity(c.Amount, c.Description)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s — %s (ID: %s)\n", formatRupiah(entry.Amount), entry.Description, entry.ID)
	return nil
}

type CharityListCmd struct{}

func (c *CharityListCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	entries, err := ctx.Svc.CharityEntries()
	if err != nil {
		return err
	}
	summary, err := ctx.Svc.CharitySummary()
	if err != nil {
		return err
	}

	fmt.Printf("💰 Sedekah: %s (%d kali)\n\n", formatRupiah(summary.Total), summary.Count)
	if len(entries) == 0 {
		fmt.Println("  Belum ada catatan sedekah")
		return nil
	}
	for _, entry := range entries {
		fmt.Printf("%s  %-12s  %-30s  [%s]\n", entry.Date.Format("02 Jan 2006"), formatRupiah(entry.Amount), entry.Description, entry.ID)
	}
	return nil
}

type CharityDeleteCmd struct {
	ID string `arg:"" help:"Charity entry id."`
}

func (c *CharityDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	if err := ctx.Svc.DeleteCharity(c.ID); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

type CharityResetCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *CharityResetCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	if !c.Force {
		fmt.Print("Reset semua data sedekah? Data tidak bisa dikembalikan! [y/N]: ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Svc.ResetCharity(); err != nil {
		return err
	}
	fmt.Println("Charity records cleared.")
	return nil
}
