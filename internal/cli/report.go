package cli

import (
	"fmt"
	"os"

	"github.com/Draconik513/web-puasa/internal/export"
)

type ReportCmd struct {
	Output string `short:"o" help:"Write the CSV report to a file instead of stdout." type:"path"`
}

func (c *ReportCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	week, ok, err := ctx.Svc.CurrentWeek()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no tracked week covers today")
	}

	out := os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := export.WeeklyReport(out, week, ctx.Svc.Today()); err != nil {
		return err
	}
	if c.Output != "" {
		fmt.Printf("Report written to %s\n", c.Output)
	}
	return nil
}
