package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Draconik513/web-puasa/internal/cli"
	"github.com/Draconik513/web-puasa/internal/logger"
	"github.com/Draconik513/web-puasa/internal/storage"
	"github.com/Draconik513/web-puasa/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/puasa/puasa.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init      cli.InitCmd      `cmd:"" help:"Initialize puasa storage."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive checklist." default:"1"`
	Dashboard cli.DashboardCmd `cmd:"" help:"Show today's summary."`
	Worship   struct {
		List   cli.WorshipListCmd   `cmd:"" help:"List the worship checklist."`
		Toggle cli.WorshipToggleCmd `cmd:"" help:"Toggle an item's completion."`
		Add    cli.WorshipAddCmd    `cmd:"" help:"Add a custom worship item."`
		Delete cli.WorshipDeleteCmd `cmd:"" help:"Delete a custom worship item."`
	} `cmd:"" help:"Manage the daily worship checklist."`
	Quran struct {
		Log    cli.QuranLogCmd    `cmd:"" help:"Log pages read."`
		Status cli.QuranStatusCmd `cmd:"" help:"Show khatam progress."`
		Reset  cli.QuranResetCmd  `cmd:"" help:"Reset reading progress."`
	} `cmd:"" help:"Track the khatam reading target."`
	Charity struct {
		Add    cli.CharityAddCmd    `cmd:"" help:"Record a donation."`
		List   cli.CharityListCmd   `cmd:"" help:"List donations."`
		Delete cli.CharityDeleteCmd `cmd:"" help:"Delete a donation."`
		Reset  cli.CharityResetCmd  `cmd:"" help:"Clear all donation records."`
	} `cmd:"" help:"Track charity."`
	Reflect struct {
		New  cli.ReflectNewCmd  `cmd:"" help:"Write today's reflection."`
		List cli.ReflectListCmd `cmd:"" help:"Show the reflection journal."`
	} `cmd:"" help:"Self-reflection journal."`
	Nights struct {
		Show  cli.NightsShowCmd  `cmd:"" help:"Show the last-ten-nights checklist."`
		Check cli.NightsCheckCmd `cmd:"" help:"Check or uncheck a night ritual."`
	} `cmd:"" help:"Lailatul Qadar checklist."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show statistics and achievements."`
	Report  cli.ReportCmd  `cmd:"" help:"Export the weekly progress report as CSV."`
	Prayers cli.PrayersCmd `cmd:"" help:"Show today's prayer schedule."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("puasa"),
		kong.Description("Ramadhan Journey — devotional tracking companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.2.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Svc:   tracker.New(store, tracker.SystemClock()),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
