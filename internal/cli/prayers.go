package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Draconik513/web-puasa/internal/logger"
	"github.com/Draconik513/web-puasa/internal/prayertimes"
)

type PrayersCmd struct {
	City    string `help:"City to look up." default:"Jakarta"`
	Country string `help:"Country to look up." default:"Indonesia"`
}

func (c *PrayersCmd) Run(ctx *Context) error {
	if err := ctx.Svc.Load(); err != nil {
		return err
	}

	// Best effort: on any failure we log and fall back to placeholders
	// rather than failing the command.
	client := prayertimes.NewClient()
	fetchCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	timings, err := client.FetchByCity(fetchCtx, ctx.Svc.Now(), c.City, c.Country)
	if err != nil {
		logger.Error("prayer time fetch failed", "err", err, "city", c.City)
		timings = prayertimes.PlaceholderTimings()
	}

	fmt.Printf("🕌 Jadwal Sholat — %s\n\n", c.City)
	fmt.Printf("🌙 Imsak    %s\n", timings.Imsak)
	fmt.Printf("🌅 Subuh    %s\n", timings.Fajr)
	fmt.Printf("☀️ Dzuhur   %s\n", timings.Dhuhr)
	fmt.Printf("🌇 Ashar    %s\n", timings.Asr)
	fmt.Printf("🌆 Maghrib  %s\n", timings.Maghrib)
	fmt.Printf("🌃 Isya     %s\n", timings.Isha)
	return nil
}
