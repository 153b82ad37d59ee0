package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Draconik513/web-puasa/internal/achievements"
	"github.com/Draconik513/web-puasa/internal/storage"
	"github.com/Draconik513/web-puasa/internal/tracker"
)

type Context struct {
	Store storage.Provider
	Svc   *tracker.Service
}

var bandColors = map[achievements.Band]lipgloss.Color{
	achievements.BandGreen:   lipgloss.Color("2"),
	achievements.BandEmerald: lipgloss.Color("10"),
	achievements.BandYellow:  lipgloss.Color("3"),
	achievements.BandOrange:  lipgloss.Color("208"),
	achievements.BandRed:     lipgloss.Color("1"),
}

// renderPercent styles a percentage with its five-tier band color.
func renderPercent(percent int) string {
	style := lipgloss.NewStyle().Foreground(bandColors[achievements.ColorBand(percent)])
	return style.Render(fmt.Sprintf("%d%%", percent))
}

// renderBar draws a fixed-width progress bar colored by band.
func renderBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	style := lipgloss.NewStyle().Foreground(bandColors[achievements.ColorBand(percent)])
	return style.Render(bar)
}

// formatRupiah renders an amount the Indonesian way: Rp 10.000
func formatRupiah(amount float64) string {
	whole := int64(amount)
	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return "Rp " + b.String()
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
