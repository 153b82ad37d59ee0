package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Draconik513/web-puasa/internal/tracker"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	percent := tracker.Percent(tracker.CompletionRatio(m.items))
	b.WriteString(titleStyle.Render(fmt.Sprintf("🕌 Ibadah Tracker — %d%%", percent)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		box := "[ ]"
		name := item.Name
		if item.Completed {
			box = doneStyle.Render("[x]")
			name = doneStyle.Render(name)
		}

		meta := fmt.Sprintf("%d poin", item.Points)
		if item.Time != "" {
			meta += "  " + item.Time
		}
		if item.Wajib {
			meta += "  wajib"
		}

		b.WriteString(fmt.Sprintf("%s%s %-22s %s\n", cursor, box, name, mutedStyle.Render(meta)))
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusIs != nil {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(m.status)
		}
		b.WriteString("\n")
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		b.String(),
		m.help.View(m.keys),
	)
	return docStyle.Render(ui)
}
