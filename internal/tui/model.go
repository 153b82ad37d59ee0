package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Draconik513/web-puasa/internal/models"
	"github.com/Draconik513/web-puasa/internal/tracker"
)

// Model is the interactive worship checklist. Every toggle goes through
// the tracker so the quota gate and progress recording apply exactly as
// they do on the CLI.
type Model struct {
	svc      *tracker.Service
	items    []models.WorshipItem
	cursor   int
	keys     KeyMap
	help     help.Model
	status   string
	statusIs error
	quitting bool
}

func NewModel(svc *tracker.Service) Model {
	return Model{
		svc:  svc,
		keys: DefaultKeyMap(),
		help: help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			m = m.toggleCurrent()
		}
	}
	return m, nil
}

func (m Model) toggleCurrent() Model {
	if m.cursor >= len(m.items) {
		return m
	}

	item, err := m.svc.ToggleWorship(m.items[m.cursor].ID)
	var quotaErr tracker.QuotaNotMetError
	if errors.As(err, &quotaErr) {
		m.status = fmt.Sprintf("Baca minimal 1 juz (%d lembar) dulu di Target Khatam! (%d/%d hari ini)",
			quotaErr.Required, quotaErr.Read, quotaErr.Required)
		m.statusIs = err
		return m
	}
	if err != nil {
		m.status = err.Error()
		m.statusIs = err
		return m
	}

	m.items[m.cursor] = item
	if item.Completed {
		m.status = fmt.Sprintf("%s selesai ✔", item.Name)
	} else {
		m.status = fmt.Sprintf("%s dibatalkan", item.Name)
	}
	m.statusIs = nil
	return m
}

// Reload pulls the current checklist from the tracker.
func (m Model) Reload() (Model, error) {
	items, err := m.svc.WorshipItems()
	if err != nil {
		return m, err
	}
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = 0
	}
	return m, nil
}
