package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/caizhw/ojview/internal/catalog"
	"github.com/caizhw/ojview/internal/prefs"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "e":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case "y":
		m.filter.Year = cycleOption(m.filter.Year, m.yearOptions)
		m.refilter()
		return m, nil

	case "c":
		m.filter.Contest = cycleOption(m.filter.Contest, m.contestOptions)
		m.refilter()
		return m, nil

	case "l":
		m.filter.Level = cycleOption(m.filter.Level, m.levelOptions)
		m.refilter()
		return m, nil

	case "/":
		return m.startSearch()

	case "r":
		// Reset clears every filter, including the search text.
		m.filter = catalog.Filter{}
		m.selected = 0
		m.refilter()
		return m, nil

	case "R":
		if m.source == nil || m.loading {
			return m, nil
		}
		m.loading = true
		return m, loadCmd(m.ctx, m.source, true)

	case "s":
		if m.source == nil || m.loading {
			return m, nil
		}
		m.provider = m.source.Switch()
		m.savePrefs()
		m.loading = true
		return m, loadCmd(m.ctx, m.source, false)

	case "j", "down":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
		return m, nil

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "g", "home":
		m.selected = 0
		return m, nil

	case "G", "end":
		if len(m.filtered) > 0 {
			m.selected = len(m.filtered) - 1
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Provider: m.provider})
}

// cycleOption advances a filter selection through its option list, with the
// empty string ("All") between the last option and the first.
func cycleOption(current string, options []string) string {
	if len(options) == 0 {
		return ""
	}
	if current == "" {
		return options[0]
	}
	for i, option := range options {
		if option == current {
			if i == len(options)-1 {
				return ""
			}
			return options[i+1]
		}
	}
	// Selection no longer among the options (collection changed underneath).
	return options[0]
}
