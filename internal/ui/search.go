package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// startSearch opens the free-text search input, pre-filled with the active
// search term.
func (m Model) startSearch() (tea.Model, tea.Cmd) {
	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "search name, path, contest, year, level"
	input.CharLimit = 120
	input.SetValue(m.filter.Search)

	m.searchInput = input
	m.searching = true
	return m, m.searchInput.Focus()
}

// handleSearchKey routes keys to the search input. Enter applies the term,
// Esc discards the edit and keeps the previous one.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filter.Search = strings.TrimSpace(m.searchInput.Value())
		m.searching = false
		m.selected = 0
		m.refilter()
		return m, nil

	case "esc":
		m.searching = false
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}
