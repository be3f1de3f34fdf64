package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the full-screen help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	commands := []struct{ key, desc string }{
		{"j/k", "Move selection"},
		{"g/G", "Jump to top/bottom"},
		{"y", "Cycle year filter"},
		{"c", "Cycle contest filter"},
		{"l", "Cycle level filter"},
		{"/", "Free-text search (Enter applies, Esc cancels)"},
		{"r", "Reset all filters"},
		{"R", "Force refresh (bypasses the cache)"},
		{"s", "Switch hosting provider"},
		{"T", "Cycle theme"},
		{"h/?", "Help"},
		{"e/Ctrl+C", "Exit"},
	}

	var lines []string
	lines = append(lines, styles.Logo.Render("ojview")+styles.MutedText.Render("  problem archive browser"))
	lines = append(lines, "")
	for _, cmd := range commands {
		lines = append(lines, fmt.Sprintf("%s %s",
			styles.AccentText.Render(fmt.Sprintf("%-10s", "<"+cmd.key+">")),
			styles.Text.Render(cmd.desc)))
	}
	lines = append(lines, "")
	lines = append(lines, styles.FaintText.Render("press any key to close"))

	content := strings.Join(lines, "\n")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
