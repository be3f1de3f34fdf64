package ui

import (
	"fmt"
	"strings"
)

// Column layout for the catalog table. The name column absorbs whatever
// width remains.
const (
	colYearWidth    = 6
	colContestWidth = 14
	colLevelWidth   = 14
	chromeLines     = 4 // header + command bar + column header + footer
)

// renderTable renders the filtered catalog with the selection highlighted.
func (m Model) renderTable() string {
	styles := m.theme.Styles()

	nameWidth := m.width - colYearWidth - colContestWidth - colLevelWidth - 4
	if nameWidth < 10 {
		nameWidth = 10
	}

	var b strings.Builder
	b.WriteString(styles.ColumnHeader.Render(
		fmt.Sprintf(" %-*s %-*s %-*s %s",
			colYearWidth, "Year",
			colContestWidth, "Contest",
			colLevelWidth, "Level",
			"Title")))
	b.WriteString("\n")

	rows := m.visibleRows()
	if len(m.filtered) == 0 {
		b.WriteString(styles.MutedText.Render(" no entries match the current filters"))
		return b.String()
	}

	for i := rows.first; i <= rows.last; i++ {
		entry := m.filtered[i]
		line := fmt.Sprintf(" %-*s %-*s %-*s %s",
			colYearWidth, pad(entry.Year, colYearWidth),
			colContestWidth, pad(entry.Contest, colContestWidth),
			colLevelWidth, pad(entry.Level, colLevelWidth),
			truncate(entry.Name, nameWidth))

		if i == m.selected {
			b.WriteString(styles.Selected.Width(m.width).Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		if i < rows.last {
			b.WriteString("\n")
		}
	}
	return b.String()
}

type rowWindow struct {
	first int
	last  int
}

// visibleRows computes the slice of filtered entries that fits the terminal,
// keeping the selection in view.
func (m Model) visibleRows() rowWindow {
	capacity := m.height - chromeLines
	if capacity < 1 {
		capacity = 1
	}
	if len(m.filtered) == 0 {
		return rowWindow{}
	}

	first := 0
	if m.selected >= capacity {
		first = m.selected - capacity + 1
	}
	last := first + capacity - 1
	if last >= len(m.filtered) {
		last = len(m.filtered) - 1
	}
	return rowWindow{first: first, last: last}
}

// pad truncates a value to the column width; %-*s handles the fill but not
// over-long CJK labels.
func pad(value string, width int) string {
	return truncate(value, width)
}

// truncate shortens a string to limit runes, ellipsized.
func truncate(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}
