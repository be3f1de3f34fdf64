package ui

import (
	"fmt"
	"strings"
	"time"
)

// renderHeader renders the status bar: logo, data source, counts and the
// provenance of the current collection.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	parts := []string{
		styles.Logo.Render("ojview"),
	}

	if m.source != nil {
		parts = append(parts,
			styles.AccentText.Render(m.provider)+" "+styles.Text.Render(m.source.Label()))
	}

	total := len(m.snapshot.Entries)
	shown := len(m.filtered)
	count := fmt.Sprintf("%d", total)
	if shown != total {
		count = fmt.Sprintf("%d/%d", shown, total)
	}
	parts = append(parts, styles.MutedText.Render("Files:")+" "+styles.Text.Render(count))

	if badge := m.provenanceBadge(styles); badge != "" {
		parts = append(parts, badge)
	}

	if m.snapshot.Message != "" {
		parts = append(parts, styles.MutedText.Render(m.snapshot.Message))
	}

	if !m.snapshot.RepoUpdatedAt.IsZero() {
		parts = append(parts,
			styles.FaintText.Render("pushed "+humanizeSince(time.Since(m.snapshot.RepoUpdatedAt))))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// provenanceBadge summarizes where the current collection came from.
func (m Model) provenanceBadge(styles Styles) string {
	switch {
	case m.loading:
		return styles.WarningText.Render("REFRESHING…")
	case m.snapshot.Sample:
		return styles.DangerText.Render("SAMPLE DATA")
	case m.snapshot.Stale:
		return styles.WarningText.Render("STALE CACHE")
	case m.snapshot.FromCache:
		return styles.InfoText.Render("cached")
	case m.snapshot.LastError != nil:
		return styles.DangerText.Render("ERROR")
	}
	return ""
}

// renderCommandBar renders the key hints with the active filter selections.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	hint := func(key, label, value string) string {
		text := styles.AccentText.Render("<"+key+">") + styles.MutedText.Render(label)
		if value != "" {
			text += styles.WarningText.Render("[" + truncate(value, 14) + "]")
		}
		return text
	}

	parts := []string{
		hint("y", "Year", m.filter.Year),
		hint("c", "Contest", m.filter.Contest),
		hint("l", "Level", m.filter.Level),
		hint("/", "Search", strings.TrimSpace(m.filter.Search)),
		hint("r", "Reset", ""),
		hint("R", "Refresh", ""),
		hint("s", "Source", ""),
		hint("?", "Help", ""),
	}
	return styles.Footer.Width(m.width).Render(strings.Join(parts, " "))
}

// renderFooter shows the search input while editing, otherwise the URL of
// the selected entry.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	if m.searching {
		return styles.Footer.Width(m.width).Render(m.searchInput.View())
	}

	if m.selected < len(m.filtered) {
		entry := m.filtered[m.selected]
		target := entry.URL
		if target == "" {
			target = entry.Path
		}
		return styles.Footer.Width(m.width).Render(styles.FaintText.Render(truncate(target, m.width-2)))
	}

	if m.snapshot.LastError != nil {
		return styles.Footer.Width(m.width).Render(styles.DangerText.Render(m.snapshot.LastError.Error()))
	}
	return styles.Footer.Width(m.width).Render("")
}

// humanizeSince formats an elapsed duration for the header.
func humanizeSince(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 48*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
