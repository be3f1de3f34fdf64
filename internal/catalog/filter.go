package catalog

import (
	"sort"
	"strings"
)

// Filter holds the active filter selections. Empty fields impose no
// constraint; all constraints combine conjunctively.
type Filter struct {
	Year    string
	Contest string
	Level   string
	Search  string
}

// IsZero reports whether no filter is active.
func (f Filter) IsZero() bool {
	return f.Year == "" && f.Contest == "" && f.Level == "" && strings.TrimSpace(f.Search) == ""
}

// Apply returns the entries matching the filter, ordered for display:
// year descending (entries without a parsable year last), then contest
// ascending when both entries carry one, then path ascending. The input
// slice is not modified.
func Apply(entries []Entry, f Filter) []Entry {
	needle := strings.ToLower(strings.TrimSpace(f.Search))

	matched := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if f.Year != "" && entry.Year != f.Year {
			continue
		}
		if f.Contest != "" && entry.Contest != f.Contest {
			continue
		}
		if f.Level != "" && entry.Level != f.Level {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(entry.haystack()), needle) {
			continue
		}
		matched = append(matched, entry)
	}

	sort.Slice(matched, func(i, j int) bool {
		return entryLess(matched[i], matched[j])
	})
	return matched
}

// entryLess is a total order over entries: the path tie-break makes repeated
// sorts produce identical sequences.
func entryLess(a, b Entry) bool {
	ya, yb := numericRank(a.Year), numericRank(b.Year)
	if ya != yb {
		return ya > yb
	}
	if a.Contest != "" && b.Contest != "" && a.Contest != b.Contest {
		return a.Contest < b.Contest
	}
	return a.Path < b.Path
}
