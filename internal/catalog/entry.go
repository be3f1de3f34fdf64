package catalog

import (
	"regexp"
	"strings"
)

// Entry is one inferred record per repository file. Entries are built once
// per load and replaced wholesale; they are never mutated in place.
type Entry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	URL      string   `json:"url"`
	Contest  string   `json:"contest,omitempty"`
	Year     string   `json:"year,omitempty"`
	Level    string   `json:"level,omitempty"`
	Segments []string `json:"segments,omitempty"`
}

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// Parse infers catalog metadata from a repository-relative file path.
// The path uses "/" separators. It returns ok=false when the path has no
// file-name component (empty string or trailing separator).
//
// Heuristics, in order:
//   - Year: the first directory segment matching exactly four digits. When no
//     directory matches, a file stem that is itself four digits is used
//     instead (with no directory index).
//   - Contest: the first directory segment, or the second when the year sits
//     at position 0. Discarded when it equals the file name.
//   - Level: the directory segment right after the year. When the year is the
//     last directory and at least two segments precede it, the segment before
//     the year is used instead.
//
// The URL field is left empty; callers resolve it against a hosting provider.
func Parse(path string) (Entry, bool) {
	segments := strings.Split(path, "/")
	file := segments[len(segments)-1]
	if file == "" {
		return Entry{}, false
	}
	info := segments[:len(segments)-1]

	year := ""
	yearIdx := -1
	for i, seg := range info {
		if yearPattern.MatchString(seg) {
			year = seg
			yearIdx = i
			break
		}
	}

	stem := file
	if dot := strings.LastIndex(file, "."); dot >= 0 {
		stem = file[:dot]
	}
	if yearIdx < 0 && yearPattern.MatchString(stem) {
		year = stem
	}

	contest := ""
	contestIdx := 0
	if yearIdx == 0 {
		contestIdx = 1
	}
	if contestIdx < len(info) {
		contest = info[contestIdx]
	}
	if contest == file {
		contest = ""
	}

	level := ""
	if yearIdx >= 0 {
		switch {
		case yearIdx+1 < len(info):
			level = info[yearIdx+1]
		case yearIdx >= 2:
			level = info[yearIdx-1]
		}
	}

	name := stem
	if name == "" {
		name = file
	}

	return Entry{
		ID:       path,
		Name:     name,
		Path:     path,
		Contest:  contest,
		Year:     year,
		Level:    level,
		Segments: append([]string(nil), info...),
	}, true
}

// haystack is the searchable text for an entry: the non-empty display fields
// joined by single spaces.
func (e Entry) haystack() string {
	parts := make([]string, 0, 5)
	for _, part := range []string{e.Name, e.Path, e.Contest, e.Year, e.Level} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}
