package app

import "github.com/caizhw/ojview/internal/catalog"

// samplePaths is a fixed built-in listing shown when neither the network nor
// the cache can produce anything, so the interface is never empty.
var samplePaths = []string{
	"NOI/2024/提高组/day1.pdf",
	"NOI/2024/提高组/day2.pdf",
	"NOI/2023/提高组/day1.pdf",
	"NOIP/2022/普及组/day1.pdf",
	"NOIP/2022/提高组/day1.pdf",
	"CSP/2023/入门级/first-round.pdf",
	"CSP/2023/提高级/second-round.pdf",
	"IOI/2024/day1.pdf",
	"IOI/2024/day2.pdf",
	"2021.pdf",
}

func sampleEntries() []catalog.Entry {
	entries := make([]catalog.Entry, 0, len(samplePaths))
	for _, path := range samplePaths {
		if entry, ok := catalog.Parse(path); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}
