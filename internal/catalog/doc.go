// Package catalog implements the core of ojview: inferring problem metadata
// from repository file paths and turning the inferred records into a
// filterable, ordered view.
//
// # Overview
//
// Problem archive repositories tend to organize files by contest, year and
// difficulty group, e.g.:
//
//	NOI/2024/提高组/day1.pdf
//	IOI/2019/solutions.pdf
//	2023.pdf
//
// There is no manifest; the directory layout is the only metadata. Parse
// applies positional heuristics to each file path to recover a contest
// label, a four-digit year and a level/group label, plus a display title.
//
// # Components
//
//   - Parse: pure path → Entry inference (entry.go)
//   - BuildOptions: sorted, de-duplicated option lists for filter controls
//     (options.go)
//   - Apply: conjunctive filtering, free-text search and display ordering
//     (filter.go)
//
// All three are pure functions over immutable inputs. The UI recomputes the
// filtered view from the latest entry collection whenever the collection or
// the filter state changes; nothing in this package holds state.
//
// # Ordering Guarantees
//
// Apply sorts by year descending (entries without a parsable year last),
// then by contest ascending when both entries carry one, then by path.
// Since paths are unique within a repository tree, the order is total and
// repeated applications yield identical sequences.
//
// BuildOptions is deterministic for any input multiset: ties in numeric
// mode and unparsable values fall back to a lexical comparison.
//
// # Known Limitations
//
// The "level before year" fallback (a layout like NOI/extra/提高组/2024 with
// the year as the last directory) is a heuristic calibrated against sample
// archives only; it is kept as-is rather than tightened.
package catalog
