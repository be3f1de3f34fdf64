// Package ui provides a terminal user interface for browsing the problem
// catalog.
//
// # Architecture Overview
//
// The UI is a single-view Bubble Tea application. The root Model owns the
// latest catalog snapshot plus the active filter state; everything on screen
// is derived from those two inputs and recomputed only when one of them
// changes.
//
// # Package Structure
//
//   - app.go: Model, messages, commands and the main Run function
//   - keys.go: key handling, filter cycling, preference persistence
//   - search.go: free-text search input (bubbles textinput)
//   - table.go: catalog table rendering and the scroll window
//   - header.go: status bar, command bar and footer
//   - help.go: full-screen help overlay
//   - theme.go: color themes and Lipgloss styles
//
// # Event Flow
//
//  1. Run() starts the program with the store already populated
//  2. Init fetches the initial snapshot from the store
//  3. Filter keys mutate the filter state and re-derive the visible subset
//  4. R / s dispatch a load command; its snapshot message replaces the
//     collection wholesale
//  5. Context cancellation tears the program down
//
// # Key Bindings
//
//   - j/k, g/G: navigate the table
//   - y/c/l: cycle the year/contest/level filters ("All" between wraps)
//   - /: free-text search
//   - r: reset all filters
//   - R: force refresh, bypassing cache freshness
//   - s: switch hosting provider
//   - T: cycle theme
//   - h or ?: help overlay
//   - e or Ctrl+C: exit
//
// # Design Principles
//
//   - Read-only interface: the remote archive is never modified
//   - Derived state over stored state: filtering and sorting are pure
//     recomputations from the immutable snapshot
//   - Never blank: error states render the cached or sample catalog with a
//     provenance badge instead of an empty screen
package ui
