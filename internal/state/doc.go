// Package state holds the latest catalog snapshot shared between the loader
// and the UI.
//
// # Overview
//
// The loader produces a complete Snapshot per load cycle (network fetch,
// cache hit, stale fallback or sample data) and calls Set; the UI calls
// Snapshot whenever it needs to re-derive its view. There is no incremental
// update path: the entry collection is immutable and replaced wholesale,
// which is what makes the UI's recompute-from-scratch model safe.
//
// # Concurrency
//
// A sync.RWMutex guards the snapshot. Set copies the entry slice in, and
// Snapshot copies it out, so neither side can mutate what the other holds.
// In practice there is one writer (the load command) and one reader (the
// Bubble Tea update loop), but the store does not rely on that.
//
// # Provenance
//
// Beyond the entries themselves, a Snapshot records how they were obtained:
//
//   - FromCache/Stale: served from the local cache, and whether it was past
//     the freshness window
//   - Sample: built-in sample data because neither network nor cache had
//     anything
//   - LastError/Message: what went wrong, in renderable form
//
// The UI surfaces these in the header so a degraded state is always visible
// and never fatal.
package state
