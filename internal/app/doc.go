// Package app wires ojview together: configuration, preferences, the data
// source session, the cache, the snapshot store and the UI.
//
// The Loader implements the fetch-or-fallback ladder that keeps the catalog
// renderable under every failure mode:
//
//	fresh cache ──→ serve cached listing
//	     │ (stale, missing or forced)
//	network fetch ─→ parse tree, write cache, serve
//	     │ (fetch failed)
//	any-age cache ─→ serve stale listing + error message
//	     │ (no cache at all)
//	sample data ──→ serve built-in listing + error message
//
// The Session wraps a source client so the UI can switch hosting providers
// without knowing how clients are built.
package app
