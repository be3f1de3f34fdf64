// Package source fetches problem-archive file listings from a hosting
// provider's REST API.
//
// # Overview
//
// A refresh makes two sequential read-only calls:
//
//  1. repository metadata → default branch + last-pushed timestamp
//  2. recursive git tree for that branch → {path, type} records
//
// The second call depends on the branch name from the first, so the calls
// are never issued concurrently. Both honor context cancellation; an aborted
// refresh commits no partial state.
//
// # Providers
//
// The two supported hosts are modeled as a closed Provider table rather than
// duck-typed branching: GitHub and Gitee differ only in API root, viewable
// URL forms, fallback branch and how an API token is attached. Their tree
// payloads share field names, so one Client serves both.
//
// # URL Resolution
//
// Provider.FileURL maps a repository path to something a browser can open.
// PDF files resolve to the raw/direct-download form, everything else to the
// blob view; path segments are percent-encoded individually so Chinese
// directory names survive the trip.
//
// # Rate Limiting
//
// Anonymous API quotas on both hosts are small. The client paces its own
// requests with a token-bucket limiter and optionally attaches an API token
// (Authorization header on GitHub, access_token query on Gitee).
package source
