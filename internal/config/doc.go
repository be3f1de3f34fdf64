// Package config loads ojview's configuration file.
//
// # Overview
//
// The config is a small TOML file, by default at
// ~/.config/ojview/config.toml:
//
//	provider  = "github"            # or "gitee"
//	owner     = "enkerewpo"
//	repo      = "OI-Public-Library"
//	token     = ""                  # optional API token
//	cache_dir = ""                  # optional, defaults to ~/.cache/ojview
//
// A missing file is not an error: every field has a usable default, so the
// tool runs with zero setup against the public archive. A present but
// malformed file is an error, because silently ignoring a config the user
// wrote would be worse than failing.
//
// # Token Resolution
//
// The token field is optional; when empty, the application falls back to the
// OJVIEW_TOKEN environment variable (loaded from .env when present). The
// token only raises API rate limits; no endpoint ojview calls requires
// authentication.
package config
