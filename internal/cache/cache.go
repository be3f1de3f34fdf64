// Package cache persists the last successful fetch per data source so the
// catalog survives restarts and network outages. One JSON file per source
// key lives under the cache directory; a payload is considered fresh for 24
// hours from write time but remains usable as a stale fallback forever.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caizhw/ojview/internal/catalog"
)

// Payload is the cached result of one fetch cycle.
type Payload struct {
	Timestamp time.Time       `json:"timestamp"`
	Branch    string          `json:"branch"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Entries   []catalog.Entry `json:"data"`
}

// Freshness is how long a cached payload satisfies a refresh without
// touching the network.
const Freshness = 24 * time.Hour

// Fresh reports whether the payload is inside the freshness window.
func (p Payload) Fresh(now time.Time) bool {
	return !p.Timestamp.IsZero() && now.Sub(p.Timestamp) < Freshness
}

// Store reads and writes cached payloads under a directory.
type Store struct {
	dir string
}

const defaultCacheDir = "~/.cache/ojview"

// DefaultDir returns the default cache directory.
func DefaultDir() string {
	return defaultCacheDir
}

// New builds a Store rooted at dir, falling back to the default when empty.
func New(dir string) (*Store, error) {
	resolved, err := resolveDir(dir)
	if err != nil {
		return nil, err
	}
	return &Store{dir: resolved}, nil
}

// Load reads the cached payload for a source key. A missing file is not an
// error: it returns (nil, nil).
func (s *Store) Load(key string) (*Payload, error) {
	bytes, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache: %w", err)
	}
	var payload Payload
	if err := json.Unmarshal(bytes, &payload); err != nil {
		return nil, fmt.Errorf("parse cache: %w", err)
	}
	return &payload, nil
}

// Save writes the payload for a source key, creating the cache directory as
// needed.
func (s *Store) Save(key string, payload Payload) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	bytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}
	if err := os.WriteFile(s.path(key), bytes, 0o644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func resolveDir(dir string) (string, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		trimmed = defaultCacheDir
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
