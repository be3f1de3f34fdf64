package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/caizhw/ojview/internal/cache"
	"github.com/caizhw/ojview/internal/catalog"
	"github.com/caizhw/ojview/internal/source"
	"github.com/caizhw/ojview/internal/state"
)

// Loader runs one load cycle: serve the cache when fresh, otherwise fetch
// the repository metadata and tree in sequence, parse the listing into
// catalog entries and fall back down the ladder (stale cache, then sample
// data) when the network is unavailable. Every cycle ends with a renderable
// snapshot in the store; no failure is fatal.
type Loader struct {
	Fetcher        source.TreeFetcher
	FileURL        func(branch, path string) string
	Key            string
	FallbackBranch string
	Cache          *cache.Store
	Store          *state.Store
}

// NewLoader wires a Loader from a source client. The cache store may be nil;
// caching is then skipped entirely.
func NewLoader(client *source.Client, cacheStore *cache.Store, store *state.Store) *Loader {
	return &Loader{
		Fetcher:        client,
		FileURL:        client.FileURL,
		Key:            client.Key(),
		FallbackBranch: client.Provider().FallbackBranch,
		Cache:          cacheStore,
		Store:          store,
	}
}

// Load executes one load cycle and returns the resulting snapshot. When
// force is true the cache freshness window is ignored and the network is
// always attempted.
func (l *Loader) Load(ctx context.Context, force bool) state.Snapshot {
	cached := l.readCache()
	now := time.Now()

	if !force && cached != nil && cached.Fresh(now) {
		snap := snapshotFromCache(cached, false, nil)
		l.Store.Set(snap)
		return snap
	}

	snap, err := l.fetch(ctx, now)
	if err != nil {
		log.Printf("fetch failed: %v", err)
		if cached != nil {
			snap = snapshotFromCache(cached, !cached.Fresh(now), err)
		} else {
			snap = state.Snapshot{
				Entries:   sampleEntries(),
				FetchedAt: now,
				Sample:    true,
				LastError: err,
				Message:   "fetch failed, showing sample data",
			}
		}
	}
	l.Store.Set(snap)
	return snap
}

func (l *Loader) fetch(ctx context.Context, now time.Time) (state.Snapshot, error) {
	repo, err := l.Fetcher.FetchRepo(ctx)
	if err != nil {
		return state.Snapshot{}, fmt.Errorf("fetch repo metadata: %w", err)
	}
	branch := repo.DefaultBranch
	if branch == "" {
		branch = l.FallbackBranch
	}

	tree, err := l.Fetcher.FetchTree(ctx, branch)
	if err != nil {
		return state.Snapshot{}, fmt.Errorf("fetch tree for %s: %w", branch, err)
	}

	entries := make([]catalog.Entry, 0, len(tree.Tree))
	for _, node := range tree.Tree {
		if !node.IsBlob() {
			continue
		}
		entry, ok := catalog.Parse(node.Path)
		if !ok {
			continue
		}
		if l.FileURL != nil {
			entry.URL = l.FileURL(branch, node.Path)
		}
		entries = append(entries, entry)
	}

	message := fmt.Sprintf("%d files on %s", len(entries), branch)
	if tree.Truncated {
		message += " (listing truncated)"
	}

	snap := state.Snapshot{
		Entries:       entries,
		Branch:        branch,
		RepoUpdatedAt: repo.ParsedPushedAt(),
		FetchedAt:     now,
		Message:       message,
	}
	l.writeCache(cache.Payload{
		Timestamp: now,
		Branch:    branch,
		UpdatedAt: repo.ParsedPushedAt(),
		Entries:   entries,
	})
	return snap, nil
}

func (l *Loader) readCache() *cache.Payload {
	if l.Cache == nil {
		return nil
	}
	cached, err := l.Cache.Load(l.Key)
	if err != nil {
		log.Printf("cache read failed: %v", err)
		return nil
	}
	return cached
}

func (l *Loader) writeCache(payload cache.Payload) {
	if l.Cache == nil {
		return
	}
	if err := l.Cache.Save(l.Key, payload); err != nil {
		log.Printf("cache write failed: %v", err)
	}
}

func snapshotFromCache(cached *cache.Payload, stale bool, fetchErr error) state.Snapshot {
	message := "cached listing"
	if fetchErr != nil {
		message = "fetch failed, showing cached listing"
	}
	return state.Snapshot{
		Entries:       cached.Entries,
		Branch:        cached.Branch,
		RepoUpdatedAt: cached.UpdatedAt,
		FetchedAt:     cached.Timestamp,
		FromCache:     true,
		Stale:         stale,
		LastError:     fetchErr,
		Message:       message,
	}
}
