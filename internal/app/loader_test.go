package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/caizhw/ojview/internal/cache"
	"github.com/caizhw/ojview/internal/catalog"
	"github.com/caizhw/ojview/internal/source"
	"github.com/caizhw/ojview/internal/state"
)

type stubFetcher struct {
	repo      *source.RepoInfo
	repoErr   error
	tree      *source.TreeResponse
	treeErr   error
	repoCalls int
	treeCalls int
	gotBranch string
}

func (s *stubFetcher) FetchRepo(ctx context.Context) (*source.RepoInfo, error) {
	s.repoCalls++
	return s.repo, s.repoErr
}

func (s *stubFetcher) FetchTree(ctx context.Context, branch string) (*source.TreeResponse, error) {
	s.treeCalls++
	s.gotBranch = branch
	return s.tree, s.treeErr
}

func newTestLoader(t *testing.T, fetcher *stubFetcher) *Loader {
	t.Helper()
	cacheStore, err := cache.New(t.TempDir())
	if err != nil {
		t.Fatalf("cache.New returned error: %v", err)
	}
	return &Loader{
		Fetcher: fetcher,
		FileURL: func(branch, path string) string {
			return source.GitHub.FileURL("acme", "archive", branch, path)
		},
		Key:            "github-acme-archive",
		FallbackBranch: "main",
		Cache:          cacheStore,
		Store:          &state.Store{},
	}
}

func TestLoader_FetchParsesBlobsAndWritesCache(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{
		repo: &source.RepoInfo{DefaultBranch: "master", PushedAt: "2026-08-01T10:00:00Z"},
		tree: &source.TreeResponse{Tree: []source.TreeNode{
			{Path: "NOI/2024/提高组/day1.pdf", Type: "blob"},
			{Path: "NOI/2024/提高组", Type: "tree"},
			{Path: "NOI/2024/提高组/day2.pdf", Type: "blob"},
		}},
	}
	loader := newTestLoader(t, fetcher)

	snap := loader.Load(context.Background(), false)
	if snap.LastError != nil {
		t.Fatalf("snapshot error = %v, want nil", snap.LastError)
	}
	if len(snap.Entries) != 2 {
		t.Fatalf("entries = %d, want 2 (directories skipped)", len(snap.Entries))
	}
	if snap.Branch != "master" || fetcher.gotBranch != "master" {
		t.Fatalf("branch = %q (fetched %q), want master", snap.Branch, fetcher.gotBranch)
	}
	if snap.Entries[0].URL == "" {
		t.Fatalf("entry URL not resolved: %+v", snap.Entries[0])
	}
	if snap.RepoUpdatedAt.IsZero() {
		t.Fatalf("repo updated-at not parsed")
	}

	cached, err := loader.Cache.Load(loader.Key)
	if err != nil || cached == nil {
		t.Fatalf("cache after fetch = %v, %v; want payload", cached, err)
	}
	if len(cached.Entries) != 2 || cached.Branch != "master" {
		t.Fatalf("cached payload = %+v, want the fetched listing", cached)
	}
}

func TestLoader_FreshCacheSkipsNetwork(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{repoErr: errors.New("network down")}
	loader := newTestLoader(t, fetcher)

	entry, _ := catalog.Parse("NOI/2024/day1.pdf")
	payload := cache.Payload{Timestamp: time.Now(), Branch: "master", Entries: []catalog.Entry{entry}}
	if err := loader.Cache.Save(loader.Key, payload); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	snap := loader.Load(context.Background(), false)
	if fetcher.repoCalls != 0 {
		t.Fatalf("repo fetched %d times, want 0 for a fresh cache", fetcher.repoCalls)
	}
	if !snap.FromCache || snap.Stale || snap.LastError != nil {
		t.Fatalf("snapshot = %+v, want clean cache hit", snap)
	}
	if len(snap.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(snap.Entries))
	}
}

func TestLoader_ForceBypassesFreshCache(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{
		repo: &source.RepoInfo{DefaultBranch: "master"},
		tree: &source.TreeResponse{Tree: []source.TreeNode{{Path: "IOI/2024/day1.pdf", Type: "blob"}}},
	}
	loader := newTestLoader(t, fetcher)

	entry, _ := catalog.Parse("NOI/2024/day1.pdf")
	if err := loader.Cache.Save(loader.Key, cache.Payload{Timestamp: time.Now(), Entries: []catalog.Entry{entry}}); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	snap := loader.Load(context.Background(), true)
	if fetcher.repoCalls != 1 || fetcher.treeCalls != 1 {
		t.Fatalf("fetch calls = %d/%d, want 1/1", fetcher.repoCalls, fetcher.treeCalls)
	}
	if snap.FromCache {
		t.Fatalf("snapshot = %+v, want network result", snap)
	}
	if len(snap.Entries) != 1 || snap.Entries[0].Contest != "IOI" {
		t.Fatalf("entries = %+v, want the fetched IOI entry", snap.Entries)
	}
}

func TestLoader_FetchFailureFallsBackToStaleCache(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{repoErr: errors.New("network down")}
	loader := newTestLoader(t, fetcher)

	entry, _ := catalog.Parse("NOI/2020/day1.pdf")
	old := cache.Payload{Timestamp: time.Now().Add(-48 * time.Hour), Branch: "master", Entries: []catalog.Entry{entry}}
	if err := loader.Cache.Save(loader.Key, old); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	snap := loader.Load(context.Background(), false)
	if !snap.FromCache || !snap.Stale {
		t.Fatalf("snapshot = %+v, want stale cache fallback", snap)
	}
	if snap.LastError == nil {
		t.Fatalf("snapshot error = nil, want the fetch failure")
	}
	if len(snap.Entries) != 1 {
		t.Fatalf("entries = %d, want the cached entry", len(snap.Entries))
	}
}

func TestLoader_FetchFailureWithoutCacheUsesSampleData(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{repoErr: errors.New("network down")}
	loader := newTestLoader(t, fetcher)

	snap := loader.Load(context.Background(), false)
	if !snap.Sample {
		t.Fatalf("snapshot = %+v, want sample data", snap)
	}
	if len(snap.Entries) == 0 {
		t.Fatalf("sample entries empty, interface would be blank")
	}
	if snap.LastError == nil || snap.Message == "" {
		t.Fatalf("snapshot = %+v, want error and status message", snap)
	}

	stored := loader.Store.Snapshot()
	if !stored.Sample || len(stored.Entries) != len(snap.Entries) {
		t.Fatalf("store snapshot = %+v, want the sample snapshot committed", stored)
	}
}

func TestLoader_EmptyDefaultBranchUsesFallback(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{
		repo: &source.RepoInfo{},
		tree: &source.TreeResponse{},
	}
	loader := newTestLoader(t, fetcher)

	snap := loader.Load(context.Background(), false)
	if fetcher.gotBranch != "main" {
		t.Fatalf("fetched branch = %q, want fallback main", fetcher.gotBranch)
	}
	if snap.Branch != "main" {
		t.Fatalf("snapshot branch = %q, want main", snap.Branch)
	}
}

func TestLoader_TruncatedListingIsFlaggedNotFatal(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{
		repo: &source.RepoInfo{DefaultBranch: "master"},
		tree: &source.TreeResponse{
			Tree:      []source.TreeNode{{Path: "NOI/2024/day1.pdf", Type: "blob"}},
			Truncated: true,
		},
	}
	loader := newTestLoader(t, fetcher)

	snap := loader.Load(context.Background(), false)
	if snap.LastError != nil {
		t.Fatalf("snapshot error = %v, want nil", snap.LastError)
	}
	if len(snap.Entries) != 1 {
		t.Fatalf("entries = %d, want the partial listing kept", len(snap.Entries))
	}
	if !strings.Contains(snap.Message, "truncated") {
		t.Fatalf("message = %q, want truncation notice", snap.Message)
	}
}
