package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func testProvider(apiRoot string) Provider {
	p := GitHub
	p.APIRoot = apiRoot
	return p
}

func TestClient_FetchesRepoAndTree(t *testing.T) {
	t.Parallel()

	var gotTreeQuery url.Values
	var gotUserAgent string
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/repos/acme/archive":
			_ = json.NewEncoder(w).Encode(RepoInfo{DefaultBranch: "master", PushedAt: "2026-08-01T10:00:00Z"})
		case "/repos/acme/archive/git/trees/master":
			gotTreeQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(TreeResponse{
				Tree: []TreeNode{
					{Path: "NOI/2024/day1.pdf", Type: "blob"},
					{Path: "NOI/2024", Type: "tree"},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(testProvider(server.URL), "acme", "archive", "tok123")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	repo, err := c.FetchRepo(ctx)
	if err != nil {
		t.Fatalf("FetchRepo returned error: %v", err)
	}
	if repo.DefaultBranch != "master" {
		t.Fatalf("default branch = %q, want master", repo.DefaultBranch)
	}
	if repo.ParsedPushedAt().IsZero() {
		t.Fatalf("pushed_at %q did not parse", repo.PushedAt)
	}

	tree, err := c.FetchTree(ctx, "master")
	if err != nil {
		t.Fatalf("FetchTree returned error: %v", err)
	}
	if len(tree.Tree) != 2 || !tree.Tree[0].IsBlob() || tree.Tree[1].IsBlob() {
		t.Fatalf("tree = %#v, want one blob and one tree node", tree.Tree)
	}
	if gotTreeQuery.Get("recursive") != "1" {
		t.Fatalf("tree query = %v, want recursive=1", gotTreeQuery)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("Authorization = %q, want Bearer tok123", gotAuth)
	}
	if !strings.HasPrefix(gotUserAgent, "ojview/") {
		t.Fatalf("User-Agent = %q, want ojview/*", gotUserAgent)
	}
}

func TestClient_TokenAsQueryParam(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(RepoInfo{DefaultBranch: "master"})
	}))
	t.Cleanup(server.Close)

	p := Gitee
	p.APIRoot = server.URL
	c, err := NewClient(p, "acme", "archive", "tok456")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchRepo(context.Background()); err != nil {
		t.Fatalf("FetchRepo returned error: %v", err)
	}
	if gotQuery.Get("access_token") != "tok456" {
		t.Fatalf("query = %v, want access_token=tok456", gotQuery)
	}
	if gotAuth != "" {
		t.Fatalf("Authorization = %q, want unset", gotAuth)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/acme/archive":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.Error(w, "nope", http.StatusForbidden)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(testProvider(server.URL), "acme", "archive", "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchRepo(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchRepo error = %v, want decode response error", err)
	}

	_, err = c.FetchTree(context.Background(), "master")
	if err == nil || !strings.Contains(err.Error(), "returned status 403") {
		t.Fatalf("FetchTree error = %v, want status 403 error", err)
	}
}

func TestClient_RequiresOwnerRepoAndBranch(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(GitHub, "", "archive", ""); err == nil {
		t.Fatalf("NewClient accepted empty owner")
	}

	c, err := NewClient(GitHub, "acme", "archive", "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchTree(context.Background(), " "); err == nil {
		t.Fatalf("FetchTree accepted empty branch")
	}
}

func TestClient_Key(t *testing.T) {
	t.Parallel()

	c, err := NewClient(GitHub, "acme", "archive", "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.Key() != "github-acme-archive" {
		t.Fatalf("Key = %q, want github-acme-archive", c.Key())
	}
}
