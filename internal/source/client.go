package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// TreeFetcher defines the interface for fetching repository metadata and
// file listings. It is implemented by *Client and can be stubbed in tests.
type TreeFetcher interface {
	FetchRepo(ctx context.Context) (*RepoInfo, error)
	FetchTree(ctx context.Context, branch string) (*TreeResponse, error)
}

// Ensure Client implements TreeFetcher at compile time.
var _ TreeFetcher = (*Client)(nil)

// Client talks to one hosting provider's REST API for one repository.
type Client struct {
	provider  Provider
	owner     string
	repo      string
	token     string
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

const (
	defaultUserAgent = "ojview/0.1"
	requestTimeout   = 15 * time.Second

	// Both providers throttle anonymous API use aggressively; pacing our own
	// calls keeps a refresh from burning the quota.
	requestsPerSecond = 2
	requestBurst      = 2
)

// NewClient builds a Client for the given provider and repository.
// The token is optional and raises the provider's API rate limits.
func NewClient(provider Provider, owner, repo, token string) (*Client, error) {
	if strings.TrimSpace(owner) == "" || strings.TrimSpace(repo) == "" {
		return nil, fmt.Errorf("owner and repo are required")
	}
	if provider.APIRoot == "" {
		return nil, fmt.Errorf("provider %q has no API root", provider.Name)
	}
	return &Client{
		provider: provider,
		owner:    strings.TrimSpace(owner),
		repo:     strings.TrimSpace(repo),
		token:    strings.TrimSpace(token),
		http: &http.Client{
			Timeout: requestTimeout,
		},
		limiter:   rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		userAgent: defaultUserAgent,
	}, nil
}

// Provider returns the provider this client talks to.
func (c *Client) Provider() Provider {
	return c.provider
}

// Key identifies the data source for cache purposes.
func (c *Client) Key() string {
	return fmt.Sprintf("%s-%s-%s", c.provider.Name, c.owner, c.repo)
}

// FileURL resolves a repository file path to a viewable URL on this
// client's provider.
func (c *Client) FileURL(branch, path string) string {
	return c.provider.FileURL(c.owner, c.repo, branch, path)
}

// FetchRepo retrieves repository metadata: the default branch and the
// last-pushed timestamp.
func (c *Client) FetchRepo(ctx context.Context) (*RepoInfo, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload RepoInfo
	path := fmt.Sprintf("/repos/%s/%s", c.owner, c.repo)
	if err := c.do(ctx, path, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchTree retrieves the recursive file tree for a branch.
func (c *Client) FetchTree(ctx context.Context, branch string) (*TreeResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(branch) == "" {
		return nil, fmt.Errorf("branch required")
	}
	var payload TreeResponse
	path := fmt.Sprintf("/repos/%s/%s/git/trees/%s", c.owner, c.repo, url.PathEscape(branch))
	values := url.Values{}
	values.Set("recursive", "1")
	if err := c.do(ctx, path, values, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) do(ctx context.Context, path string, values url.Values, dest any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	if values == nil {
		values = url.Values{}
	}
	if c.token != "" && c.provider.TokenQuery != "" {
		values.Set(c.provider.TokenQuery, c.token)
	}
	reqURL := c.provider.APIRoot + path
	if encoded := values.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" && c.provider.TokenQuery == "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s api %s returned status %d", c.provider.Name, path, resp.StatusCode)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
