package source

import (
	"fmt"
	"net/url"
	"strings"
)

// Provider describes one supported hosting service. The set of providers is
// closed: ojview knows GitHub and Gitee and selects between them explicitly
// by name, never by sniffing URLs.
type Provider struct {
	Name           string
	APIRoot        string
	BlobFormat     string // fmt args: owner, repo, branch, encoded path
	RawFormat      string // fmt args: owner, repo, branch, encoded path
	FallbackBranch string
	TokenQuery     string // non-empty when the token travels as a query param
}

// GitHub is the default hosting provider.
var GitHub = Provider{
	Name:           "github",
	APIRoot:        "https://api.github.com",
	BlobFormat:     "https://github.com/%s/%s/blob/%s/%s",
	RawFormat:      "https://raw.githubusercontent.com/%s/%s/%s/%s",
	FallbackBranch: "main",
}

// Gitee is the mainland-China mirror provider. Its v5 API mirrors the GitHub
// payload shapes but authenticates through an access_token query parameter.
var Gitee = Provider{
	Name:           "gitee",
	APIRoot:        "https://gitee.com/api/v5",
	BlobFormat:     "https://gitee.com/%s/%s/blob/%s/%s",
	RawFormat:      "https://gitee.com/%s/%s/raw/%s/%s",
	FallbackBranch: "master",
	TokenQuery:     "access_token",
}

var providers = map[string]Provider{
	GitHub.Name: GitHub,
	Gitee.Name:  Gitee,
}

var providerOrder = []string{GitHub.Name, Gitee.Name}

// ByName returns the provider with the given name.
func ByName(name string) (Provider, error) {
	p, ok := providers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Provider{}, fmt.Errorf("unknown provider %q", name)
	}
	return p, nil
}

// Next returns the provider after the given one in the selection cycle.
func Next(name string) Provider {
	for i, candidate := range providerOrder {
		if candidate == name {
			return providers[providerOrder[(i+1)%len(providerOrder)]]
		}
	}
	return providers[providerOrder[0]]
}

// FileURL resolves a repository file to a viewable URL. Files with a pdf
// extension resolve to the raw/download form so they open directly; anything
// else resolves to the blob view.
func (p Provider) FileURL(owner, repo, branch, path string) string {
	format := p.BlobFormat
	if strings.EqualFold(extension(path), "pdf") {
		format = p.RawFormat
	}
	return fmt.Sprintf(format, owner, repo, branch, encodePath(path))
}

func extension(path string) string {
	last := path
	if slash := strings.LastIndex(path, "/"); slash >= 0 {
		last = path[slash+1:]
	}
	if dot := strings.LastIndex(last, "."); dot >= 0 {
		return last[dot+1:]
	}
	return ""
}

// encodePath percent-encodes a repository path segment by segment, keeping
// the separators intact.
func encodePath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
