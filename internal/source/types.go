package source

import "time"

// RepoInfo mirrors the subset of the repository metadata payload ojview
// needs: which branch to list and when the archive last changed.
type RepoInfo struct {
	DefaultBranch string `json:"default_branch"`
	PushedAt      string `json:"pushed_at"`
}

// ParsedPushedAt returns the last-push timestamp as time.Time when possible.
func (r RepoInfo) ParsedPushedAt() time.Time {
	if r.PushedAt == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05-07:00"} {
		if t, err := time.Parse(layout, r.PushedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}

// TreeResponse mirrors the recursive git tree payload.
type TreeResponse struct {
	Tree      []TreeNode `json:"tree"`
	Truncated bool       `json:"truncated"`
}

// TreeNode is one record of the tree listing. Type is "blob" for files and
// "tree" for directories; only blobs become catalog entries.
type TreeNode struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// IsBlob reports whether the node is a file.
func (n TreeNode) IsBlob() bool {
	return n.Type == "blob"
}
