// Package proof stores the three project artifact links required before
// shipping: the builder project, the GitHub repository and the deployed
// URL.
package proof

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/anuragpatil2882004-ui/job-traking/internal/store"
)

// Key is the store key holding the links record.
const Key = "jnt_proof_links"

var urlPattern = regexp.MustCompile(`(?i)^https?://\S+$`)

// Links holds the three artifact URLs. Empty means not provided yet.
type Links struct {
	LovableLink string `json:"lovableLink"`
	GithubLink  string `json:"githubLink"`
	DeployedURL string `json:"deployedUrl"`
}

// Store reads and writes the links through a key-value store.
type Store struct {
	kv store.Store
}

func NewStore(kv store.Store) *Store {
	return &Store{kv: kv}
}

// Get returns the stored links; absent or malformed state yields empty
// links.
func (s *Store) Get() Links {
	raw, ok := s.kv.Get(Key)
	if !ok {
		return Links{}
	}

	var links Links
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return Links{}
	}
	return links
}

// Set trims and persists the links, reporting whether the write reached
// the store.
func (s *Store) Set(links Links) bool {
	links.LovableLink = strings.TrimSpace(links.LovableLink)
	links.GithubLink = strings.TrimSpace(links.GithubLink)
	links.DeployedURL = strings.TrimSpace(links.DeployedURL)

	data, err := json.Marshal(links)
	if err != nil {
		return false
	}
	return s.kv.Set(Key, string(data))
}

// AllProvided reports whether all three links are valid URLs.
func (s *Store) AllProvided() bool {
	links := s.Get()
	return IsValidURL(links.LovableLink) && IsValidURL(links.GithubLink) && IsValidURL(links.DeployedURL)
}

// IsValidURL reports whether s looks like a usable http(s) URL.
func IsValidURL(s string) bool {
	t := strings.TrimSpace(s)
	if len(t) < 10 {
		return false
	}
	return urlPattern.MatchString(t)
}
