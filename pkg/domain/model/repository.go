package model

import (
	"strings"
	"time"
)

// Repository holds the provider-side facts of one repository as listed
// by the GitHub API, before enrichment.
type Repository struct {
	Owner       string
	Name        string
	Private     bool
	Archived    bool
	Fork        bool
	Stargazers  int
	Forks       int
	CloneURL    string
	Homepage    string
	Description string
	License     string
}

// ForkLineage is the parent of a forked repository.
type ForkLineage struct {
	Owner string
	Name  string
	URL   string
}

// TagInfo is the most recently committed tag of a repository.
type TagInfo struct {
	Name        string
	CommittedAt time.Time
}

// VersionFromTag strips a single leading "v" from a tag name.
func VersionFromTag(tag string) string {
	return strings.TrimPrefix(tag, "v")
}
