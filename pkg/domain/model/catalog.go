package model

import "time"

// DevelopmentStatusObsolete marks archived repositories in the final
// document, regardless of what the manifest declares.
const DevelopmentStatusObsolete = "obsolete"

// DefaultDescriptionLang is the language key used when wrapping a
// repository description that no manifest overrides.
const DefaultDescriptionLang = "en"

// ForkRef identifies the upstream of a forked repository.
type ForkRef struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// EntryMeta is the catalog-local metadata of one repository. ForkOf is
// serialized as null for non-forks.
type EntryMeta struct {
	Name       string   `json:"name"`
	ForkOf     *ForkRef `json:"forkOf"`
	IsVariant  bool     `json:"isVariant"`
	IsArchived bool     `json:"isArchived"`
	Stargazers int      `json:"stargazers"`
	Forks      int      `json:"forks"`
}

// CatalogEntry is the final per-repository record: repository facts,
// fork lineage, tag info and merged manifest fields in one flat
// structure. Field order is fixed for stable serialization.
type CatalogEntry struct {
	Meta              EntryMeta              `json:"meta"`
	URL               string                 `json:"url"`
	Name              string                 `json:"name,omitempty"`
	Description       map[string]Description `json:"description,omitempty"`
	LandingURL        string                 `json:"landingURL,omitempty"`
	IsBasedOn         string                 `json:"isBasedOn,omitempty"`
	SoftwareVersion   string                 `json:"softwareVersion,omitempty"`
	ReleaseDate       string                 `json:"releaseDate,omitempty"`
	DevelopmentStatus string                 `json:"developmentStatus,omitempty"`
	Platforms         []string               `json:"platforms,omitempty"`
	Categories        []string               `json:"categories,omitempty"`
	Logo              string                 `json:"logo,omitempty"`
	Legal             *Legal                 `json:"legal,omitempty"`
}

// NewCatalogEntry derives the base entry from raw repository facts.
func NewCatalogEntry(repo *Repository) *CatalogEntry {
	entry := &CatalogEntry{
		Meta: EntryMeta{
			Name:       repo.Name,
			IsArchived: repo.Archived,
			Stargazers: repo.Stargazers,
			Forks:      repo.Forks,
		},
		URL:        repo.CloneURL,
		LandingURL: repo.Homepage,
	}

	if repo.Description != "" {
		entry.Description = map[string]Description{
			DefaultDescriptionLang: {ShortDescription: repo.Description},
		}
	}
	if repo.License != "" {
		entry.Legal = &Legal{License: repo.License}
	}

	return entry
}

// SetForkLineage records the resolved parent of a fork.
func (x *CatalogEntry) SetForkLineage(lineage *ForkLineage) {
	x.Meta.ForkOf = &ForkRef{Owner: lineage.Owner, Name: lineage.Name}
	x.IsBasedOn = lineage.URL + ".git"
}

// SetTag records the latest tag as version and release date.
func (x *CatalogEntry) SetTag(tag *TagInfo) {
	x.SoftwareVersion = VersionFromTag(tag.Name)
	if !tag.CommittedAt.IsZero() {
		x.ReleaseDate = tag.CommittedAt.UTC().Format(time.RFC3339)
	}
}

// ApplyManifest overlays merged manifest fields onto the entry. Set
// manifest fields win over repository-derived values.
func (x *CatalogEntry) ApplyManifest(m *Manifest) {
	if m == nil {
		return
	}
	if m.Name != "" {
		x.Name = m.Name
	}
	if m.URL != "" {
		x.URL = m.URL
	}
	if m.LandingURL != "" {
		x.LandingURL = m.LandingURL
	}
	if m.IsBasedOn != "" {
		x.IsBasedOn = m.IsBasedOn
	}
	if m.SoftwareVersion != "" {
		x.SoftwareVersion = m.SoftwareVersion
	}
	if m.ReleaseDate != "" {
		x.ReleaseDate = m.ReleaseDate
	}
	if m.DevelopmentStatus != "" {
		x.DevelopmentStatus = m.DevelopmentStatus
	}
	if m.Platforms != nil {
		x.Platforms = m.Platforms
	}
	if m.Categories != nil {
		x.Categories = m.Categories
	}
	if m.Logo != "" {
		x.Logo = m.Logo
	}
	if m.Description != nil {
		x.Description = m.Description
	}
	if m.Legal != nil {
		x.Legal = m.Legal
	}
}

// Classify derives the post-merge flags. For forks the variant check
// compares the entry's effective URL against the repository's own clone
// URL: a manifest that claims the fork's URL (or declares none at all)
// marks the fork as a variant. Non-forks are variants when the merged
// manifest declares an isBasedOn origin. Archived repositories are
// forced to obsolete regardless of manifest content.
func (x *CatalogEntry) Classify(repo *Repository, hasManifest bool) {
	if hasManifest {
		if repo.Fork {
			x.Meta.IsVariant = x.URL == repo.CloneURL
		} else {
			x.Meta.IsVariant = x.IsBasedOn != ""
		}
	}
	if repo.Archived {
		x.DevelopmentStatus = DevelopmentStatusObsolete
	}
}
