package model

import (
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Manifest is the recognized subset of a publiccode.yml document. Both
// the remote manifest and the local override parse into this structure,
// and merging is a typed shallow merge: a field set in the override
// replaces the remote value wholesale.
type Manifest struct {
	Name              string                 `yaml:"name"`
	URL               string                 `yaml:"url"`
	LandingURL        string                 `yaml:"landingURL"`
	IsBasedOn         string                 `yaml:"isBasedOn"`
	SoftwareVersion   string                 `yaml:"softwareVersion"`
	ReleaseDate       string                 `yaml:"releaseDate"`
	DevelopmentStatus string                 `yaml:"developmentStatus"`
	Platforms         []string               `yaml:"platforms"`
	Categories        []string               `yaml:"categories"`
	Logo              string                 `yaml:"logo"`
	Description       map[string]Description `yaml:"description"`
	Legal             *Legal                 `yaml:"legal"`
}

// Description is one localized description block.
type Description struct {
	ShortDescription string `yaml:"shortDescription" json:"shortDescription,omitempty"`
	LongDescription  string `yaml:"longDescription" json:"longDescription,omitempty"`
	Documentation    string `yaml:"documentation" json:"documentation,omitempty"`
}

// Legal carries the license block of a manifest.
type Legal struct {
	License            string `yaml:"license" json:"license,omitempty"`
	MainCopyrightOwner string `yaml:"mainCopyrightOwner" json:"mainCopyrightOwner,omitempty"`
	RepoOwner          string `yaml:"repoOwner" json:"repoOwner,omitempty"`
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, goerr.Wrap(err, "failed to parse manifest yaml")
	}
	return &m, nil
}

// Merge overlays the override on top of x. Override keys win; unset
// override fields keep the remote value.
func (x *Manifest) Merge(override *Manifest) {
	if override == nil {
		return
	}
	if override.Name != "" {
		x.Name = override.Name
	}
	if override.URL != "" {
		x.URL = override.URL
	}
	if override.LandingURL != "" {
		x.LandingURL = override.LandingURL
	}
	if override.IsBasedOn != "" {
		x.IsBasedOn = override.IsBasedOn
	}
	if override.SoftwareVersion != "" {
		x.SoftwareVersion = override.SoftwareVersion
	}
	if override.ReleaseDate != "" {
		x.ReleaseDate = override.ReleaseDate
	}
	if override.DevelopmentStatus != "" {
		x.DevelopmentStatus = override.DevelopmentStatus
	}
	if override.Platforms != nil {
		x.Platforms = override.Platforms
	}
	if override.Categories != nil {
		x.Categories = override.Categories
	}
	if override.Logo != "" {
		x.Logo = override.Logo
	}
	if override.Description != nil {
		x.Description = override.Description
	}
	if override.Legal != nil {
		x.Legal = override.Legal
	}
}
