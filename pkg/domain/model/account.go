package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/osscat-dev/osscat/pkg/domain/types"
)

// Account is a user or organization a GitHub App installation belongs
// to.
type Account struct {
	Login     string
	Name      string
	AvatarURL string
	HTMLURL   string
	Type      types.AccountType
}

// Validate checks the fields the pipeline depends on. The account type
// is not validated here: installations of unrecognized types are
// skipped during enumeration, never treated as an error.
func (x *Account) Validate() error {
	if x.Login == "" {
		return goerr.Wrap(types.ErrInvalidGitHubData, "account login is empty")
	}
	return nil
}

// AccountSection groups one account's catalog entries. A section exists
// as soon as its account is discovered, even when every repository is
// filtered out.
type AccountSection struct {
	Name   string          `json:"name"`
	Avatar string          `json:"avatar,omitempty"`
	URL    string          `json:"url,omitempty"`
	Repos  []*CatalogEntry `json:"repos"`
}

func NewAccountSection(account *Account) *AccountSection {
	return &AccountSection{
		Name:   account.Login,
		Avatar: account.AvatarURL,
		URL:    account.HTMLURL,
		Repos:  []*CatalogEntry{},
	}
}

// Catalog is the final document of one run. Organizations keep
// discovery order; Account is absent when no installation matched the
// configured user account.
type Catalog struct {
	Organizations []*AccountSection `json:"organizations"`
	Account       *AccountSection   `json:"account,omitempty"`
}

func NewCatalog() *Catalog {
	return &Catalog{
		Organizations: []*AccountSection{},
	}
}
