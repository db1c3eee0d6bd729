package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/osscat-dev/osscat/pkg/domain/types"
)

// BuildCatalogInput selects the accounts processed by one run.
type BuildCatalogInput struct {
	// Account is the login of the designated user account. It is also
	// the username for organization permission checks.
	Account string

	// Organizations is the allow-list of organization logins. Any
	// discovered organization not listed here is skipped entirely.
	Organizations []string
}

func (x *BuildCatalogInput) Validate() error {
	if x.Account == "" {
		return goerr.Wrap(types.ErrInvalidOption, "account login is required")
	}
	return nil
}

// SelectsOrganization reports whether the given login is in the
// allow-list.
func (x *BuildCatalogInput) SelectsOrganization(login string) bool {
	for _, org := range x.Organizations {
		if org == login {
			return true
		}
	}
	return false
}
