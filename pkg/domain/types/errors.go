package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrInvalidGitHubData = goerr.New("invalid github data")

	// ErrContentNotFound marks an absent repository file. Callers treat
	// it as "no manifest", not as a failure.
	ErrContentNotFound = goerr.New("content not found")

	// ErrNoParent is returned when a fork's parent cannot be resolved.
	// This is fatal for the whole run.
	ErrNoParent = goerr.New("fork has no resolvable parent")
)
