package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubApp InstallationClient OverrideStore ResultSink

import (
	"context"

	"github.com/osscat-dev/osscat/pkg/domain/model"
	"github.com/osscat-dev/osscat/pkg/domain/types"
)

// InstallationHandler receives one installation's scoped client and
// account. Returning an error stops the iteration and propagates.
type InstallationHandler func(ctx context.Context, client InstallationClient, account *model.Account) error

// RepositoryHandler receives one listed repository. Returning an error
// stops the iteration and propagates.
type RepositoryHandler func(ctx context.Context, repo *model.Repository) error

// GitHubApp enumerates the app's installations. Iteration is lazy: one
// page of installations is fetched at a time and handlers run before
// the next page is requested.
type GitHubApp interface {
	EachInstallation(ctx context.Context, handler InstallationHandler) error
}

// InstallationClient is a credential context bound to exactly one
// installation, scoped to that installation's account.
type InstallationClient interface {
	// EachRepository lists the account's repositories page by page, in
	// provider order.
	EachRepository(ctx context.Context, account *model.Account, handler RepositoryHandler) error

	// PermissionLevel looks up the collaborator permission of username
	// on owner/repo.
	PermissionLevel(ctx context.Context, owner, repo, username string) (types.Permission, error)

	// ParentRepository resolves the fork parent of owner/repo. A fork
	// without a resolvable parent is an error.
	ParentRepository(ctx context.Context, owner, repo string) (*model.ForkLineage, error)

	// LatestTag returns the most recently committed tag, or nil if the
	// repository has no tags.
	LatestTag(ctx context.Context, owner, repo string) (*model.TagInfo, error)

	// RawContent fetches a file from the repository's default branch.
	RawContent(ctx context.Context, owner, repo, path string) ([]byte, error)
}

// OverrideStore is the local per-repository override lookup, keyed by
// (account login, repository name).
type OverrideStore interface {
	// Ignored reports whether the repository carries an ignore marker.
	Ignored(account, repo string) bool

	// Load returns the raw override document, or an error when absent
	// or unreadable. Callers treat any error as "no override".
	Load(account, repo string) ([]byte, error)
}

// ResultSink persists the final catalog. Prepare runs once before the
// pipeline starts, Write exactly once after it completes.
type ResultSink interface {
	Prepare(ctx context.Context) error
	Write(ctx context.Context, catalog *model.Catalog) error
}
