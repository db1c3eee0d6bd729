package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/osscat-dev/osscat/pkg/domain/interfaces"
	"github.com/osscat-dev/osscat/pkg/domain/model"
	"github.com/osscat-dev/osscat/pkg/utils/logging"
)

// manifestPath is the conventional manifest location in a repository.
const manifestPath = "publiccode.yml"

// enrichRepository builds one catalog entry from a filtered repository:
// fork lineage, latest tag, remote manifest and local override. A
// fork's parent must resolve; its failure aborts the whole run. Absent
// or unparseable manifests and overrides are recorded as absence.
func (x *UseCase) enrichRepository(ctx context.Context, client interfaces.InstallationClient, account *model.Account, repo *model.Repository) (*model.CatalogEntry, error) {
	logger := logging.From(ctx).With(slog.String("repo", repo.Name))
	entry := model.NewCatalogEntry(repo)

	if repo.Fork {
		logger.Debug("Checking parent of repository")
		lineage, err := client.ParentRepository(ctx, repo.Owner, repo.Name)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve fork parent",
				goerr.V("account", account.Login), goerr.V("repo", repo.Name),
			)
		}
		entry.SetForkLineage(lineage)
	}

	logger.Debug("Checking tags of repository")
	tag, err := client.LatestTag(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve latest tag",
			goerr.V("account", account.Login), goerr.V("repo", repo.Name),
		)
	}
	if tag != nil {
		entry.SetTag(tag)
	}

	manifest, hasManifest := x.fetchManifest(ctx, client, repo, logger)

	if override := x.loadOverride(account.Login, repo.Name, logger); override != nil {
		if manifest == nil {
			manifest = &model.Manifest{}
		}
		manifest.Merge(override)
		hasManifest = true
	}

	entry.ApplyManifest(manifest)
	entry.Classify(repo, hasManifest)

	return entry, nil
}

// fetchManifest reads publiccode.yml from the repository's default
// branch. Any fetch or parse failure means "no remote manifest".
func (x *UseCase) fetchManifest(ctx context.Context, client interfaces.InstallationClient, repo *model.Repository, logger *slog.Logger) (*model.Manifest, bool) {
	logger.Debug("Looking for manifest in repository")

	data, err := client.RawContent(ctx, repo.Owner, repo.Name, manifestPath)
	if err != nil {
		logger.Debug("No manifest found in repository", slog.Any("reason", err))
		return nil, false
	}

	manifest, err := model.ParseManifest(data)
	if err != nil {
		logger.Debug("Manifest is not parseable, treating as absent", slog.Any("error", err))
		return nil, false
	}

	return manifest, true
}

// loadOverride reads the local override document. Any read or parse
// failure means "no override".
func (x *UseCase) loadOverride(account, repo string, logger *slog.Logger) *model.Manifest {
	data, err := x.clients.OverrideStore().Load(account, repo)
	if err != nil {
		return nil
	}

	override, err := model.ParseManifest(data)
	if err != nil {
		logger.Debug("Override is not parseable, treating as absent", slog.Any("error", err))
		return nil
	}

	logger.Debug("Found override for repository")
	return override
}
