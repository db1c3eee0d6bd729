package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/osscat-dev/osscat/pkg/domain/interfaces"
	"github.com/osscat-dev/osscat/pkg/domain/model"
	"github.com/osscat-dev/osscat/pkg/domain/types"
	"github.com/osscat-dev/osscat/pkg/utils/logging"
)

// collectRepositories lists one account's repositories in provider
// order and appends an enriched catalog entry for every repository that
// passes the filters: public, no local ignore marker, and (for
// organizations) admin or write permission for the configured user.
func (x *UseCase) collectRepositories(ctx context.Context, client interfaces.InstallationClient, account *model.Account, input *model.BuildCatalogInput, section *model.AccountSection) error {
	logger := logging.From(ctx)
	logger.Info("Checking repositories")

	return client.EachRepository(ctx, account, func(ctx context.Context, repo *model.Repository) error {
		if repo.Private {
			logger.Debug("Skipping private repository", slog.String("repo", repo.Name))
			return nil
		}

		if x.clients.OverrideStore().Ignored(account.Login, repo.Name) {
			logger.Debug("Skipping repository as it's ignored", slog.String("repo", repo.Name))
			return nil
		}

		if account.Type == types.AccountTypeOrganization {
			logger.Debug("Checking permissions of repository", slog.String("repo", repo.Name))
			permission, err := client.PermissionLevel(ctx, account.Login, repo.Name, input.Account)
			if err != nil {
				return goerr.Wrap(err, "failed to check repository permission",
					goerr.V("account", account.Login), goerr.V("repo", repo.Name),
				)
			}
			if !permission.Writable() {
				logger.Debug("Skipping inaccessible repository",
					slog.String("repo", repo.Name),
					slog.String("permission", string(permission)),
				)
				return nil
			}
		}

		logger.Info("Found repository", slog.String("repo", repo.Name))
		entry, err := x.enrichRepository(ctx, client, account, repo)
		if err != nil {
			return err
		}

		section.Repos = append(section.Repos, entry)
		return nil
	})
}
