package usecase

import (
	"context"
	"log/slog"

	"github.com/osscat-dev/osscat/pkg/domain/interfaces"
	"github.com/osscat-dev/osscat/pkg/domain/model"
	"github.com/osscat-dev/osscat/pkg/domain/types"
	"github.com/osscat-dev/osscat/pkg/utils/logging"
)

// BuildCatalog walks every reachable installation and assembles the
// software catalog: the configured user account becomes the top-level
// account section, allow-listed organizations become organization
// sections, in discovery order. Accounts, and repositories within one
// account, are processed strictly one at a time. The first fatal error
// aborts the run and discards all accumulated state.
func (x *UseCase) BuildCatalog(ctx context.Context, input *model.BuildCatalogInput) (*model.Catalog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logger := logging.From(ctx)
	catalog := model.NewCatalog()

	logger.Info("Checking app installations")
	err := x.clients.GitHubApp().EachInstallation(ctx, func(ctx context.Context, client interfaces.InstallationClient, account *model.Account) error {
		accLogger := logger.With(slog.String("account", account.Login))

		var section *model.AccountSection
		switch {
		case account.Login == input.Account:
			accLogger.Info("Found user account")
			section = model.NewAccountSection(account)
			catalog.Account = section

		case account.Type == types.AccountTypeOrganization:
			if !input.SelectsOrganization(account.Login) {
				accLogger.Debug("Skipping organization according to config")
				return nil
			}
			accLogger.Info("Found organization")
			section = model.NewAccountSection(account)
			catalog.Organizations = append(catalog.Organizations, section)

		default:
			accLogger.Debug("Skipping installation of unhandled account type",
				slog.String("type", string(account.Type)),
			)
			return nil
		}

		return x.collectRepositories(logging.With(ctx, accLogger), client, account, input, section)
	})
	if err != nil {
		return nil, err
	}

	return catalog, nil
}
