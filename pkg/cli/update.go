package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"

	"github.com/osscat-dev/osscat/pkg/cli/config"
	"github.com/osscat-dev/osscat/pkg/domain/interfaces"
	"github.com/osscat-dev/osscat/pkg/domain/model"
	"github.com/osscat-dev/osscat/pkg/infra"
	"github.com/osscat-dev/osscat/pkg/infra/overrides"
	"github.com/osscat-dev/osscat/pkg/infra/sink"
	"github.com/osscat-dev/osscat/pkg/usecase"
	"github.com/osscat-dev/osscat/pkg/utils/errutil"
	"github.com/osscat-dev/osscat/pkg/utils/logging"
)

func updateCommand() *cli.Command {
	var (
		githubApp    config.GitHubApp
		sentryCfg    config.Sentry
		bigQuery     config.BigQuery
		cloudStorage config.CloudStorage

		input        model.BuildCatalogInput
		overridesDir string
		outputDir    string
		credsFile    string
	)

	return &cli.Command{
		Name:    "update",
		Aliases: []string{"up"},
		Usage:   "Build the software catalog and write it to the configured sinks",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "account",
				Aliases:     []string{"a"},
				Usage:       "Login of the user account (also used for permission checks)",
				Sources:     cli.EnvVars("OSSCAT_GITHUB_ACCOUNT"),
				Destination: &input.Account,
				Required:    true,
			},
			&cli.StringSliceFlag{
				Name:        "organizations",
				Aliases:     []string{"orgs"},
				Usage:       "Allow-list of organization logins",
				Sources:     cli.EnvVars("OSSCAT_GITHUB_ORGANIZATIONS"),
				Destination: &input.Organizations,
			},
			&cli.StringFlag{
				Name:        "overrides-dir",
				Usage:       "Directory of per-repository override documents",
				Sources:     cli.EnvVars("OSSCAT_OVERRIDES_DIR"),
				Value:       "overrides",
				Destination: &overridesDir,
			},
			&cli.StringFlag{
				Name:        "output-dir",
				Usage:       "Directory the catalog document is written to",
				Sources:     cli.EnvVars("OSSCAT_OUTPUT_DIR"),
				Value:       "output",
				Destination: &outputDir,
			},
			&cli.StringFlag{
				Name:        "google-credentials-file",
				Usage:       "Service account credentials for BigQuery / Cloud Storage sinks",
				Sources:     cli.EnvVars("OSSCAT_GOOGLE_CREDENTIALS_FILE"),
				Destination: &credsFile,
			},
		}, githubApp.Flags(), sentryCfg.Flags(), bigQuery.Flags(), cloudStorage.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}

			logging.Default().Info("Starting update",
				slog.String("account", input.Account),
				slog.Any("organizations", input.Organizations),
				slog.String("overrides_dir", overridesDir),
				slog.String("output_dir", outputDir),
				slog.Any("github_app", githubApp),
				slog.Any("bigquery", bigQuery),
				slog.Any("cloud_storage", cloudStorage),
			)

			ghClient, err := githubApp.New()
			if err != nil {
				return err
			}

			var googleOpts []option.ClientOption
			if credsFile != "" {
				googleOpts = append(googleOpts, option.WithCredentialsFile(credsFile))
			}

			sinks := []interfaces.ResultSink{sink.NewLocal(outputDir)}
			if bigQuery.Enabled() {
				bqSink, err := bigQuery.NewSink(ctx, googleOpts...)
				if err != nil {
					return err
				}
				sinks = append(sinks, bqSink)
			}
			if cloudStorage.Enabled() {
				gcsSink, err := cloudStorage.NewSink(ctx, googleOpts...)
				if err != nil {
					return err
				}
				sinks = append(sinks, gcsSink)
			}

			clientOpts := []infra.Option{
				infra.WithGitHubApp(ghClient),
				infra.WithOverrideStore(overrides.New(overridesDir)),
			}
			for _, s := range sinks {
				clientOpts = append(clientOpts, infra.WithSink(s))
			}

			return runUpdate(ctx, infra.New(clientOpts...), &input)
		},
	}
}

// runUpdate prepares the sinks, runs the pipeline, and persists the
// catalog. Sinks are written only after the whole pipeline succeeded; a
// fatal run leaves no document behind.
func runUpdate(ctx context.Context, clients *infra.Clients, input *model.BuildCatalogInput) error {
	reqID, ctx := logging.CtxRequestID(ctx)
	ctx = logging.With(ctx, logging.Default().With(slog.String("request_id", reqID.String())))

	for _, s := range clients.Sinks() {
		if err := s.Prepare(ctx); err != nil {
			return err
		}
	}

	uc := usecase.New(clients)
	catalog, err := uc.BuildCatalog(ctx, input)
	if err != nil {
		errutil.HandleError(ctx, "failed to build catalog", err)
		return err
	}

	logging.From(ctx).Info("Writing results",
		slog.Int("organizations", len(catalog.Organizations)),
		slog.Bool("account_found", catalog.Account != nil),
	)
	for _, s := range clients.Sinks() {
		if err := s.Write(ctx, catalog); err != nil {
			errutil.HandleError(ctx, "failed to write catalog", err)
			return err
		}
	}

	logging.From(ctx).Info("Update finished")
	return nil
}
