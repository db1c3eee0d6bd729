package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/osscat-dev/osscat/pkg/domain/types"
	"github.com/osscat-dev/osscat/pkg/infra/ghapp"
)

type GitHubApp struct {
	id             types.GitHubAppID
	privateKey     types.GitHubAppPrivateKey `masq:"secret"`
	privateKeyFile string
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("OSSCAT_GITHUB_APP_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("OSSCAT_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key-file",
			Usage:       "Path to GitHub App private key file",
			Category:    "GitHub App",
			Destination: &x.privateKeyFile,
			Sources:     cli.EnvVars("OSSCAT_GITHUB_APP_PRIVATE_KEY_FILE"),
		},
	}
}

func (x *GitHubApp) New() (*ghapp.Client, error) {
	pem := x.privateKey
	if pem == "" && x.privateKeyFile != "" {
		raw, err := os.ReadFile(filepath.Clean(x.privateKeyFile))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read private key file",
				goerr.V("path", x.privateKeyFile),
			)
		}
		pem = types.GitHubAppPrivateKey(raw)
	}

	return ghapp.New(x.id, pem)
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("privateKeyFile", x.privateKeyFile),
	)
}
