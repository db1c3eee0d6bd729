package ghapp_test

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/osscat-dev/osscat/pkg/domain/interfaces"
	"github.com/osscat-dev/osscat/pkg/domain/model"
	"github.com/osscat-dev/osscat/pkg/domain/types"
	"github.com/osscat-dev/osscat/pkg/infra/ghapp"
	"github.com/osscat-dev/osscat/pkg/utils/testutil"
)

func TestNew(t *testing.T) {
	t.Run("missing app ID", func(t *testing.T) {
		_, err := ghapp.New(0, "dummy-pem")
		gt.Error(t, err)
	})

	t.Run("missing private key", func(t *testing.T) {
		_, err := ghapp.New(12345, "")
		gt.Error(t, err)
	})

	t.Run("valid options", func(t *testing.T) {
		client := gt.R1(ghapp.New(12345, "dummy-pem")).NoError(t)
		gt.V(t, client).NotEqual(nil)
	})
}

func newTestClient(t *testing.T) *ghapp.Client {
	appIDStr := testutil.GetEnvOrSkip(t, "TEST_GITHUB_APP_ID")
	keyFile := testutil.GetEnvOrSkip(t, "TEST_GITHUB_APP_PRIVATE_KEY_FILE")

	appID, err := strconv.ParseInt(appIDStr, 10, 64)
	gt.NoError(t, err)
	pem, err := os.ReadFile(keyFile)
	gt.NoError(t, err)

	return gt.R1(ghapp.New(types.GitHubAppID(appID), types.GitHubAppPrivateKey(pem))).NoError(t)
}

func TestEachInstallation(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	var accounts []*model.Account
	gt.NoError(t, client.EachInstallation(ctx, func(ctx context.Context, installed interfaces.InstallationClient, account *model.Account) error {
		accounts = append(accounts, account)
		return nil
	}))

	gt.A(t, accounts).Longer(0)
	for _, account := range accounts {
		gt.NoError(t, account.Validate())
	}
}

func TestInstallationClient(t *testing.T) {
	client := newTestClient(t)
	owner := testutil.GetEnvOrSkip(t, "TEST_GITHUB_FORK_OWNER")
	repo := testutil.GetEnvOrSkip(t, "TEST_GITHUB_FORK_REPO")
	ctx := context.Background()

	gt.NoError(t, client.EachInstallation(ctx, func(ctx context.Context, installed interfaces.InstallationClient, account *model.Account) error {
		if account.Login != owner {
			return nil
		}

		t.Run("fork parent", func(t *testing.T) {
			lineage := gt.R1(installed.ParentRepository(ctx, owner, repo)).NoError(t)
			gt.V(t, lineage.Owner).NotEqual("")
			gt.V(t, lineage.URL).NotEqual("")
		})

		t.Run("missing content", func(t *testing.T) {
			_, err := installed.RawContent(ctx, owner, repo, "no-such-file.yml")
			gt.Error(t, err)
		})

		return nil
	}))
}
