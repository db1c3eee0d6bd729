package ghapp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shurcooL/githubv4"

	"github.com/osscat-dev/osscat/pkg/domain/interfaces"
	"github.com/osscat-dev/osscat/pkg/domain/model"
	"github.com/osscat-dev/osscat/pkg/domain/types"
	"github.com/osscat-dev/osscat/pkg/utils/logging"
)

const listPageSize = 100

type Client struct {
	appID types.GitHubAppID
	pem   types.GitHubAppPrivateKey
}

var _ interfaces.GitHubApp = (*Client)(nil)

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID: appID,
		pem:   pem,
	}

	return client, nil
}

func (x *Client) buildAppClient() (*github.Client, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.NewAppsTransport(tr, int64(x.appID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create app transport")
	}
	return github.NewClient(&http.Client{Transport: itr}), nil
}

func (x *Client) buildInstallationClient(installID types.GitHubAppInstallID) (*installationClient, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.New(tr, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create installation transport",
			goerr.V("installID", installID),
		)
	}

	httpClient := &http.Client{Transport: itr}
	return &installationClient{
		gh:  github.NewClient(httpClient),
		gql: githubv4.NewClient(httpClient),
	}, nil
}

// EachInstallation lists the app's installations page by page and hands
// each installation's scoped client and account to the handler, in
// provider order. The handler runs before the next page is fetched.
// Installations of account types other than User or Organization are
// skipped without an error.
func (x *Client) EachInstallation(ctx context.Context, handler interfaces.InstallationHandler) error {
	appClient, err := x.buildAppClient()
	if err != nil {
		return err
	}

	opts := &github.ListOptions{PerPage: listPageSize}
	for {
		installations, resp, err := appClient.Apps.ListInstallations(ctx, opts)
		if err != nil {
			return goerr.Wrap(err, "failed to list app installations")
		}

		for _, installation := range installations {
			account := &model.Account{
				Login:     installation.GetAccount().GetLogin(),
				Name:      installation.GetAccount().GetName(),
				AvatarURL: installation.GetAccount().GetAvatarURL(),
				HTMLURL:   installation.GetAccount().GetHTMLURL(),
				Type:      types.AccountType(installation.GetAccount().GetType()),
			}
			if err := account.Validate(); err != nil {
				return goerr.Wrap(err, "installation has invalid account",
					goerr.V("installID", installation.GetID()),
				)
			}

			switch account.Type {
			case types.AccountTypeUser, types.AccountTypeOrganization:
			default:
				logging.From(ctx).Debug("Skipping installation of unsupported account type",
					slog.Int64("installID", installation.GetID()),
					slog.String("account", account.Login),
					slog.String("type", string(account.Type)),
				)
				continue
			}

			client, err := x.buildInstallationClient(types.GitHubAppInstallID(installation.GetID()))
			if err != nil {
				return err
			}

			logging.From(ctx).Debug("Found installation",
				slog.Int64("installID", installation.GetID()),
				slog.String("account", account.Login),
				slog.String("type", string(account.Type)),
			)

			if err := handler(ctx, client, account); err != nil {
				return err
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return nil
}

type installationClient struct {
	gh  *github.Client
	gql *githubv4.Client
}

var _ interfaces.InstallationClient = (*installationClient)(nil)

// EachRepository lists the account's repositories page by page, in
// provider order. The handler runs for every repository of a page
// before the next page is fetched.
func (x *installationClient) EachRepository(ctx context.Context, account *model.Account, handler interfaces.RepositoryHandler) error {
	listPage := func(page int) ([]*github.Repository, *github.Response, error) {
		if account.Type == types.AccountTypeOrganization {
			opts := &github.RepositoryListByOrgOptions{
				ListOptions: github.ListOptions{PerPage: listPageSize, Page: page},
			}
			return x.gh.Repositories.ListByOrg(ctx, account.Login, opts)
		}

		opts := &github.RepositoryListOptions{
			ListOptions: github.ListOptions{PerPage: listPageSize, Page: page},
		}
		return x.gh.Repositories.List(ctx, account.Login, opts)
	}

	page := 0
	for {
		repos, resp, err := listPage(page)
		if err != nil {
			return goerr.Wrap(err, "failed to list repositories",
				goerr.V("account", account.Login),
			)
		}

		for _, repo := range repos {
			if err := handler(ctx, toRepository(account.Login, repo)); err != nil {
				return err
			}
		}

		if resp.NextPage == 0 {
			break
		}
		page = resp.NextPage
	}

	return nil
}

func toRepository(owner string, repo *github.Repository) *model.Repository {
	return &model.Repository{
		Owner:       owner,
		Name:        repo.GetName(),
		Private:     repo.GetPrivate(),
		Archived:    repo.GetArchived(),
		Fork:        repo.GetFork(),
		Stargazers:  repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		CloneURL:    repo.GetCloneURL(),
		Homepage:    repo.GetHomepage(),
		Description: repo.GetDescription(),
		License:     repo.GetLicense().GetSPDXID(),
	}
}

func (x *installationClient) PermissionLevel(ctx context.Context, owner, repo, username string) (types.Permission, error) {
	level, _, err := x.gh.Repositories.GetPermissionLevel(ctx, owner, repo, username)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get collaborator permission level",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("username", username),
		)
	}

	return types.Permission(level.GetPermission()), nil
}

func (x *installationClient) ParentRepository(ctx context.Context, owner, repo string) (*model.ForkLineage, error) {
	var q struct {
		Repository struct {
			Parent *struct {
				Name  githubv4.String
				Owner struct {
					Login githubv4.String
				}
				URL githubv4.URI
			}
		} `graphql:"repository(owner: $owner, name: $name)"`
	}
	vars := map[string]any{
		"owner": githubv4.String(owner),
		"name":  githubv4.String(repo),
	}

	if err := x.gql.Query(ctx, &q, vars); err != nil {
		return nil, goerr.Wrap(err, "failed to query fork parent",
			goerr.V("owner", owner), goerr.V("repo", repo),
		)
	}

	parent := q.Repository.Parent
	if parent == nil {
		return nil, goerr.Wrap(types.ErrNoParent, "parent repository not found",
			goerr.V("owner", owner), goerr.V("repo", repo),
		)
	}

	return &model.ForkLineage{
		Owner: string(parent.Owner.Login),
		Name:  string(parent.Name),
		URL:   parent.URL.String(),
	}, nil
}

func (x *installationClient) LatestTag(ctx context.Context, owner, repo string) (*model.TagInfo, error) {
	var q struct {
		Repository struct {
			Refs struct {
				Nodes []struct {
					Name   githubv4.String
					Target struct {
						Commit struct {
							CommittedDate githubv4.DateTime
						} `graphql:"... on Commit"`
					}
				}
			} `graphql:"refs(refPrefix: \"refs/tags/\", first: 1, orderBy: {field: TAG_COMMIT_DATE, direction: DESC})"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}
	vars := map[string]any{
		"owner": githubv4.String(owner),
		"name":  githubv4.String(repo),
	}

	if err := x.gql.Query(ctx, &q, vars); err != nil {
		return nil, goerr.Wrap(err, "failed to query latest tag",
			goerr.V("owner", owner), goerr.V("repo", repo),
		)
	}

	nodes := q.Repository.Refs.Nodes
	if len(nodes) == 0 {
		return nil, nil
	}

	return &model.TagInfo{
		Name:        string(nodes[0].Name),
		CommittedAt: nodes[0].Target.Commit.CommittedDate.Time,
	}, nil
}

func (x *installationClient) RawContent(ctx context.Context, owner, repo, path string) ([]byte, error) {
	file, _, resp, err := x.gh.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, goerr.Wrap(types.ErrContentNotFound, "file not found",
				goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("path", path),
			)
		}
		return nil, goerr.Wrap(err, "failed to get repository content",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("path", path),
		)
	}
	if file == nil {
		return nil, goerr.Wrap(types.ErrContentNotFound, "path is not a file",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("path", path),
		)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository content",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("path", path),
		)
	}

	return []byte(content), nil
}
