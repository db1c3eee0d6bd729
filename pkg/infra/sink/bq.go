package sink

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/osscat-dev/osscat/pkg/domain/interfaces"
	"github.com/osscat-dev/osscat/pkg/domain/model"
	"github.com/osscat-dev/osscat/pkg/utils/logging"
)

// catalogRow is one flattened catalog entry for BigQuery.
type catalogRow struct {
	RunAt             time.Time
	Owner             string
	OwnerType         string
	Repo              string
	URL               string
	IsVariant         bool
	IsArchived        bool
	Stargazers        int
	Forks             int
	SoftwareVersion   string
	ReleaseDate       string
	DevelopmentStatus string
	License           string
}

// BigQuery inserts one row per catalog entry. The table is created from
// the inferred row schema when it does not exist yet.
type BigQuery struct {
	client  *bigquery.Client
	dataset string
	table   string
}

var _ interfaces.ResultSink = (*BigQuery)(nil)

func NewBigQuery(ctx context.Context, projectID, datasetID, tableID string, options ...option.ClientOption) (*BigQuery, error) {
	if projectID == "" || datasetID == "" || tableID == "" {
		return nil, goerr.New("project ID, dataset ID and table ID are required")
	}

	client, err := bigquery.NewClient(ctx, projectID, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}

	return &BigQuery{
		client:  client,
		dataset: datasetID,
		table:   tableID,
	}, nil
}

func (x *BigQuery) Prepare(ctx context.Context) error {
	return nil
}

func (x *BigQuery) Write(ctx context.Context, catalog *model.Catalog) error {
	rows := flattenCatalog(catalog, logging.CtxTime(ctx))
	if len(rows) == 0 {
		return nil
	}

	schema, err := bqs.Infer(rows[0])
	if err != nil {
		return goerr.Wrap(err, "failed to infer catalog row schema")
	}

	table := x.client.Dataset(x.dataset).Table(x.table)
	if _, err := table.Metadata(ctx); err != nil {
		gErr, ok := err.(*googleapi.Error)
		if !ok || gErr.Code != 404 {
			return goerr.Wrap(err, "failed to get table metadata",
				goerr.V("dataset", x.dataset), goerr.V("table", x.table),
			)
		}
		if err := table.Create(ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
			return goerr.Wrap(err, "failed to create table",
				goerr.V("dataset", x.dataset), goerr.V("table", x.table),
			)
		}
	}

	savers := make([]*bigquery.StructSaver, len(rows))
	for i, row := range rows {
		savers[i] = &bigquery.StructSaver{Schema: schema, Struct: row}
	}

	if err := table.Inserter().Put(ctx, savers); err != nil {
		return goerr.Wrap(err, "failed to insert catalog rows",
			goerr.V("dataset", x.dataset), goerr.V("table", x.table),
		)
	}

	return nil
}

func flattenCatalog(catalog *model.Catalog, runAt time.Time) []*catalogRow {
	var rows []*catalogRow

	appendSection := func(section *model.AccountSection, ownerType string) {
		for _, entry := range section.Repos {
			row := &catalogRow{
				RunAt:             runAt,
				Owner:             section.Name,
				OwnerType:         ownerType,
				Repo:              entry.Meta.Name,
				URL:               entry.URL,
				IsVariant:         entry.Meta.IsVariant,
				IsArchived:        entry.Meta.IsArchived,
				Stargazers:        entry.Meta.Stargazers,
				Forks:             entry.Meta.Forks,
				SoftwareVersion:   entry.SoftwareVersion,
				ReleaseDate:       entry.ReleaseDate,
				DevelopmentStatus: entry.DevelopmentStatus,
			}
			if entry.Legal != nil {
				row.License = entry.Legal.License
			}
			rows = append(rows, row)
		}
	}

	if catalog.Account != nil {
		appendSection(catalog.Account, "account")
	}
	for _, org := range catalog.Organizations {
		appendSection(org, "organization")
	}

	return rows
}
