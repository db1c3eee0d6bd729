package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"

	"github.com/osscat-dev/osscat/pkg/infra/sink"
)

type BigQuery struct {
	projectID string
	datasetID string
	tableID   string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bq-project-id",
			Usage:       "BigQuery project ID (enables the BigQuery sink)",
			Category:    "BigQuery",
			Destination: &x.projectID,
			Sources:     cli.EnvVars("OSSCAT_BQ_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bq-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Destination: &x.datasetID,
			Sources:     cli.EnvVars("OSSCAT_BQ_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bq-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Value:       "catalog",
			Destination: &x.tableID,
			Sources:     cli.EnvVars("OSSCAT_BQ_TABLE_ID"),
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != ""
}

func (x *BigQuery) NewSink(ctx context.Context, options ...option.ClientOption) (*sink.BigQuery, error) {
	return sink.NewBigQuery(ctx, x.projectID, x.datasetID, x.tableID, options...)
}

func (x BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("projectID", x.projectID),
		slog.String("datasetID", x.datasetID),
		slog.String("tableID", x.tableID),
	)
}
