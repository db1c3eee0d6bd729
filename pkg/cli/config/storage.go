package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"

	"github.com/osscat-dev/osscat/pkg/infra/sink"
)

type CloudStorage struct {
	bucket string
	object string
}

func (x *CloudStorage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "Cloud Storage bucket name (enables the Cloud Storage sink)",
			Category:    "Cloud Storage",
			Destination: &x.bucket,
			Sources:     cli.EnvVars("OSSCAT_GCS_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "gcs-object",
			Usage:       "Cloud Storage object name of the catalog document",
			Category:    "Cloud Storage",
			Value:       "index.json",
			Destination: &x.object,
			Sources:     cli.EnvVars("OSSCAT_GCS_OBJECT"),
		},
	}
}

func (x *CloudStorage) Enabled() bool {
	return x.bucket != ""
}

func (x *CloudStorage) NewSink(ctx context.Context, options ...option.ClientOption) (*sink.CloudStorage, error) {
	return sink.NewCloudStorage(ctx, x.bucket, x.object, options...)
}

func (x CloudStorage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("bucket", x.bucket),
		slog.String("object", x.object),
	)
}
