package sink

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"

	"github.com/osscat-dev/osscat/pkg/domain/interfaces"
	"github.com/osscat-dev/osscat/pkg/domain/model"
	"github.com/osscat-dev/osscat/pkg/utils/safe"
)

// CloudStorage uploads the catalog document to a GCS object.
type CloudStorage struct {
	client *storage.Client
	bucket string
	object string
}

var _ interfaces.ResultSink = (*CloudStorage)(nil)

func NewCloudStorage(ctx context.Context, bucket, object string, options ...option.ClientOption) (*CloudStorage, error) {
	if bucket == "" {
		return nil, goerr.New("bucket name is required")
	}

	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create cloud storage client")
	}

	return &CloudStorage{
		client: client,
		bucket: bucket,
		object: object,
	}, nil
}

func (x *CloudStorage) Prepare(ctx context.Context) error {
	return nil
}

func (x *CloudStorage) Write(ctx context.Context, catalog *model.Catalog) error {
	data, err := encodeCatalog(catalog)
	if err != nil {
		return err
	}

	w := x.client.Bucket(x.bucket).Object(x.object).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		safe.Close(w)
		return goerr.Wrap(err, "failed to upload catalog",
			goerr.V("bucket", x.bucket), goerr.V("object", x.object),
		)
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize catalog upload",
			goerr.V("bucket", x.bucket), goerr.V("object", x.object),
		)
	}

	return nil
}
