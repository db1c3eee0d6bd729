package sink

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"github.com/osscat-dev/osscat/pkg/domain/interfaces"
	"github.com/osscat-dev/osscat/pkg/domain/model"
)

const indexFile = "index.json"

// encodeCatalog serializes the catalog with 2-space indent. Struct
// field order keeps the bytes stable across runs.
func encodeCatalog(catalog *model.Catalog) ([]byte, error) {
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode catalog")
	}
	return data, nil
}

// Local writes the catalog to <dir>/index.json. Prepare clears and
// recreates the directory once before the pipeline starts; Write runs
// exactly once after it completes.
type Local struct {
	dir string
}

var _ interfaces.ResultSink = (*Local)(nil)

func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

func (x *Local) Prepare(ctx context.Context) error {
	if err := os.RemoveAll(x.dir); err != nil {
		return goerr.Wrap(err, "failed to clear output directory", goerr.V("dir", x.dir))
	}
	if err := os.MkdirAll(x.dir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", x.dir))
	}
	return nil
}

func (x *Local) Write(ctx context.Context, catalog *model.Catalog) error {
	data, err := encodeCatalog(catalog)
	if err != nil {
		return err
	}

	path := filepath.Join(x.dir, indexFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write catalog", goerr.V("path", path))
	}

	return nil
}
