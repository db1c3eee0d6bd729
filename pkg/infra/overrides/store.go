package overrides

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"github.com/osscat-dev/osscat/pkg/domain/interfaces"
)

const (
	ignoreMarker = "ignore"
	overrideFile = "override.yml"
)

// Store reads local per-repository override documents from a directory
// tree laid out as <root>/<account>/<repo>/. The tree is never written
// by this system.
type Store struct {
	root string
}

var _ interfaces.OverrideStore = (*Store)(nil)

func New(root string) *Store {
	return &Store{root: root}
}

// Ignored reports whether an ignore marker exists for the repository.
// Only presence matters, the file content is irrelevant.
func (x *Store) Ignored(account, repo string) bool {
	_, err := os.Stat(filepath.Join(x.root, account, repo, ignoreMarker))
	return err == nil
}

// Load returns the raw override document. Absence or any read failure
// is an error; callers treat it as "no override".
func (x *Store) Load(account, repo string) ([]byte, error) {
	path := filepath.Join(x.root, account, repo, overrideFile)
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read override file", goerr.V("path", path))
	}
	return data, nil
}
