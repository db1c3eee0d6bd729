package safe_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/osscat-dev/osscat/pkg/utils/safe"
)

func TestClose(t *testing.T) {
	t.Run("nil closer is a no-op", func(t *testing.T) {
		safe.Close(nil)
	})

	t.Run("closes open file", func(t *testing.T) {
		fd := gt.R1(os.Create(filepath.Join(t.TempDir(), "x"))).NoError(t)
		safe.Close(fd)
	})
}
