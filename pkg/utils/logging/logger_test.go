package logging_test

import (
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/osscat-dev/osscat/pkg/utils/logging"
)

func TestConfigure(t *testing.T) {
	t.Run("valid options", func(t *testing.T) {
		gt.NoError(t, logging.Configure("text", "debug", "stdout"))
		gt.NoError(t, logging.Configure("json", "info", "stderr"))
		gt.NoError(t, logging.Configure("text", "warn", filepath.Join(t.TempDir(), "out.log")))
	})

	t.Run("invalid log level", func(t *testing.T) {
		gt.Error(t, logging.Configure("text", "verbose", "stdout"))
	})

	t.Run("invalid log format", func(t *testing.T) {
		gt.Error(t, logging.Configure("xml", "info", "stdout"))
	})
}

func TestDefault(t *testing.T) {
	gt.NoError(t, logging.Configure("json", "info", "stdout"))
	gt.V(t, logging.Default()).NotEqual(nil)
}
