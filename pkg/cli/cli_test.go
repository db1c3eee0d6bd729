package cli_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/osscat-dev/osscat/pkg/cli"
)

func TestGlobalLoggingFlags(t *testing.T) {
	orig := cli.ConfigureLogging
	defer func() { cli.ConfigureLogging = orig }()

	var gotFormat, gotLevel, gotOutput string
	cli.ConfigureLogging = func(logFormat, logLevel, logOutput string) error {
		gotFormat = logFormat
		gotLevel = logLevel
		gotOutput = logOutput
		return nil
	}

	gt.NoError(t, cli.New().Run([]string{"osscat", "-f", "json", "-l", "debug", "-o", "stderr"}))

	gt.V(t, gotFormat).Equal("json")
	gt.V(t, gotLevel).Equal("debug")
	gt.V(t, gotOutput).Equal("stderr")
}
