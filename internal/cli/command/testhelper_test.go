package command

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

// runResult captures one CLI invocation.
type runResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI runs the app with an isolated home directory and config path.
func runCLI(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	return runCLIWithConfig(t, filepath.Join(t.TempDir(), "config.yaml"), stdin, args...)
}

func runCLIWithConfig(t *testing.T, configPath, stdin string, args ...string) runResult {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.Reader = strings.NewReader(stdin)
	app.ExitErrHandler = func(*cli.Context, error) {}

	full := append([]string{"cipherkit", "--config", configPath}, args...)
	err := app.Run(full)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}
