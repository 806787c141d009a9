// Package command provides CLI command definitions for cipherkit.
//
// It uses urfave/cli/v2 for command parsing.
package command

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cipherkit/internal/cli/config"
	"github.com/yndnr/cipherkit/internal/cli/output"
	"github.com/yndnr/cipherkit/internal/infra/buildinfo"
	"github.com/yndnr/cipherkit/internal/telemetry/logger"
	"github.com/yndnr/cipherkit/internal/telemetry/metric"
	"github.com/yndnr/cipherkit/pkg/classic"
)

const runtimeKey = "runtime"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:     "cipherkit",
		Usage:    "Classical ciphers on the command line",
		Version:  buildinfo.String(),
		Flags:    globalFlags(),
		Metadata: map[string]any{},
		Commands: []*cli.Command{
			EncryptCommand(),
			DecryptCommand(),
			ChainCommand(),
			ListCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
		Before: setup,
		After:  teardown,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file (default ~/.cipherkit/config.yaml)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, table, json, yaml",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.BoolFlag{
			Name:  "metrics",
			Usage: "Write Prometheus metrics of this run to stderr",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	ConfigPath string
	Output     string
	LogLevel   string
	LogFormat  string
	Metrics    bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		ConfigPath: c.String("config"),
		Output:     c.String("output"),
		LogLevel:   c.String("log-level"),
		LogFormat:  c.String("log-format"),
		Metrics:    c.Bool("metrics"),
	}
}

// overrides maps explicitly set global flags onto configuration keys.
func (f *GlobalFlags) overrides() map[string]any {
	m := make(map[string]any)
	if f.Output != "" {
		m["output"] = f.Output
	}
	if f.LogLevel != "" {
		m["log.level"] = f.LogLevel
	}
	if f.LogFormat != "" {
		m["log.format"] = f.LogFormat
	}
	return m
}

// runtime is the per-invocation state shared by all commands.
type runtime struct {
	cfg        *config.CLIConfig
	configPath string
	format     output.Format
	metrics    *metric.Registry
}

// setup loads configuration, installs the logger and tags the run with
// an operation ID.
func setup(c *cli.Context) error {
	flags := ParseGlobalFlags(c)

	cfg, err := config.Load(flags.ConfigPath, flags.overrides())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	l, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(l)

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	rt := &runtime{
		cfg:        cfg,
		configPath: flags.ConfigPath,
		format:     format,
	}
	if flags.Metrics {
		rt.metrics = metric.NewRegistry()
	}
	c.App.Metadata[runtimeKey] = rt

	c.Context = logger.WithOperationID(logger.WithLogger(c.Context, l), logger.NewOperationID())
	return nil
}

// teardown dumps the metrics of the run when requested.
func teardown(c *cli.Context) error {
	rt := getRuntime(c)
	if rt == nil || rt.metrics == nil {
		return nil
	}
	return rt.metrics.WriteText(c.App.ErrWriter)
}

func getRuntime(c *cli.Context) *runtime {
	if rt, ok := c.App.Metadata[runtimeKey].(*runtime); ok {
		return rt
	}
	return nil
}

// runtimeOf returns the run state, or defaults when setup did not run.
func runtimeOf(c *cli.Context) *runtime {
	if rt := getRuntime(c); rt != nil {
		return rt
	}
	return &runtime{cfg: config.Default(), format: output.FormatText}
}

// action wraps a command action with failure logging and error metrics.
func action(fn cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		err := fn(c)
		if err == nil {
			return nil
		}
		code := classic.ErrorCode(err)
		logger.L(c.Context).Debug("command failed", "command", c.Command.FullName(), "code", code, "error", err)
		if rt := getRuntime(c); rt != nil && rt.metrics != nil {
			rt.metrics.RecordError(code)
		}
		return err
	}
}

// render writes data to stdout in the configured format.
func render(c *cli.Context, data any) error {
	return output.NewFormatter(runtimeOf(c).format).Format(c.App.Writer, data)
}

// PrintError prints an error message to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}
