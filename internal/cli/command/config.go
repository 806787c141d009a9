// Package command provides CLI command definitions for cipherkit.
package command

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cipherkit/internal/cli/config"
	"github.com/yndnr/cipherkit/internal/cli/output"
	"github.com/yndnr/cipherkit/internal/telemetry/logger"
)

const maskedValue = "***"

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the effective configuration",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "reveal",
						Usage: "Show keys and keywords instead of masking them",
					},
				},
				Action: action(configShow),
			},
			{
				Name:  "init",
				Usage: "Write a default configuration file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Overwrite an existing file",
					},
				},
				Action: action(configInit),
			},
		},
	}
}

func configShow(c *cli.Context) error {
	rt := runtimeOf(c)

	cfg := *rt.cfg
	if !c.Bool("reveal") {
		if cfg.Cipher.Key != "" {
			cfg.Cipher.Key = maskedValue
		}
		if cfg.Cipher.Keyword != "" {
			cfg.Cipher.Keyword = maskedValue
		}
	}

	// Plain text has no useful rendering of a nested struct.
	if rt.format == output.FormatText {
		return (&output.YAMLFormatter{}).Format(c.App.Writer, &cfg)
	}
	return render(c, &cfg)
}

func configInit(c *cli.Context) error {
	path := runtimeOf(c).configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if !c.Bool("force") {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("check config file: %w", err)
		}
	}

	if err := config.Save(config.Default(), path); err != nil {
		return err
	}
	logger.L(c.Context).Info("config written", "path", path)

	_, err := fmt.Fprintf(c.App.Writer, "wrote %s\n", path)
	return err
}
