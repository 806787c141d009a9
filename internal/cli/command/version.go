// Package command provides CLI command definitions for cipherkit.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/cipherkit/internal/cli/output"
	"github.com/yndnr/cipherkit/internal/infra/buildinfo"
)

type versionInfo struct {
	buildinfo.Info `yaml:",inline"`
}

// Text implements output.Texter.
func (v versionInfo) Text() string {
	return "cipherkit " + v.Version + " (" + v.Commit + ") built at " + v.BuildTime + " " + v.GoVersion + " " + v.Platform
}

// Table implements output.Tabular.
func (v versionInfo) Table() *output.Table {
	t := &output.Table{Headers: []string{"FIELD", "VALUE"}}
	t.AddRow("version", v.Version)
	t.AddRow("commit", v.Commit)
	t.AddRow("build_time", v.BuildTime)
	t.AddRow("go_version", v.GoVersion)
	t.AddRow("platform", v.Platform)
	return t
}

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: action(func(c *cli.Context) error {
			return render(c, versionInfo{buildinfo.Get()})
		}),
	}
}
