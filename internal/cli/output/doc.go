// Package output provides output formatting for the cipherkit CLI.
//
// This package handles all CLI output formatting:
//
//   - formatter.go: Formatter interface and factory
//   - text.go: plain output for piping
//   - table.go: aligned columns via text/tabwriter
//   - json.go: JSON output formatting
//   - yaml.go: YAML output formatting
//
// Text is the default so results can be piped into other tools; json and
// yaml are meant for scripting.
package output
