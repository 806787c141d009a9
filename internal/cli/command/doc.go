// Package command provides CLI command definitions for cipherkit.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: App, global flags, per-run setup and teardown
//   - cipher.go: encrypt and decrypt with a single cipher
//   - chain.go: encrypt and decrypt through a cipher chain
//   - list.go: supported cipher types
//   - config.go: show and initialise the CLI configuration
//   - version.go: build information
//
// Commands follow a consistent pattern of reading the message, building
// the cipher from flags over configuration, and formatting the result.
package command
