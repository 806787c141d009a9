// Package config provides CLI configuration for cipherkit.
//
// This package defines CLI-specific configuration:
//
//   - spec.go: CLIConfig struct (~/.cipherkit/config.yaml)
//   - loader.go: Loading through confloader and saving as YAML
//
// Configuration includes:
//
//   - Default cipher and its parameters
//   - Output format and ciphertext encoding
//   - Log level and format
package config
