// Package config defines the CLI configuration structure.
package config

import (
	"fmt"

	"github.com/yndnr/cipherkit/internal/cli/output"
	"github.com/yndnr/cipherkit/pkg/classic"
)

// Ciphertext encodings for byte-level ciphers.
const (
	EncodingHex    = "hex"
	EncodingBase64 = "base64"
	EncodingRaw    = "raw"
)

// CLIConfig is the configuration for the cipherkit CLI.
type CLIConfig struct {
	// Cipher is the default cipher used when --cipher is not given.
	Cipher classic.Config `koanf:"cipher" yaml:"cipher" json:"cipher"`

	// Output is the output format (text, table, json, yaml).
	Output string `koanf:"output" yaml:"output" json:"output"`

	// Encoding applies to ciphertext of byte-level ciphers (hex, base64, raw).
	Encoding string `koanf:"encoding" yaml:"encoding" json:"encoding"`

	Log LogConfig `koanf:"log" yaml:"log" json:"log"`
}

// LogConfig configures diagnostic logging on stderr.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level" json:"level"`
	Format string `koanf:"format" yaml:"format" json:"format"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Cipher:   classic.Config{Type: classic.CipherCaesar, Shift: 3},
		Output:   string(output.FormatText),
		Encoding: EncodingHex,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// defaultsMap flattens Default for the loader's lowest-priority layer.
func defaultsMap() map[string]any {
	d := Default()
	return map[string]any{
		"cipher.type":  string(d.Cipher.Type),
		"cipher.shift": d.Cipher.Shift,
		"output":       d.Output,
		"encoding":     d.Encoding,
		"log.level":    d.Log.Level,
		"log.format":   d.Log.Format,
	}
}

// Validate checks the fields that are not validated by the cipher factory.
func (c *CLIConfig) Validate() error {
	if _, err := output.ParseFormat(c.Output); err != nil {
		return err
	}
	switch c.Encoding {
	case EncodingHex, EncodingBase64, EncodingRaw:
	default:
		return fmt.Errorf("unknown encoding %q (want hex, base64 or raw)", c.Encoding)
	}
	return nil
}
