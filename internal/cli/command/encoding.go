// Package command provides CLI command definitions for cipherkit.
package command

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/yndnr/cipherkit/internal/cli/config"
)

// encode renders byte-level ciphertext for the terminal.
func encode(b []byte, enc string) (string, error) {
	switch enc {
	case config.EncodingHex:
		return hex.EncodeToString(b), nil
	case config.EncodingBase64:
		return base64.StdEncoding.EncodeToString(b), nil
	case config.EncodingRaw:
		return string(b), nil
	default:
		return "", fmt.Errorf("unknown encoding %q (want hex, base64 or raw)", enc)
	}
}

// decode reverses encode. Surrounding whitespace is ignored for hex and base64.
func decode(s, enc string) ([]byte, error) {
	switch enc {
	case config.EncodingHex:
		return hex.DecodeString(strings.TrimSpace(s))
	case config.EncodingBase64:
		return base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	case config.EncodingRaw:
		return []byte(s), nil
	default:
		return nil, fmt.Errorf("unknown encoding %q (want hex, base64 or raw)", enc)
	}
}
