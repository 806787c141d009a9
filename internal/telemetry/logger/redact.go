// Package logger provides structured logging for cipherkit.
package logger

import (
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/spaolacci/murmur3"
)

// Attribute key patterns whose values are cipher material or message text.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"key",
	"plaintext",
	"message",
}

// Keys that match a pattern but only ever carry derived, safe values.
var safeKeys = map[string]bool{
	"key_fingerprint": true,
	"key_len":         true,
	"keyword_len":     true,
}

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// redactSensitive replaces string and byte values of sensitive attributes.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	if !IsSensitiveKey(a.Key) {
		return a
	}

	switch a.Value.Kind() {
	case slog.KindString:
		if a.Value.String() == "" {
			return a
		}
		return slog.String(a.Key, redactedValue)
	case slog.KindAny:
		if b, ok := a.Value.Any().([]byte); ok && len(b) > 0 {
			return slog.String(a.Key, redactedValue)
		}
	}
	return a
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	if safeKeys[keyLower] {
		return false
	}
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}

// Fingerprint returns a short stable identifier for key material.
//
// It is a 32-bit murmur3 hash, hex encoded. It identifies a key across
// log lines and is not a cryptographic commitment. Empty input yields "".
func Fingerprint(material []byte) string {
	if len(material) == 0 {
		return ""
	}
	sum := murmur3.Sum32(material)
	b := []byte{byte(sum >> 24), byte(sum >> 16), byte(sum >> 8), byte(sum)}
	return hex.EncodeToString(b)
}

// KeyAttr returns the attribute to log in place of key material.
func KeyAttr(material []byte) slog.Attr {
	return slog.String("key_fingerprint", Fingerprint(material))
}
