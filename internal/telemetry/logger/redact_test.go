package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func logJSON(t *testing.T, args ...any) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Info("cipher run", args...)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	return entry
}

func TestRedactSensitive(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    any
		redacted bool
	}{
		{"key", "key", "ICE", true},
		{"keyword", "keyword", "LEMON", true},
		{"xor key bytes", "xor_key", []byte("secret"), true},
		{"plaintext", "plaintext", "attack at dawn", true},
		{"message", "message", "hello", true},
		{"password", "Password", "hunter2", true},
		{"cipher type", "cipher", "vigenere", false},
		{"empty key", "key", "", false},
		{"fingerprint", "key_fingerprint", "deadbeef", false},
		{"length", "keyword_len", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := logJSON(t, tt.key, tt.value)
			got := entry[tt.key]
			if tt.redacted {
				if got != redactedValue {
					t.Errorf("%s = %v, want %q", tt.key, got, redactedValue)
				}
				return
			}
			if got == redactedValue {
				t.Errorf("%s should not be redacted", tt.key)
			}
		})
	}
}

func TestRedactSensitive_Group(t *testing.T) {
	entry := logJSON(t, slog.Group("cipher", slog.String("type", "xor"), slog.String("key", "ICE")))

	group, ok := entry["cipher"].(map[string]any)
	if !ok {
		t.Fatalf("cipher group missing: %v", entry)
	}
	if group["key"] != redactedValue {
		t.Errorf("cipher.key = %v, want %q", group["key"], redactedValue)
	}
	if group["type"] != "xor" {
		t.Errorf("cipher.type = %v, want xor", group["type"])
	}
}

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"key", true},
		{"KEYWORD", true},
		{"client_secret", true},
		{"plaintext", true},
		{"key_fingerprint", false},
		{"cipher", false},
		{"op", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IsSensitiveKey(tt.key); got != tt.want {
				t.Errorf("IsSensitiveKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte("LEMON"))
	if len(a) != 8 {
		t.Errorf("Fingerprint() = %q, want 8 hex chars", a)
	}
	if a != Fingerprint([]byte("LEMON")) {
		t.Error("Fingerprint() should be stable")
	}
	if a == Fingerprint([]byte("LIME")) {
		t.Error("Fingerprint() should differ for different keys")
	}
	if got := Fingerprint(nil); got != "" {
		t.Errorf("Fingerprint(nil) = %q, want empty", got)
	}
}

func TestKeyAttr(t *testing.T) {
	entry := logJSON(t, KeyAttr([]byte("ICE")))
	if entry["key_fingerprint"] != Fingerprint([]byte("ICE")) {
		t.Errorf("key_fingerprint = %v", entry["key_fingerprint"])
	}
}
