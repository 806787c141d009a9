// Package logger provides structured logging for cipherkit.
//
// The package wraps log/slog:
//
//   - logger.go: handler configuration and the package-level default logger
//   - context.go: context propagation of loggers and operation IDs
//   - redact.go: masking of cipher keys and message text
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering
//   - Automatic redaction of key material and plaintext
//   - Key fingerprints so runs can be correlated without logging keys
package logger
