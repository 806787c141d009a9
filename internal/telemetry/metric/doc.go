// Package metric provides Prometheus metrics for cipherkit.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: registry of cipher operation metrics
//   - instrument.go: Cipher decorator that records every call
//   - collector.go: build information collector
//
// Metrics include:
//
//   - cipherkit_operations_total{cipher,op}
//   - cipherkit_bytes_processed_total{cipher,op}
//   - cipherkit_operation_duration_seconds{cipher,op}
//   - cipherkit_errors_total{code}
//   - cipherkit_build_info{version,commit,go_version}
//
// A one-shot process has no scrape endpoint, so the registry is dumped in
// the Prometheus text exposition format with WriteText.
package metric
