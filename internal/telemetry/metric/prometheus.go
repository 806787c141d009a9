// Package metric provides Prometheus metrics for cipherkit.
package metric

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "cipherkit"

// Operation label values.
const (
	OpEncrypt = "encrypt"
	OpDecrypt = "decrypt"
)

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	// OperationsTotal counts Encrypt and Decrypt calls.
	OperationsTotal *prometheus.CounterVec

	// BytesProcessed counts input bytes handed to ciphers.
	BytesProcessed *prometheus.CounterVec

	// OperationDuration observes the time spent in a cipher call.
	OperationDuration *prometheus.HistogramVec

	// ErrorsTotal counts failed commands by error code.
	ErrorsTotal *prometheus.CounterVec
}

// NewRegistry creates a registry with all cipherkit metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		OperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Number of cipher operations.",
		}, []string{"cipher", "op"}),
		BytesProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_processed_total",
			Help:      "Number of input bytes processed by ciphers.",
		}, []string{"cipher", "op"}),
		OperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of cipher operations.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 7),
		}, []string{"cipher", "op"}),
		ErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Number of failed commands by error code.",
		}, []string{"code"}),
	}

	r.registry.MustRegister(
		r.OperationsTotal,
		r.BytesProcessed,
		r.OperationDuration,
		r.ErrorsTotal,
		NewCollector(),
	)
	return r
}

// Gatherer returns the underlying gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Observe records one cipher call.
func (r *Registry) Observe(cipher, op string, n int, d time.Duration) {
	r.OperationsTotal.WithLabelValues(cipher, op).Inc()
	r.BytesProcessed.WithLabelValues(cipher, op).Add(float64(n))
	r.OperationDuration.WithLabelValues(cipher, op).Observe(d.Seconds())
}

// RecordError counts a failure. An empty code is recorded as "unknown".
func (r *Registry) RecordError(code string) {
	if code == "" {
		code = "unknown"
	}
	r.ErrorsTotal.WithLabelValues(code).Inc()
}

// WriteText writes every metric family in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
