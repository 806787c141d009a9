// Package metric provides Prometheus metrics for cipherkit.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/cipherkit/internal/infra/buildinfo"
)

// Collector exports build information as a constant gauge.
type Collector struct {
	desc *prometheus.Desc
	info buildinfo.Info
}

// NewCollector creates a build information collector.
func NewCollector() *Collector {
	return &Collector{
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "build_info"),
			"Build information of the running binary.",
			[]string{"version", "commit", "go_version"},
			nil,
		),
		info: buildinfo.Get(),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(
		c.desc,
		prometheus.GaugeValue,
		1,
		c.info.Version, c.info.Commit, c.info.GoVersion,
	)
}
