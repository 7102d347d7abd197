package search

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes search throughput to Prometheus. It reads the shared
// Stats counters on every scrape, so it can be registered while the search
// is running.
type Collector struct {
	stats    *Stats
	attempts *prometheus.Desc
	matches  *prometheus.Desc
	perSec   *prometheus.Desc
}

func NewCollector(stats *Stats) *Collector {
	return &Collector{
		stats: stats,
		attempts: prometheus.NewDesc(
			"vanityssh_attempts_total",
			"Total key generation attempts.",
			nil, nil,
		),
		matches: prometheus.NewDesc(
			"vanityssh_matches_total",
			"Total pattern matches found.",
			nil, nil,
		),
		perSec: prometheus.NewDesc(
			"vanityssh_keys_per_second",
			"Average key generation rate since the search started.",
			nil, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.attempts
	ch <- c.matches
	ch <- c.perSec
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.stats.Snapshot()
	ch <- prometheus.MustNewConstMetric(c.attempts, prometheus.CounterValue, float64(snap.Attempts))
	ch <- prometheus.MustNewConstMetric(c.matches, prometheus.CounterValue, float64(snap.Matches))
	ch <- prometheus.MustNewConstMetric(c.perSec, prometheus.GaugeValue, snap.PerSecond)
}
