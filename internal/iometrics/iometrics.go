// Package iometrics writes batch metrics of a meigen run in the Prometheus
// text format, ready for the node_exporter textfile collector.
package iometrics

import (
	"path/filepath"
	"time"

	"github.com/ichinichi/meigen/internal/iofs"
	"github.com/ichinichi/meigen/pkg/schedule"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the gauges of one CLI invocation.
type Collector struct {
	reg         *prometheus.Registry
	quotes      prometheus.Gauge
	published   prometheus.Gauge
	unpublished prometheus.Gauge
	nextIssue   prometheus.Gauge
	categories  *prometheus.GaugeVec
	duration    *prometheus.GaugeVec
	lastSuccess *prometheus.GaugeVec
}

// New creates a Collector with its own registry.
func New() *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		quotes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "meigen_quotes",
			Help: "Number of records in the corpus.",
		}),
		published: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "meigen_quotes_published",
			Help: "Number of published records.",
		}),
		unpublished: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "meigen_quotes_unpublished",
			Help: "Number of records still available for rotation.",
		}),
		nextIssue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "meigen_next_newsletter_number",
			Help: "Newsletter number assigned to the next scheduled quote.",
		}),
		categories: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "meigen_category_unpublished",
			Help: "Unpublished records per category.",
		}, []string{"category"}),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "meigen_run_duration_seconds",
			Help: "Duration of the last run of a command.",
		}, []string{"command"}),
		lastSuccess: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "meigen_last_success_timestamp_seconds",
			Help: "Unix time of the last successful run of a command.",
		}, []string{"command"}),
	}

	c.reg.MustRegister(
		c.quotes,
		c.published,
		c.unpublished,
		c.nextIssue,
		c.categories,
		c.duration,
		c.lastSuccess,
	)
	return c
}

// Observe sets corpus and schedule gauges from statistics.
func (c *Collector) Observe(st schedule.Statistics) {
	c.quotes.Set(float64(st.TotalQuotes))
	c.published.Set(float64(st.PublishedCount))
	c.unpublished.Set(float64(st.UnpublishedCount))
	c.nextIssue.Set(float64(st.NextNewsletterNumber))
	c.categories.Reset()
	for k, v := range st.Categories {
		c.categories.WithLabelValues(k).Set(float64(v.Total - v.Published))
	}
}

// ObserveRun records how long a command took. The success timestamp is set
// only when err is nil.
func (c *Collector) ObserveRun(command string, d time.Duration, err error) {
	c.duration.WithLabelValues(command).Set(d.Seconds())
	if err == nil {
		c.lastSuccess.WithLabelValues(command).SetToCurrentTime()
	}
}

// Gatherer exposes the registry, mostly for tests.
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.reg
}

// Write saves all metrics to path. An empty path does nothing.
func (c *Collector) Write(path string) error {
	if path == "" {
		return nil
	}
	if err := iofs.EnsureDir(filepath.Dir(path)); err != nil {
		return MetricsWriteError(path, err)
	}
	// WriteToTextfile uses a temporary file and rename, as the textfile
	// collector expects.
	if err := prometheus.WriteToTextfile(path, c.reg); err != nil {
		return MetricsWriteError(path, err)
	}
	return nil
}
