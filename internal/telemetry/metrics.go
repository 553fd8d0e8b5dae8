// Package telemetry exposes Prometheus instrumentation for the sync
// pipeline and the read API.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ecfr_sync"

// Metrics holds the collectors for one process. All collectors are
// registered on a private registry so tests can create instances freely.
type Metrics struct {
	registry *prometheus.Registry

	// TitleSyncs counts finished title syncs by outcome
	// (complete, skipped, failed).
	TitleSyncs *prometheus.CounterVec

	// SyncDuration observes wall-clock seconds per title sync
	SyncDuration prometheus.Histogram

	// DetailRecords counts record-level merge outcomes
	// (inserted, updated, unchanged, deleted, skipped).
	DetailRecords *prometheus.CounterVec

	// FetchErrors counts upstream fetch failures by document kind
	// (titles, structure, fulltext).
	FetchErrors *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		TitleSyncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "title_syncs_total",
			Help:      "Finished title syncs by outcome.",
		}, []string{"outcome"}),
		SyncDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "title_sync_duration_seconds",
			Help:      "Wall-clock duration of a single title sync.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
		DetailRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detail_records_total",
			Help:      "Hierarchy records processed by merge action.",
		}, []string{"action"}),
		FetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_errors_total",
			Help:      "Upstream document fetch failures by kind.",
		}, []string{"kind"}),
	}

	registry.MustRegister(m.TitleSyncs, m.SyncDuration, m.DetailRecords, m.FetchErrors)
	return m
}

// Handler returns an HTTP handler serving this instance's registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
