package domain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	m "mutar.dev/pkg/mutar/internal/model"
)

// Metrics holds the Prometheus collectors for mutant generation.
type Metrics struct {
	registry *prometheus.Registry

	sitesLocated   *prometheus.CounterVec
	mutants        *prometheus.CounterVec
	variants       *prometheus.CounterVec
	evalDuration   prometheus.Histogram
	filesProcessed *prometheus.CounterVec
}

// NewMetrics registers the generation collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		sitesLocated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mutar_sites_located_total",
				Help: "Total number of mutation sites located",
			},
			[]string{"action"},
		),

		mutants: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mutar_mutants_total",
				Help: "Total number of statement mutants by outcome",
			},
			[]string{"outcome"},
		),

		variants: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mutar_file_variants_total",
				Help: "Total number of whole-file variants by validity result",
			},
			[]string{"result"},
		),

		evalDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mutar_evaluation_duration_seconds",
				Help:    "Duration of validity evaluations in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs to ~26s
			},
		),

		filesProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mutar_files_processed_total",
				Help: "Total number of source files processed",
			},
			[]string{"result"},
		),
	}
}

// Registry exposes the registry for gathering.
func (mt *Metrics) Registry() *prometheus.Registry {
	if mt == nil {
		return nil
	}

	return mt.registry
}

// WriteTextfile dumps the current values in the text exposition format.
func (mt *Metrics) WriteTextfile(path string) error {
	if mt == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, mt.registry)
}

// RecordSite counts one located site.
func (mt *Metrics) RecordSite(action m.Action) {
	if mt == nil {
		return
	}

	mt.sitesLocated.WithLabelValues(action.String()).Inc()
}

// RecordMutant counts one surgery outcome.
func (mt *Metrics) RecordMutant(outcome m.Outcome) {
	if mt == nil {
		return
	}

	mt.mutants.WithLabelValues(outcome.String()).Inc()
}

// RecordVariant counts one whole-file variant after the validity filter.
func (mt *Metrics) RecordVariant(kept bool, seconds float64) {
	if mt == nil {
		return
	}

	result := "kept"
	if !kept {
		result = "discarded"
	}

	mt.variants.WithLabelValues(result).Inc()
	mt.evalDuration.Observe(seconds)
}

// RecordFile counts one processed source file.
func (mt *Metrics) RecordFile(err error) {
	if mt == nil {
		return
	}

	result := "ok"
	if err != nil {
		result = "error"
	}

	mt.filesProcessed.WithLabelValues(result).Inc()
}
