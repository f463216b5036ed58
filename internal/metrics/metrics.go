// Package metrics records generation statistics in a Prometheus registry
// that the CLI writes out in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/ltmgen/internal/generator"
)

const namespace = "ltmgen"

// Recorder holds the generation metrics. Each run gets its own registry so
// that nothing leaks between runs or tests.
type Recorder struct {
	registry *prometheus.Registry

	commandsTotal      *prometheus.CounterVec
	warningsTotal      *prometheus.CounterVec
	generationDuration *prometheus.GaugeVec
	lastSuccess        *prometheus.GaugeVec
	uploadsTotal       *prometheus.CounterVec
}

// NewRecorder creates a Recorder with all metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "generator",
				Name:      "commands_total",
				Help:      "Number of tmsh commands emitted by entity kind",
			},
			[]string{"bundle", "kind"},
		),
		warningsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "generator",
				Name:      "warnings_total",
				Help:      "Number of non-fatal generation problems by reason",
			},
			[]string{"bundle", "reason"},
		),
		generationDuration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "generator",
				Name:      "duration_seconds",
				Help:      "Wall time spent generating the bundle",
			},
			[]string{"bundle"},
		),
		lastSuccess: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "generator",
				Name:      "last_success_timestamp_seconds",
				Help:      "Unix time of the last successful generation",
			},
			[]string{"bundle"},
		),
		uploadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "publish",
				Name:      "uploads_total",
				Help:      "Number of bundle objects uploaded by result",
			},
			[]string{"bundle", "result"},
		),
	}

	r.registry.MustRegister(
		r.commandsTotal,
		r.warningsTotal,
		r.generationDuration,
		r.lastSuccess,
		r.uploadsTotal,
	)
	return r
}

// RecordGeneration records command counts, diagnostics and timing.
func (r *Recorder) RecordGeneration(bundle string, result *generator.Result, duration time.Duration) {
	for kind, n := range result.Counts() {
		r.commandsTotal.WithLabelValues(bundle, string(kind)).Add(float64(n))
	}
	for _, d := range result.Diagnostics {
		r.warningsTotal.WithLabelValues(bundle, string(d.Reason)).Inc()
	}
	r.generationDuration.WithLabelValues(bundle).Set(duration.Seconds())
	r.lastSuccess.WithLabelValues(bundle).Set(float64(result.GeneratedAt.Unix()))
}

// RecordUploads records the outcome of a publish.
func (r *Recorder) RecordUploads(bundle string, uploaded int, err error) {
	r.uploadsTotal.WithLabelValues(bundle, "success").Add(float64(uploaded))
	if err != nil {
		r.uploadsTotal.WithLabelValues(bundle, "error").Inc()
	}
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
