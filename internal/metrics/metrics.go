// Package metrics records generation counters in a private Prometheus registry
// and exports them in the text exposition format, for node-exporter style
// textfile collection by build pipelines.
package metrics

import (
	"fmt"
	"time"

	"github.com/aretw0/combogen/internal/automaton"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the generation metrics of one process.
type Recorder struct {
	registry *prometheus.Registry

	Chains         prometheus.Counter
	States         prometheus.Counter
	Merges         prometheus.Counter
	UnknownSymbols prometheus.Counter
	Composites     prometheus.Gauge
	Runs           *prometheus.CounterVec
	Duration       prometheus.Histogram
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		Chains: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "combogen_chains_total",
			Help: "Chains added to the automaton",
		}),
		States: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "combogen_states_total",
			Help: "States created before merging",
		}),
		Merges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "combogen_merges_total",
			Help: "State merges performed",
		}),
		UnknownSymbols: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "combogen_unknown_symbols_total",
			Help: "Symbols missing from the key alphabet",
		}),
		Composites: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "combogen_composite_states",
			Help: "Composite states in the last emitted enumeration",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "combogen_runs_total",
			Help: "Generation runs by outcome",
		}, []string{"outcome"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "combogen_generation_duration_seconds",
			Help:    "Duration of a generation run",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
	r.registry.MustRegister(r.Chains, r.States, r.Merges, r.UnknownSymbols, r.Composites, r.Runs, r.Duration)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveBuild records the counters of a finished construction pass.
func (r *Recorder) ObserveBuild(stats automaton.Stats, unknownSymbols int) {
	r.Chains.Add(float64(stats.Chains))
	r.States.Add(float64(stats.StatesCreated))
	r.Merges.Add(float64(stats.Merges))
	r.UnknownSymbols.Add(float64(unknownSymbols))
}

// ObserveRun records the outcome and duration of a run.
func (r *Recorder) ObserveRun(start time.Time, err error, composites int) {
	r.Duration.Observe(time.Since(start).Seconds())
	if err != nil {
		r.Runs.WithLabelValues("failure").Inc()
		return
	}
	r.Runs.WithLabelValues("success").Inc()
	r.Composites.Set(float64(composites))
}

// WriteFile writes the current metrics to path in Prometheus text format.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
