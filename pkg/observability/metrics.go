package observability

import (
	"time"

	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cairo1_compile"

// Metrics holds the counters of one invocation.
type Metrics struct {
	registry    *prometheus.Registry
	operations  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	outputBytes *prometheus.CounterVec
}

// NewMetrics creates a registry with all collectors registered.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Commands run, by command and outcome category.",
		}, []string{"command", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "duration_seconds",
			Help:      "Wall time spent in a command.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}, []string{"command"}),
		outputBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "output_bytes_total",
			Help:      "JSON bytes written, excluding the stdout newline.",
		}, []string{"command"}),
	}
	m.registry.MustRegister(m.operations, m.duration, m.outputBytes)
	return m
}

// Observe records the end of a command started at start.
// The outcome label is domain.Classify(err).
func (m *Metrics) Observe(command string, start time.Time, err error) {
	m.operations.WithLabelValues(command, domain.Classify(err)).Inc()
	m.duration.WithLabelValues(command).Observe(time.Since(start).Seconds())
}

// AddOutputBytes counts document bytes written by command.
func (m *Metrics) AddOutputBytes(command string, n int) {
	m.outputBytes.WithLabelValues(command).Add(float64(n))
}

// Gatherer exposes the registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the registry to path in the text exposition format.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
