// Package metrics exposes the telemetry pipeline counters to Prometheus.
package metrics

import (
	"time"

	"spoolmeter/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "spoolmeter"

// Metrics implements service.TelemetryMetrics.
type Metrics struct {
	ingestTotal      *prometheus.CounterVec
	alertsTotal      *prometheus.CounterVec
	deliveriesTotal  *prometheus.CounterVec
	purgedTotal      prometheus.Counter
	sweepFailures    prometheus.Counter
	predictionTiming prometheus.Histogram
}

var _ service.TelemetryMetrics = (*Metrics)(nil)

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New registers every pipeline metric on reg. A nil reg leaves them unregistered.
func New(reg *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		ingestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_total",
			Help:      "Telemetry updates received, by kind and result.",
		}, []string{"kind", "result"}),
		alertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_total",
			Help:      "Threshold alerts raised, by kind.",
		}, []string{"kind"}),
		deliveriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Push delivery attempts, by platform and outcome.",
		}, []string{"platform", "outcome"}),
		purgedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "usage_logs_purged_total",
			Help:      "Usage log entries removed by the retention sweep.",
		}),
		sweepFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_failures_total",
			Help:      "Retention sweeps that failed.",
		}),
		predictionTiming: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prediction_seconds",
			Help:      "Time spent segmenting and fitting a usage history.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{
			m.ingestTotal, m.alertsTotal, m.deliveriesTotal,
			m.purgedTotal, m.sweepFailures, m.predictionTiming,
		} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func (m *Metrics) IngestObserved(kind, result string) {
	m.ingestTotal.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) AlertFired(kind string) {
	m.alertsTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) DeliveryObserved(platform, outcome string) {
	m.deliveriesTotal.WithLabelValues(platform, outcome).Inc()
}

func (m *Metrics) UsageLogsPurged(count int64) {
	m.purgedTotal.Add(float64(count))
}

func (m *Metrics) SweepFailed() {
	m.sweepFailures.Inc()
}

func (m *Metrics) PredictionObserved(elapsed time.Duration) {
	m.predictionTiming.Observe(elapsed.Seconds())
}
