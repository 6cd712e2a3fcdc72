package observability

import (
	"context"
	"time"

	"wa-gateway/domain/event"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wa_gateway"

// Metrics groups every collector the gateway exposes on /metrics.
// It also acts as a lifecycle sink so the ready gauge follows the tracker.
type Metrics struct {
	LifecycleEvents *prometheus.CounterVec
	SessionReady    prometheus.Gauge
	QRPending       prometheus.Gauge
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	AdapterCalls    *prometheus.CounterVec
	ProcessRSS      prometheus.Gauge
	ProcessCPU      prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LifecycleEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lifecycle_events_total",
			Help:      "Lifecycle events emitted by the messaging client.",
		}, []string{"kind"}),
		SessionReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "session_ready",
			Help:      "1 when the messaging client can send.",
		}),
		QRPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "qr_pending",
			Help:      "1 when a login challenge waits to be scanned.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		AdapterCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adapter_calls_total",
			Help:      "Calls into the messaging client by operation and outcome.",
		}, []string{"operation", "outcome"}),
		ProcessRSS: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_rss_bytes",
			Help:      "Resident memory sampled by the heartbeat.",
		}),
		ProcessCPU: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_cpu_percent",
			Help:      "CPU usage sampled by the heartbeat.",
		}),
	}
	reg.MustRegister(
		m.LifecycleEvents, m.SessionReady, m.QRPending,
		m.HTTPRequests, m.HTTPDuration, m.AdapterCalls,
		m.ProcessRSS, m.ProcessCPU,
	)
	return m
}

func (m *Metrics) Consume(_ context.Context, e event.LifecycleEvent) error {
	m.LifecycleEvents.WithLabelValues(string(e.Kind())).Inc()
	switch e.(type) {
	case event.QRIssued:
		m.QRPending.Set(1)
	case event.Ready:
		m.SessionReady.Set(1)
		m.QRPending.Set(0)
	case event.Disconnected:
		m.SessionReady.Set(0)
	}
	return nil
}

// ObserveAdapterCall records the outcome of one call into the messaging client.
func (m *Metrics) ObserveAdapterCall(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.AdapterCalls.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveHTTP(route string, code string, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(route, code).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
