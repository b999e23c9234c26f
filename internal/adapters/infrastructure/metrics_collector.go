package infrastructure

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetricsCollector implements the MetricsCollector port. Every observation
// goes to Prometheus and to an in-memory summary served as JSON.
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry

	gatewayRequests *prometheus.CounterVec
	gatewayLatency  *prometheus.HistogramVec
	cyclesStarted   *prometheus.CounterVec
	cyclesSettled   *prometheus.CounterVec
	staleResponses  *prometheus.CounterVec

	mu            sync.Mutex
	gatewayCalls  map[string]map[string]int64
	startedCount  map[string]int64
	settledCount  map[string]int64
	staleCount    map[string]int64
	lastCallAt    time.Time
	lastCallNanos int64
}

// NewPrometheusMetricsCollector registers the application metrics on registry.
// A nil registry gets a fresh one with the Go and process collectors.
func NewPrometheusMetricsCollector(registry *prometheus.Registry) *PrometheusMetricsCollector {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		gatewayRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_gateway_requests_total",
				Help: "The total number of weather gateway requests",
			},
			[]string{"operation", "outcome"},
		),
		gatewayLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_gateway_request_duration_seconds",
				Help:    "Weather gateway request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		cyclesStarted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_fetch_cycles_started_total",
				Help: "The total number of fetch cycles started",
			},
			[]string{"trigger"},
		),
		cyclesSettled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_fetch_cycles_settled_total",
				Help: "The total number of fetch cycles settled",
			},
			[]string{"outcome"},
		),
		staleResponses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_stale_responses_total",
				Help: "Responses discarded because a newer cycle owned the slot",
			},
			[]string{"slot"},
		),
		gatewayCalls: make(map[string]map[string]int64),
		startedCount: make(map[string]int64),
		settledCount: make(map[string]int64),
		staleCount:   make(map[string]int64),
	}
}

func (m *PrometheusMetricsCollector) RecordGatewayCall(_ context.Context, operation string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.gatewayRequests.WithLabelValues(operation, outcome).Inc()
	m.gatewayLatency.WithLabelValues(operation).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gatewayCalls[operation] == nil {
		m.gatewayCalls[operation] = make(map[string]int64)
	}
	m.gatewayCalls[operation][outcome]++
	m.lastCallAt = time.Now()
	m.lastCallNanos = duration.Nanoseconds()
}

func (m *PrometheusMetricsCollector) RecordCycleStarted(_ context.Context, trigger string) {
	m.cyclesStarted.WithLabelValues(trigger).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.startedCount[trigger]++
}

func (m *PrometheusMetricsCollector) RecordCycleSettled(_ context.Context, outcome string) {
	m.cyclesSettled.WithLabelValues(outcome).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.settledCount[outcome]++
}

func (m *PrometheusMetricsCollector) RecordStaleResponse(_ context.Context, slot string) {
	m.staleResponses.WithLabelValues(slot).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.staleCount[slot]++
}

// GetMetrics returns the in-memory summary for the JSON metrics endpoint
func (m *PrometheusMetricsCollector) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	gateway := make(map[string]interface{}, len(m.gatewayCalls))
	for operation, outcomes := range m.gatewayCalls {
		gateway[operation] = copyCounts(outcomes)
	}

	metrics := map[string]interface{}{
		"gateway": gateway,
		"cycles": map[string]interface{}{
			"started": copyCounts(m.startedCount),
			"settled": copyCounts(m.settledCount),
		},
		"stale_responses": copyCounts(m.staleCount),
	}
	if !m.lastCallAt.IsZero() {
		metrics["last_gateway_call"] = map[string]interface{}{
			"at":          m.lastCallAt.UTC().Format(time.RFC3339),
			"duration_ms": time.Duration(m.lastCallNanos).Milliseconds(),
		}
	}
	return metrics, nil
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

func copyCounts(counts map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(counts))
	for k, v := range counts {
		out[k] = v
	}
	return out
}
