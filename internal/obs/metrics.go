package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	RequestsTotal       prometheus.Counter
	CacheHitsTotal      prometheus.Counter
	RateLimitDropsTotal prometheus.Counter

	OrchestrationsTotal *prometheus.CounterVec
	AgentErrors         *prometheus.CounterVec
	AgentLatency        *prometheus.HistogramVec
	AgentTasksTotal     *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
	Registry            *prometheus.Registry
}

// NewMetrics creates the collectors and registers them on p. Each server
// gets its own registry.
func NewMetrics(p *prometheus.Registry) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "holiday_requests_total",
			Help: "Total number of holiday booking requests accepted for orchestration",
		}),
		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "holiday_discovery_cache_hits_total",
			Help: "Agent card lookups served from the discovery cache",
		}),
		RateLimitDropsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "holiday_ratelimit_drops_total",
			Help: "Requests dropped due to rate limiting",
		}),
		OrchestrationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "holiday_orchestrations_total",
			Help: "Finished orchestrations by outcome",
		}, []string{"outcome"}),
		AgentErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "agent_errors_total",
			Help: "Failed calls from the orchestrator to each agent",
		}, []string{"service"}),
		AgentLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "agent_latency_seconds",
				Help:    "Latency between orchestrator and agent",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service"},
		),
		AgentTasksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "agent_tasks_total",
			Help: "Tasks handled by an agent, by final state",
		}, []string{"service", "state"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		Registry: p,
	}

	p.MustRegister(
		m.RequestsTotal,
		m.CacheHitsTotal,
		m.RateLimitDropsTotal,
		m.OrchestrationsTotal,
		m.AgentErrors,
		m.AgentLatency,
		m.AgentTasksTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsTotal,
	)

	return m
}

func (m *Metrics) IncRequests()       { m.RequestsTotal.Inc() }
func (m *Metrics) IncCacheHits()      { m.CacheHitsTotal.Inc() }
func (m *Metrics) IncRateLimitDrops() { m.RateLimitDropsTotal.Inc() }

func (m *Metrics) IncOrchestration(outcome string) {
	m.OrchestrationsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveAgentLatency(service string, seconds float64) {
	m.AgentLatency.WithLabelValues(service).Observe(seconds)
}

func (m *Metrics) IncAgentFailure(service string) {
	m.AgentErrors.WithLabelValues(service).Inc()
}

func (m *Metrics) IncAgentTask(service, state string) {
	m.AgentTasksTotal.WithLabelValues(service, state).Inc()
}

func (m *Metrics) ObserveHTTPRequestDuration(method string, path string, status string, seconds float64) {
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

func (m *Metrics) IncHTTPRequestsTotal(method string, path string, status string) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
