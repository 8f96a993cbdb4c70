package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors exported on the metrics endpoint. Each
// instance owns its registry so several routers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests          *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	PostViews             prometheus.Counter
	ContactMessages       prometheus.Counter
	NewsletterSubscribers *prometheus.CounterVec
}

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		PostViews: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_blog_post_views_total",
			Help: "Total number of counted blog post detail views",
		}),
		ContactMessages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_contact_messages_total",
			Help: "Total number of stored contact messages",
		}),
		NewsletterSubscribers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_newsletter_subscriptions_total",
			Help: "Newsletter subscribe calls by outcome",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.PostViews,
		m.ContactMessages,
		m.NewsletterSubscribers,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
