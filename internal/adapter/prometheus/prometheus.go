package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type PrometheusAdapter struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	ordersCreated   *prometheus.CounterVec
	notifications   *prometheus.CounterVec
	catalogFallback *prometheus.CounterVec
	paymentEvents   *prometheus.CounterVec
}

func NewPrometheusAdapter() *PrometheusAdapter {
	registry := prometheus.NewRegistry()

	p := &PrometheusAdapter{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Orders written to storage",
		}, []string{"payment_method"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Order notifications by outcome",
		}, []string{"result"}),
		catalogFallback: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_fallback_total",
			Help: "Catalog reads answered from the seed list",
		}, []string{"reason"}),
		paymentEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_events_total",
			Help: "Verified payment provider events",
		}, []string{"type"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.requestsTotal,
		p.requestDuration,
		p.ordersCreated,
		p.notifications,
		p.catalogFallback,
		p.paymentEvents,
	)
	return p
}

func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := strconv.Itoa(c.Writer.Status())
	p.requestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
	p.requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
}

func (p *PrometheusAdapter) OrderCreated(paymentMethod string) {
	p.ordersCreated.WithLabelValues(paymentMethod).Inc()
}

func (p *PrometheusAdapter) NotificationResult(result string) {
	p.notifications.WithLabelValues(result).Inc()
}

func (p *PrometheusAdapter) CatalogFallback(reason string) {
	p.catalogFallback.WithLabelValues(reason).Inc()
}

func (p *PrometheusAdapter) PaymentEvent(eventType string) {
	p.paymentEvents.WithLabelValues(eventType).Inc()
}

// Handler exposes the adapter's registry in the text exposition format.
func (p *PrometheusAdapter) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

func (p *PrometheusAdapter) Registry() *prometheus.Registry {
	return p.registry
}
