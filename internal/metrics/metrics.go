// Package metrics collects Prometheus metrics for the access flows, the
// invoice dashboard and the HTTP transport, and exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate mockgen -source=metrics.go -destination=../mock/metrics_mock.go -package=mock

// Outcome labels used by [Recorder].
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Recorder is used by the services and the HTTP middleware.
type Recorder interface {
	RecordSignup(result string)
	RecordLogin(result string)
	RecordLogout()
	RecordInvoiceQuery(resultCount int)
	RecordHTTPStatus(statusCode int)
	RecordRequestLatency(duration time.Duration)
}

// Collector is the Prometheus backed [Recorder].
type Collector struct {
	signups        *prometheus.CounterVec
	logins         *prometheus.CounterVec
	logouts        prometheus.Counter
	invoiceQueries prometheus.Counter
	queryResults   prometheus.Histogram
	httpStatus     *prometheus.CounterVec
	requestLatency prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics in reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "invoice_audit_signups_total",
			Help: "Completed signup attempts by result.",
		}, []string{"result"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "invoice_audit_logins_total",
			Help: "Completed login attempts by result.",
		}, []string{"result"}),
		logouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "invoice_audit_logouts_total",
			Help: "Sessions ended by logout.",
		}),
		invoiceQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "invoice_audit_invoice_queries_total",
			Help: "Invoice table queries served.",
		}),
		queryResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "invoice_audit_invoice_query_results",
			Help:    "Number of invoices returned per query.",
			Buckets: prometheus.LinearBuckets(0, 5, 6),
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "invoice_audit_http_status_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "invoice_audit_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.signups,
		c.logins,
		c.logouts,
		c.invoiceQueries,
		c.queryResults,
		c.httpStatus,
		c.requestLatency,
	)

	return c
}

func (c *Collector) RecordSignup(result string) {
	c.signups.WithLabelValues(result).Inc()
}

func (c *Collector) RecordLogin(result string) {
	c.logins.WithLabelValues(result).Inc()
}

func (c *Collector) RecordLogout() {
	c.logouts.Inc()
}

func (c *Collector) RecordInvoiceQuery(resultCount int) {
	c.invoiceQueries.Inc()
	c.queryResults.Observe(float64(resultCount))
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordRequestLatency(duration time.Duration) {
	c.requestLatency.Observe(duration.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// nopRecorder discards everything. The terminal client has no scrape endpoint.
type nopRecorder struct{}

// Nop returns a [Recorder] that records nothing.
func Nop() Recorder { return nopRecorder{} }

func (nopRecorder) RecordSignup(string)                {}
func (nopRecorder) RecordLogin(string)                 {}
func (nopRecorder) RecordLogout()                      {}
func (nopRecorder) RecordInvoiceQuery(int)             {}
func (nopRecorder) RecordHTTPStatus(int)               {}
func (nopRecorder) RecordRequestLatency(time.Duration) {}
