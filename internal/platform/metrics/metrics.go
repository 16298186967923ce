package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private prometheus registry with HTTP and ledger metrics.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	vouchersPosted   *prometheus.CounterVec
	vouchersRejected *prometheus.CounterVec
	vouchersDeleted  prometheus.Counter
	yearsClosed      *prometheus.CounterVec
	vatPeriodMarks   *prometheus.CounterVec
}

// New registers every metric on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookkeeping_http_requests_total",
			Help: "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bookkeeping_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		vouchersPosted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookkeeping_vouchers_posted_total",
			Help: "Vouchers accepted into the ledger by voucher type.",
		}, []string{"voucher_type"}),
		vouchersRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookkeeping_vouchers_rejected_total",
			Help: "Voucher postings refused, by reason code.",
		}, []string{"reason"}),
		vouchersDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeping_vouchers_deleted_total",
			Help: "Vouchers removed from the ledger.",
		}),
		yearsClosed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookkeeping_fiscal_years_closed_total",
			Help: "Fiscal years closed, split by whether a closing voucher was posted.",
		}, []string{"closing_voucher"}),
		vatPeriodMarks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookkeeping_vat_period_marks_total",
			Help: "VAT periods marked paid or unpaid.",
		}, []string{"paid"}),
	}
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsTotal,
		m.requestDuration,
		m.vouchersPosted,
		m.vouchersRejected,
		m.vouchersDeleted,
		m.yearsClosed,
		m.vatPeriodMarks,
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// Registry exposes the registry for tests and custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the /metrics endpoint.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(m.handler)
}

// Middleware records request counts and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) VoucherPosted(voucherType domain.VoucherType) {
	m.vouchersPosted.WithLabelValues(string(voucherType)).Inc()
}

func (m *Metrics) VoucherRejected(reason string) {
	m.vouchersRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) VoucherDeleted() {
	m.vouchersDeleted.Inc()
}

func (m *Metrics) YearClosed(withClosingVoucher bool) {
	m.yearsClosed.WithLabelValues(strconv.FormatBool(withClosingVoucher)).Inc()
}

func (m *Metrics) VatPeriodMarked(paid bool) {
	m.vatPeriodMarks.WithLabelValues(strconv.FormatBool(paid)).Inc()
}
