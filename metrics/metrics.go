// Package metrics exposes Prometheus counters and histograms for the HTTP API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics counts requests and sign-in outcomes. A nil *HTTPMetrics is a no-op.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authTotal       *prometheus.CounterVec
	submitsTotal    *prometheus.CounterVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gymnexa",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gymnexa",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		authTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gymnexa",
			Subsystem: "auth",
			Name:      "sign_in_total",
			Help:      "Sign-in attempts by method and result",
		}, []string{"method", "result"}),
		submitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gymnexa",
			Subsystem: "wizard",
			Name:      "submit_total",
			Help:      "Wizard submissions by wizard and result",
		}, []string{"wizard", "result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration, m.authTotal, m.submitsTotal)
	return m
}

// Middleware records every request under its route template.
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveSignIn counts a sign-in attempt; method is "password" or "google".
func (m *HTTPMetrics) ObserveSignIn(method string, err error) {
	if m == nil {
		return
	}
	m.authTotal.WithLabelValues(method, result(err)).Inc()
}

// ObserveSubmit counts a wizard submission; wizard is "signup" or "completion".
func (m *HTTPMetrics) ObserveSubmit(wizard string, err error) {
	if m == nil {
		return
	}
	m.submitsTotal.WithLabelValues(wizard, result(err)).Inc()
}
