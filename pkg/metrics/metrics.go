// Package metrics Prometheus 指标
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 解读结果分类
const (
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// Collector 应用的全部指标，每个实例有独立的 registry
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	Readings               *prometheus.CounterVec
	Interpretations        *prometheus.CounterVec
	InterpretationDuration prometheus.Histogram

	LiveConnections prometheus.Gauge
	LiveMessages    *prometheus.CounterVec
}

// New 创建指标收集器
func New(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Readings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "readings_total",
			Help:      "Total number of readings drawn, by spread",
		}, []string{"spread"}),
		Interpretations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interpretations_total",
			Help:      "Total number of interpretation requests, by outcome",
		}, []string{"outcome"}),
		InterpretationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "interpretation_duration_seconds",
			Help:      "Time spent waiting for the AI provider",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 90},
		}),
		LiveConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_connections",
			Help:      "Open live-reading websocket connections",
		}),
		LiveMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "live_messages_total",
			Help:      "Inbound live-reading messages, by action",
		}, []string{"action"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.HTTPRequests,
		c.HTTPDuration,
		c.Readings,
		c.Interpretations,
		c.InterpretationDuration,
		c.LiveConnections,
		c.LiveMessages,
	)
	return c
}

// Registry 返回底层 registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler /metrics 接口
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordRequest 记录一次 HTTP 请求
func (c *Collector) RecordRequest(method, route, status string, elapsed time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, status).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordReading 记录一次抽牌
func (c *Collector) RecordReading(spread string) {
	c.Readings.WithLabelValues(spread).Inc()
}

// RecordInterpretation 记录一次解读请求
func (c *Collector) RecordInterpretation(outcome string, elapsed time.Duration) {
	c.Interpretations.WithLabelValues(outcome).Inc()
	c.InterpretationDuration.Observe(elapsed.Seconds())
}
