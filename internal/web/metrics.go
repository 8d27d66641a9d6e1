package web

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the HTTP and image collectors.
type Metrics struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	imageRenders *prometheus.CounterVec
	imageCache   *prometheus.CounterVec
}

// MustNewMetrics registers the collectors with reg and panics on conflict.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "folio",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by route, method and status code.",
			},
			[]string{"route", "method", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "folio",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency by route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		imageRenders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "folio",
				Subsystem: "images",
				Name:      "renders_total",
				Help:      "Generated images by kind and mode.",
			},
			[]string{"kind", "mode"},
		),
		imageCache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "folio",
				Subsystem: "images",
				Name:      "cache_lookups_total",
				Help:      "Image cache lookups by result.",
			},
			[]string{"result"},
		),
	}
	reg.MustRegister(m.requests, m.duration, m.imageRenders, m.imageCache)
	return m
}

// ObserveRequest records one completed request.
func (m *Metrics) ObserveRequest(route, method string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// IncImageRender counts a freshly rendered image.
func (m *Metrics) IncImageRender(kind, mode string) {
	if m == nil {
		return
	}
	m.imageRenders.WithLabelValues(kind, mode).Inc()
}

// IncImageCache counts a cache "hit" or "miss".
func (m *Metrics) IncImageCache(result string) {
	if m == nil {
		return
	}
	m.imageCache.WithLabelValues(result).Inc()
}

func (m *Metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.FullPath(), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
