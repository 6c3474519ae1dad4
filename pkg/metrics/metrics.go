// Package metrics provides Prometheus instrumentation for the API server.
//
// Wire it up once when building the handler:
//
//	r.Use(metrics.Middleware())
//	r.Get("/metrics", "metrics", metrics.Handler())
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, route path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vinayak",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vinayak",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks how many requests are currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "vinayak",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// StoreQueryDuration tracks MongoDB query latency per repository operation.
	StoreQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vinayak",
			Subsystem: "store",
			Name:      "query_duration_seconds",
			Help:      "Duration of document store queries in seconds.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .5, 1},
		},
		[]string{"collection", "operation"},
	)

	// CacheHits / CacheMisses track cache effectiveness.
	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vinayak",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total cache hits.",
		},
		[]string{"driver"},
	)
	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vinayak",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total cache misses.",
		},
		[]string{"driver"},
	)

	// StatTotalOrders and friends mirror the dashboard stat cards so
	// operators can graph the store without opening the dashboard.
	StatTotalOrders = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "vinayak",
		Subsystem: "stats",
		Name:      "total_orders",
		Help:      "Orders counted at the last stats snapshot.",
	})
	StatTotalRevenue = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "vinayak",
		Subsystem: "stats",
		Name:      "total_revenue",
		Help:      "Revenue summed at the last stats snapshot.",
	})
	StatTotalCustomers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "vinayak",
		Subsystem: "stats",
		Name:      "total_customers",
		Help:      "Distinct customer emails at the last stats snapshot.",
	})
	StatTotalProducts = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "vinayak",
		Subsystem: "stats",
		Name:      "total_products",
		Help:      "Products counted at the last stats snapshot.",
	})
)

// DefaultRegistry is the Prometheus registry used by the app.
// Register your own metrics against this.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	// Go runtime metrics (GC, goroutines, memory)
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	// OS process metrics (CPU, open FDs)
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		StoreQueryDuration,
		CacheHits,
		CacheMisses,
		StatTotalOrders,
		StatTotalRevenue,
		StatTotalCustomers,
		StatTotalProducts,
	)
}

// MustRegister adds collectors to the app registry, panicking on conflict.
func MustRegister(c ...prometheus.Collector) {
	DefaultRegistry.MustRegister(c...)
}

// responseRecorder wraps http.ResponseWriter to capture the status code.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records Prometheus metrics for every request: duration
// histogram, total counter, in-flight gauge.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := r.URL.Path // raw path; normalize in high-cardinality APIs

			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rr, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(rr.status)

			RequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
			RequestTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// Handler returns an http.HandlerFunc that exposes the Prometheus metrics page.
// Mount it on GET /metrics in your router.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}

// ObserveStoreQuery records a document store query duration:
//
//	defer metrics.ObserveStoreQuery("products", "find", time.Now())
func ObserveStoreQuery(collection, operation string, start time.Time) {
	StoreQueryDuration.WithLabelValues(collection, operation).Observe(time.Since(start).Seconds())
}
