// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Comparison metrics
	BundlesBuilt      *prometheus.CounterVec
	SeriesOmitted     *prometheus.CounterVec
	StaleResults      *prometheus.CounterVec
	BundleCurves      prometheus.Histogram
	StrategiesTracked prometheus.Gauge

	// Upstream metrics
	UpstreamLatency *prometheus.HistogramVec
	UpstreamErrors  *prometheus.CounterVec
	CandlesFetched  prometheus.Counter
	CandlesDropped  prometheus.Counter

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
	CacheErrors *prometheus.CounterVec

	// HTTP metrics
	HTTPRequestDuration *prometheus.HistogramVec

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	return newMetrics(promauto.With(prometheus.DefaultRegisterer), namespace)
}

func newMetrics(f promauto.Factory, namespace string) *Metrics {
	if namespace == "" {
		namespace = "solana_signal_lab"
	}

	return &Metrics{
		BundlesBuilt: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "comparison",
			Name:      "bundles_built_total",
			Help:      "Total number of comparison bundles built by view",
		}, []string{"view"}),
		SeriesOmitted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "comparison",
			Name:      "series_omitted_total",
			Help:      "Series left out of a bundle by reason",
		}, []string{"view", "reason"}),
		StaleResults: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "comparison",
			Name:      "stale_results_discarded_total",
			Help:      "Bundles discarded because a newer request was issued",
		}, []string{"view"}),
		BundleCurves: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "comparison",
			Name:      "bundle_curves",
			Help:      "Number of data curves per bundle",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		}),
		StrategiesTracked: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "comparison",
			Name:      "strategies_tracked",
			Help:      "Current number of user strategies",
		}),

		UpstreamLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Price API request latency by operation",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"operation"}),
		UpstreamErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "errors_total",
			Help:      "Price API errors by operation and kind",
		}, []string{"operation", "kind"}),
		CandlesFetched: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "candles_fetched_total",
			Help:      "Raw candles received from the price API",
		}),
		CandlesDropped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "candles_dropped_total",
			Help:      "Raw candles rejected by sanitization",
		}),

		CacheHits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Candle cache hits",
		}, []string{"backend"}),
		CacheMisses: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Candle cache misses",
		}, []string{"backend"}),
		CacheErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "errors_total",
			Help:      "Candle cache backend errors",
		}, []string{"backend", "operation"}),

		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "API request duration by route and status",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),

		DBQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"database", "operation"}),
		DBQueryErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_errors_total",
			Help:      "Total number of database query errors",
		}, []string{"database", "operation"}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordBundle records a built bundle for a view.
func RecordBundle(view string, curves, omitted int) {
	DefaultMetrics.BundlesBuilt.WithLabelValues(view).Inc()
	DefaultMetrics.BundleCurves.Observe(float64(curves))
	if omitted > 0 {
		DefaultMetrics.SeriesOmitted.WithLabelValues(view, "not_computable").Add(float64(omitted))
	}
}

// RecordSeriesOmitted records a series dropped before normalization,
// e.g. because its fetch failed.
func RecordSeriesOmitted(view, reason string) {
	DefaultMetrics.SeriesOmitted.WithLabelValues(view, reason).Inc()
}

// RecordStaleResult records a bundle discarded by last-write-wins.
func RecordStaleResult(view string) {
	DefaultMetrics.StaleResults.WithLabelValues(view).Inc()
}

// SetStrategiesTracked updates the strategies gauge.
func SetStrategiesTracked(n int) {
	DefaultMetrics.StrategiesTracked.Set(float64(n))
}

// RecordUpstream records a price API call.
func RecordUpstream(operation string, seconds float64, errKind string) {
	DefaultMetrics.UpstreamLatency.WithLabelValues(operation).Observe(seconds)
	if errKind != "" {
		DefaultMetrics.UpstreamErrors.WithLabelValues(operation, errKind).Inc()
	}
}

// RecordCandles records raw candles received and how many were dropped.
func RecordCandles(received, kept int) {
	DefaultMetrics.CandlesFetched.Add(float64(received))
	if dropped := received - kept; dropped > 0 {
		DefaultMetrics.CandlesDropped.Add(float64(dropped))
	}
}

// RecordCacheLookup records a cache hit or miss.
func RecordCacheLookup(backend string, hit bool) {
	if hit {
		DefaultMetrics.CacheHits.WithLabelValues(backend).Inc()
		return
	}
	DefaultMetrics.CacheMisses.WithLabelValues(backend).Inc()
}

// RecordCacheError records a cache backend failure.
func RecordCacheError(backend, operation string) {
	DefaultMetrics.CacheErrors.WithLabelValues(backend, operation).Inc()
}

// RecordHTTPRequest records an API request.
func RecordHTTPRequest(method, route, status string, seconds float64) {
	DefaultMetrics.HTTPRequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

// RecordDBQuery records database query metrics.
func RecordDBQuery(database, operation string, seconds float64, err error) {
	DefaultMetrics.DBQueryDuration.WithLabelValues(database, operation).Observe(seconds)
	if err != nil {
		DefaultMetrics.DBQueryErrors.WithLabelValues(database, operation).Inc()
	}
}
