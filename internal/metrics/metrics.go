package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	EntityUser      = "user"
	EntitySlot      = "booked_slot"
	EntityCommunity = "community"
	EntitySport     = "sport"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "khelkud",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "khelkud",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "khelkud",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	recordsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "khelkud",
			Subsystem: "store",
			Name:      "records_created_total",
			Help:      "Total number of records persisted, by entity.",
		},
		[]string{"entity"},
	)

	collectionSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "khelkud",
			Subsystem: "store",
			Name:      "collection_documents",
			Help:      "Estimated number of documents per collection.",
		},
		[]string{"collection"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpInFlight,
		httpRequests,
		httpDuration,
		recordsCreated,
		collectionSize,
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted marks a request as in flight and returns the func that records its outcome.
func RequestStarted() func(method, path string, status int, elapsed time.Duration) {
	httpInFlight.Inc()
	return func(method, path string, status int, elapsed time.Duration) {
		httpInFlight.Dec()
		httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
	}
}

func RecordCreated(entity string) {
	recordsCreated.WithLabelValues(entity).Inc()
}

// SetCollectionSize publishes the last observed document count of a collection.
func SetCollectionSize(collection string, n int64) {
	collectionSize.WithLabelValues(collection).Set(float64(n))
}
