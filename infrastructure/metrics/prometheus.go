// ABOUTME: Prometheus implementation of the feed metrics recorder
// ABOUTME: Also instruments HTTP handlers and serves the /metrics endpoint

package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the collectors. It implements interfaces.Metrics.
type Recorder struct {
	registry        *prometheus.Registry
	pagesLoaded     *prometheus.CounterVec
	mutations       *prometheus.CounterVec
	sourceCalls     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
}

// NewRecorder registers all collectors on a fresh registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		pagesLoaded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reels_pages_loaded_total",
				Help: "Feed page loads, by kind and result.",
			},
			[]string{"kind", "result"},
		),
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reels_mutations_total",
				Help: "Like and follow toggles, by outcome.",
			},
			[]string{"action", "outcome"},
		),
		sourceCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reels_source_calls_total",
				Help: "Calls served by the video source, by operation and result.",
			},
			[]string{"op", "result"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reels_api_request_duration_seconds",
				Help:    "HTTP request duration in seconds, by endpoint and method.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint", "method", "status"},
		),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "reels_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		}),
	}

	r.registry.MustRegister(
		r.pagesLoaded,
		r.mutations,
		r.sourceCalls,
		r.requestDuration,
		r.inFlight,
		collectors.NewGoCollector(),
	)
	return r
}

// PageLoaded counts a page load attempt
func (r *Recorder) PageLoaded(kind string, success bool) {
	r.pagesLoaded.WithLabelValues(kind, result(success)).Inc()
}

// Mutation counts a like/follow outcome
func (r *Recorder) Mutation(action, outcome string) {
	r.mutations.WithLabelValues(action, outcome).Inc()
}

// SourceCall counts a call served by a video source
func (r *Recorder) SourceCall(op string, success bool) {
	r.sourceCalls.WithLabelValues(op, result(success)).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Middleware records request duration and in-flight count
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/metrics" {
			next.ServeHTTP(w, req)
			return
		}

		r.inFlight.Inc()
		defer r.inFlight.Dec()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, req)

		r.requestDuration.
			WithLabelValues(sanitizeEndpoint(req.URL.Path), req.Method, strconv.Itoa(sw.status)).
			Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// sanitizeEndpoint folds IDs out of paths to bound label cardinality
func sanitizeEndpoint(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 {
		return path
	}
	switch parts[0] {
	case "videos":
		parts[1] = "{id}"
	case "authors":
		parts[1] = "{authorId}"
	case "users", "shares":
		parts[1] = "{id}"
	default:
		return path
	}
	return "/" + strings.Join(parts, "/")
}

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
