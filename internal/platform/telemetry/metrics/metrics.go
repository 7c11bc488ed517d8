package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "useradmin"

// Outcome labels recorded for upstream calls.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Registry owns the process metrics.
type Registry struct {
	registry     *prometheus.Registry
	apiCalls     *prometheus.CounterVec
	apiDuration  *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
}

// NewRegistry builds a registry with the process and Go runtime collectors
// already registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		registry: reg,
		apiCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_api_calls_total",
			Help:      "Users API calls issued by the admin screen.",
		}, []string{"operation", "outcome"}),
		apiDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "users_api_call_duration_seconds",
			Help:      "Users API call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Admin HTTP requests by route and status class.",
		}, []string{"route", "code"}),
	}
	reg.MustRegister(
		r.apiCalls,
		r.apiDuration,
		r.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveAPICall records one users API call.
func (r *Registry) ObserveAPICall(operation string, err error, elapsed time.Duration) {
	if r == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	r.apiCalls.WithLabelValues(operation, outcome).Inc()
	r.apiDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// Handler serves the registry in Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Instrument counts requests served by next under the given route label.
func (r *Registry) Instrument(route string, next http.Handler) http.Handler {
	return r.InstrumentBy(func(*http.Request) string { return route }, next)
}

// InstrumentBy counts requests served by next under the label returned by
// routeLabel. Labels must come from a bounded set.
func (r *Registry) InstrumentBy(routeLabel func(*http.Request) string, next http.Handler) http.Handler {
	if r == nil || next == nil || routeLabel == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)
		r.httpRequests.WithLabelValues(routeLabel(req), statusClass(rec.status)).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(status int) {
	if !s.wroteHeader {
		s.status = status
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(status)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

func statusClass(status int) string {
	if status < 100 || status > 599 {
		return "unknown"
	}
	return strconv.Itoa(status/100) + "xx"
}
