package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exposed on /metrics.
var Registry = prometheus.NewRegistry()

var (
	proxyRequestsTotal = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "jobs_proxy_requests_total",
		Help: "Job requests forwarded upstream, by operation and relayed status.",
	}, []string{"operation", "status"})

	proxyUpstreamDuration = promauto.With(Registry).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jobs_proxy_upstream_duration_seconds",
		Help:    "Round-trip time of upstream job service calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	cvGenerationTotal = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "cv_generation_total",
		Help: "CV generation attempts by outcome.",
	}, []string{"outcome"})

	cvGenerationDuration = promauto.With(Registry).NewHistogram(prometheus.HistogramOpts{
		Name:    "cv_generation_duration_seconds",
		Help:    "End-to-end CV generation time including simulated latency.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 3, 5, 10},
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// StatusUnreachable labels proxied requests that never got an upstream answer.
const StatusUnreachable = "unreachable"

// ObserveProxy records one forwarded job request.
func ObserveProxy(operation string, status int, elapsed time.Duration) {
	label := StatusUnreachable
	if status > 0 {
		label = strconv.Itoa(status)
	}
	proxyRequestsTotal.WithLabelValues(operation, label).Inc()
	proxyUpstreamDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveGeneration records a CV generation outcome ("success", "invalid", "error").
func ObserveGeneration(outcome string, elapsed time.Duration) {
	cvGenerationTotal.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		cvGenerationDuration.Observe(elapsed.Seconds())
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
