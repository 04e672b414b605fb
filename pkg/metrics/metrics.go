package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP-level metrics, labelled by method, route template and status class.
var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aurum_http_requests_total",
		Help: "Number of HTTP requests processed",
	}, []string{"method", "path", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aurum_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	RoutesDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aurum_routes_detected_total",
		Help: "Route detection outcomes by route type",
	}, []string{"route_type"})
)
