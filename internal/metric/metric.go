package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventdesk_http_requests_total",
		Help: "Handled HTTP requests by method, route and status code",
	}, []string{"method", "path", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "eventdesk_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	AssetUploadBytes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "eventdesk_asset_upload_bytes",
		Help:    "Size of uploaded binary assets by kind",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
	}, []string{"kind"})
)
