package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SignalsAppliedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_signals_applied_total",
		Help: "Total number of lifecycle signals applied to session stores",
	}, []string{"type"})

	WorkflowDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "checkout_workflow_duration_seconds",
		Help:    "Duration of checkout workflows",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "outcome"})

	PreconditionFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_precondition_failures_total",
		Help: "Total number of workflows rejected before any request was sent",
	}, []string{"operation"})

	OutboundRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "checkout_outbound_request_duration_seconds",
		Help:    "Latency of requests sent to the storefront and payment APIs",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	OutboundRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_outbound_requests_total",
		Help: "Total number of requests sent to the storefront and payment APIs",
	}, []string{"method", "route", "status"})

	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_cache_hits_total",
		Help: "Total number of catalog cache hits",
	}, []string{"resource"})

	CacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_cache_misses_total",
		Help: "Total number of catalog cache misses",
	}, []string{"resource"})

	SignalsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_signals_published_total",
		Help: "Total number of signals published to the journal topic",
	}, []string{"result"})

	NotificationsProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_notifications_processed_total",
		Help: "Total number of backend notifications handled",
	}, []string{"type", "result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
