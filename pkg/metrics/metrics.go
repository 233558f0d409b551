package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the application metrics registry exposed at /api/metrics.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// Custom histogram buckets optimized for API response times ranging from
	// milliseconds to multi-second database operations
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// HTTP Metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Database Metrics
	DBOperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_client_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	DBOperationTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_client_operation_total",
			Help: "Total number of database operations",
		},
		[]string{"operation", "status"},
	)

	// Auth Metrics
	AuthRegistrations = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_auth_registrations_total",
			Help: "Total number of registration attempts",
		},
		[]string{"status"},
	)

	AuthLogins = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_auth_logins_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"},
	)

	AuthRefreshes = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_auth_token_refreshes_total",
			Help: "Total number of token refresh attempts",
		},
		[]string{"status"},
	)

	// Business Metrics
	SlotBookings = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_slot_bookings_total",
			Help: "Total number of slot booking attempts",
		},
		[]string{"status"},
	)

	SessionLogUpserts = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_session_log_upserts_total",
			Help: "Total number of session log submissions",
		},
		[]string{"status"},
	)

	InvitesCreated = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_invites_created_total",
			Help: "Total number of invites created",
		},
		[]string{"role"},
	)

	// Storage Client Metrics (CSV export archive)
	StorageRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_client_operation_duration_seconds",
			Help:    "Storage client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	StorageRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_client_operation_total",
			Help: "Total number of storage client operations",
		},
		[]string{"operation", "status"},
	)

	// Webhook trigger metrics
	WebhookCalls = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_webhook_calls_total",
			Help: "Total number of outbound webhook calls",
		},
		[]string{"event", "status"},
	)

	// Infrastructure
	Goroutines = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "go_app_goroutines",
			Help: "Number of running goroutines",
		},
	)
)

// Init registers the runtime collectors and a build info gauge carrying the
// service name.
func Init(serviceName string) {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	buildInfo := factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mentorhub_build_info",
			Help: "Build information",
		},
		[]string{"service"},
	)
	buildInfo.WithLabelValues(serviceName).Set(1)
}

// RecordInfrastructureMetrics starts a background sampler for runtime gauges
func RecordInfrastructureMetrics() {
	go func() {
		for {
			Goroutines.Set(float64(runtime.NumGoroutine()))
			time.Sleep(15 * time.Second)
		}
	}()
}

// MeasureDuration returns elapsed seconds since start
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
