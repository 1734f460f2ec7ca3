package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	CredentialsIssued   prometheus.Counter
	CredentialsRevoked  prometheus.Counter
	Verifications       *prometheus.CounterVec
	PublicViews         prometheus.Counter
	Shares              *prometheus.CounterVec
	IdentifierRetries   prometheus.Counter
	AuditEventsDropped  prometheus.Counter
	EndpointLatency     *prometheus.HistogramVec
	TemplatesCreated    prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		CredentialsIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "skillpass_credentials_issued_total",
			Help: "Total number of credentials issued",
		}),
		CredentialsRevoked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "skillpass_credentials_revoked_total",
			Help: "Total number of credentials revoked",
		}),
		Verifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "skillpass_verifications_total",
			Help: "Total number of verification attempts, labeled by outcome",
		}, []string{"outcome"}),
		PublicViews: promauto.NewCounter(prometheus.CounterOpts{
			Name: "skillpass_public_views_total",
			Help: "Total number of public credential views",
		}),
		Shares: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "skillpass_shares_total",
			Help: "Total number of credential shares, labeled by platform",
		}, []string{"platform"}),
		IdentifierRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "skillpass_identifier_retries_total",
			Help: "Total number of identifier collision redraws during issuance",
		}),
		AuditEventsDropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "skillpass_audit_events_dropped_total",
			Help: "Total number of audit events dropped due to a full buffer",
		}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skillpass_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		TemplatesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "skillpass_badge_templates_created_total",
			Help: "Total number of badge templates created",
		}),
	}
}
