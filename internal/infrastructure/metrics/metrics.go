package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProposalsForwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proposal_relay_forwards_total",
			Help: "Total number of proposals forwarded to the webhook, by outcome",
		},
		[]string{"channel", "outcome"},
	)

	WebhookDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "proposal_relay_webhook_duration_seconds",
			Help:    "Duration of the outbound webhook call in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"channel"},
	)

	PayloadShapeMismatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "proposal_relay_payload_shape_mismatches_total",
			Help: "Relayed payloads that did not match the proposal schema (forwarded anyway)",
		},
	)

	DeliveryAuditFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "proposal_relay_delivery_audit_failures_total",
			Help: "Delivery attempts that could not be written to the audit table",
		},
	)
)
