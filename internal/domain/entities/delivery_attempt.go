package entities

import "time"

// DeliveryOutcome is the result of one attempt to hand a proposal to the webhook.
type DeliveryOutcome string

const (
	DeliveryOutcomeDelivered   DeliveryOutcome = "delivered"
	DeliveryOutcomeRejected    DeliveryOutcome = "rejected"
	DeliveryOutcomeUnreachable DeliveryOutcome = "unreachable"
)

// DeliveryChannel tells which path the proposal took to the webhook.
type DeliveryChannel string

const (
	DeliveryChannelRelay  DeliveryChannel = "relay"
	DeliveryChannelDirect DeliveryChannel = "direct"
)

// DeliveryAttempt is the audit record of one forwarding.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposal_id-index): proposal_id
//
// Only delivery metadata is kept; the proposal body itself is never stored.
type DeliveryAttempt struct {
	ID             string          `json:"id"`
	ProposalID     string          `json:"proposal_id"`
	Channel        DeliveryChannel `json:"channel"`
	Outcome        DeliveryOutcome `json:"outcome"`
	UpstreamStatus int             `json:"upstream_status"`
	AttemptedAt    time.Time       `json:"attempted_at"`
}
