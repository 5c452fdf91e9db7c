package response

import (
	"time"

	"proposal_relay/internal/domain/entities"
)

type DeliveryResponse struct {
	DeliveryID     string    `json:"delivery_id"`
	ProposalID     string    `json:"proposal_id"`
	Channel        string    `json:"channel"`
	Outcome        string    `json:"outcome"`
	UpstreamStatus int       `json:"upstream_status"`
	AttemptedAt    time.Time `json:"attempted_at"`
}

func FromDeliveryAttempt(a entities.DeliveryAttempt) DeliveryResponse {
	return DeliveryResponse{
		DeliveryID:     a.ID,
		ProposalID:     a.ProposalID,
		Channel:        string(a.Channel),
		Outcome:        string(a.Outcome),
		UpstreamStatus: a.UpstreamStatus,
		AttemptedAt:    a.AttemptedAt,
	}
}

func FromDeliveryAttempts(attempts []entities.DeliveryAttempt) []DeliveryResponse {
	out := make([]DeliveryResponse, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, FromDeliveryAttempt(a))
	}
	return out
}
