package usecase

import "errors"

var (
	ErrWebhookRejected       = errors.New("webhook rejected the data")
	ErrWebhookUnreachable    = errors.New("webhook unreachable")
	ErrInvalidRelayPayload   = errors.New("relay payload is not valid json")
	ErrInvalidProposalID     = errors.New("invalid proposal_id")
	ErrDeliveryAuditDisabled = errors.New("delivery audit disabled")
)

func isSuccessStatus(status int) bool {
	return status >= 200 && status <= 299
}
