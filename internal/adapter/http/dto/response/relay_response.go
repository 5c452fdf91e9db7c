package response

// RelayResponse is the body POST /api/proposals answers with. WebhookText is
// present (possibly empty) whenever the webhook answered; Error only when it
// could not be reached.
type RelayResponse struct {
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	WebhookText *string `json:"webhookText,omitempty"`
	Error       *string `json:"error,omitempty"`
}

const (
	RelayStatusSuccess = "success"
	RelayStatusError   = "error"
)

func NewRelaySuccess(webhookText string) RelayResponse {
	return RelayResponse{
		Status:      RelayStatusSuccess,
		Message:     "Proposal forwarded successfully",
		WebhookText: &webhookText,
	}
}

func NewRelayRejected(webhookText string) RelayResponse {
	return RelayResponse{
		Status:      RelayStatusError,
		Message:     "Webhook rejected the data",
		WebhookText: &webhookText,
	}
}

func NewRelayFailure(cause string) RelayResponse {
	return RelayResponse{
		Status:  RelayStatusError,
		Message: "Internal server error",
		Error:   &cause,
	}
}

func NewRelayInvalidBody() RelayResponse {
	return RelayResponse{Status: RelayStatusError, Message: "Invalid JSON body"}
}

func NewRelayBodyTooLarge() RelayResponse {
	return RelayResponse{Status: RelayStatusError, Message: "Request body too large"}
}
