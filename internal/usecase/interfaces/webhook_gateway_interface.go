package interfaces

import (
	"context"
	"encoding/json"
)

// IWebhookGateway abstracts the outbound call to the automation webhook.
//
// A non-2xx status is not an error: the caller decides what the status means.
// err is reserved for transport failures (DNS, connection, timeout, body read).
type IWebhookGateway interface {
	Post(ctx context.Context, body json.RawMessage) (statusCode int, responseText string, err error)
}
