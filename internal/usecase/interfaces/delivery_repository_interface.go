package interfaces

import (
	"context"
	"proposal_relay/internal/domain/entities"
)

// IDeliveryRepository abstracts DynamoDB persistence for DeliveryAttempt.

type IDeliveryRepository interface {
	Create(ctx context.Context, a entities.DeliveryAttempt) (entities.DeliveryAttempt, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.DeliveryAttempt, error)
}
