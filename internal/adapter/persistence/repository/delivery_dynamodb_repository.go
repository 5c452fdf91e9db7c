package repository

import (
	"context"
	"slices"
	"time"

	"proposal_relay/internal/domain/entities"
	"proposal_relay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultDeliveriesTableName = "deliveries"
	deliveriesProposalIDIndex  = "proposal_id-index"
)

// deliveryAttemptItem omits an empty proposal_id: the attribute keys the
// sparse proposal_id-index, and DynamoDB rejects "" as an index key.
type deliveryAttemptItem struct {
	ID             string `dynamodbav:"id"`
	ProposalID     string `dynamodbav:"proposal_id,omitempty"`
	Channel        string `dynamodbav:"channel"`
	Outcome        string `dynamodbav:"outcome"`
	UpstreamStatus int    `dynamodbav:"upstream_status"`
	AttemptedAt    string `dynamodbav:"attempted_at"`
}

// DeliveryDynamoRepository persists DeliveryAttempt records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id)

type DeliveryDynamoRepository struct {
	ddb       dynamoDBAPI
	tableName string
}

var _ interfaces.IDeliveryRepository = (*DeliveryDynamoRepository)(nil)

func NewDeliveryDynamoRepository(ddb dynamoDBAPI, tableName string) *DeliveryDynamoRepository {
	if tableName == "" {
		tableName = DefaultDeliveriesTableName
	}
	return &DeliveryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DeliveryDynamoRepository) Create(ctx context.Context, a entities.DeliveryAttempt) (entities.DeliveryAttempt, error) {
	av, err := attributevalue.MarshalMap(toDeliveryAttemptItem(a))
	if err != nil {
		return entities.DeliveryAttempt{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.DeliveryAttempt{}, err
	}
	return a, nil
}

// ListByProposalID returns every attempt for a proposal, oldest first.
func (r *DeliveryDynamoRepository) ListByProposalID(ctx context.Context, proposalID string) ([]entities.DeliveryAttempt, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(deliveriesProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
	}

	items := make([]entities.DeliveryAttempt, 0)
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it deliveryAttemptItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromDeliveryAttemptItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	slices.SortStableFunc(items, func(a, b entities.DeliveryAttempt) int {
		return a.AttemptedAt.Compare(b.AttemptedAt)
	})
	return items, nil
}

func toDeliveryAttemptItem(a entities.DeliveryAttempt) deliveryAttemptItem {
	return deliveryAttemptItem{
		ID:             a.ID,
		ProposalID:     a.ProposalID,
		Channel:        string(a.Channel),
		Outcome:        string(a.Outcome),
		UpstreamStatus: a.UpstreamStatus,
		AttemptedAt:    a.AttemptedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDeliveryAttemptItem(it deliveryAttemptItem) entities.DeliveryAttempt {
	at, _ := time.Parse(time.RFC3339Nano, it.AttemptedAt)
	return entities.DeliveryAttempt{
		ID:             it.ID,
		ProposalID:     it.ProposalID,
		Channel:        entities.DeliveryChannel(it.Channel),
		Outcome:        entities.DeliveryOutcome(it.Outcome),
		UpstreamStatus: it.UpstreamStatus,
		AttemptedAt:    at,
	}
}
