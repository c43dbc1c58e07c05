package records

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pagecraft/go-ai-website-builder/internal/aws"
)

// StatusStore encapsulates operations on the status checks table.
type StatusStore struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStatusStore creates a new StatusStore.
func NewStatusStore(client aws.DynamoDBAPI, tableName string) *StatusStore {
	return &StatusStore{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Put writes a status check record. rec.ID must be set by the caller.
func (s *StatusStore) Put(ctx context.Context, rec StatusRecord) error {
	rec.PK = statusPartition
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.nowFunc().UTC()
	}
	rec.SortKey = sortKeyFor(rec.CreatedAt, rec.ID)

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal status record: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return wrapStoreErr("put status record", err)
	}
	return nil
}

// List returns up to limit status checks in the table's native sort order.
func (s *StatusStore) List(ctx context.Context, limit int32) ([]StatusView, error) {
	out, err := s.client.Query(ctx, &dyn.QueryInput{
		TableName:              &s.tableName,
		KeyConditionExpression: awsString("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: statusPartition},
		},
		Limit: &limit,
	})
	if err != nil {
		return nil, wrapStoreErr("query status checks", err)
	}

	var recs []StatusRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &recs); err != nil {
		return nil, fmt.Errorf("unmarshal status checks: %w", err)
	}

	views := make([]StatusView, 0, len(recs))
	for _, r := range recs {
		views = append(views, StatusView{
			ID:         r.ID,
			ClientName: r.ClientName,
			Timestamp:  r.CreatedAt,
		})
	}
	return views, nil
}
