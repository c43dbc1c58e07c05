// Package records persists generation and status-check documents in DynamoDB.
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

// GenerationStore encapsulates operations on the generations table.
type GenerationStore struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewGenerationStore creates a new GenerationStore.
func NewGenerationStore(client aws.DynamoDBAPI, tableName string) *GenerationStore {
	return &GenerationStore{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Put writes a generation record. rec.ID must be set by the caller;
// the table keys and CreatedAt (if zero) are filled in here.
func (s *GenerationStore) Put(ctx context.Context, rec GenerationRecord) error {
	rec.PK = generationPartition
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.nowFunc().UTC()
	}
	rec.SortKey = sortKeyFor(rec.CreatedAt, rec.ID)

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal generation record: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return wrapStoreErr("put generation record", err)
	}
	return nil
}

// ListRecent returns up to limit generation summaries, most recent first.
// Table keys are stripped and code is truncated to a PreviewLength preview.
func (s *GenerationStore) ListRecent(ctx context.Context, limit int32) ([]GenerationSummary, error) {
	out, err := s.client.Query(ctx, &dyn.QueryInput{
		TableName:              &s.tableName,
		KeyConditionExpression: awsString("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: generationPartition},
		},
		ScanIndexForward: awsBool(false),
		Limit:            &limit,
	})
	if err != nil {
		return nil, wrapStoreErr("query generations", err)
	}

	var recs []GenerationRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &recs); err != nil {
		return nil, fmt.Errorf("unmarshal generations: %w", err)
	}

	summaries := make([]GenerationSummary, 0, len(recs))
	for _, r := range recs {
		summaries = append(summaries, GenerationSummary{
			ID:        r.ID,
			Prompt:    r.Prompt,
			Timestamp: r.CreatedAt,
			Preview:   preview(r.Code),
		})
	}
	return summaries, nil
}

func preview(code string) string {
	if len(code) <= PreviewLength {
		return code
	}
	return code[:PreviewLength] + "..."
}
