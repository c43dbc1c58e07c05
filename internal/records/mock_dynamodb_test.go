package records

import (
	"context"
	"errors"
	"sort"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// simpleMock is a very small in-memory mock for PutItem/Query used in unit tests.
// NOTE: This is intentionally minimal and not production-grade.
type simpleMock struct {
	mu         sync.Mutex
	items      []map[string]types.AttributeValue
	putCalls   int
	queryCalls int
	putErr     error
	queryErr   error
}

func newSimpleMock() *simpleMock {
	return &simpleMock{}
}

func (m *simpleMock) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putCalls++
	if m.putErr != nil {
		return nil, m.putErr
	}
	if params.Item == nil {
		return nil, errors.New("nil item")
	}
	m.items = append(m.items, params.Item)
	return &dyn.PutItemOutput{}, nil
}

func (m *simpleMock) Query(ctx context.Context, params *dyn.QueryInput, optFns ...func(*dyn.Options)) (*dyn.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryCalls++
	if m.queryErr != nil {
		return nil, m.queryErr
	}

	pkAttr, ok := params.ExpressionAttributeValues[":pk"]
	if !ok {
		return nil, errors.New("missing :pk value")
	}
	pk := pkAttr.(*types.AttributeValueMemberS).Value

	var matched []map[string]types.AttributeValue
	for _, item := range m.items {
		if v, ok := item["pk"].(*types.AttributeValueMemberS); ok && v.Value == pk {
			matched = append(matched, item)
		}
	}

	// byte-wise ascending on the sk range key, like DynamoDB compares strings
	sort.SliceStable(matched, func(i, j int) bool {
		return rangeKey(matched[i]) < rangeKey(matched[j])
	})
	if params.ScanIndexForward != nil && !*params.ScanIndexForward {
		for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
			matched[i], matched[j] = matched[j], matched[i]
		}
	}
	if params.Limit != nil && int(*params.Limit) < len(matched) {
		matched = matched[:*params.Limit]
	}

	return &dyn.QueryOutput{Items: matched, Count: int32(len(matched))}, nil
}

func rangeKey(item map[string]types.AttributeValue) string {
	if v, ok := item["sk"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}
