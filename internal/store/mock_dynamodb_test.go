package store

import (
	"context"
	"errors"
	"strconv"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// mockDynamo is a small in-memory stand-in for DynamoDB supporting the calls
// Table issues: conditional PutItem/DeleteItem, GetItem, Scan and the
// "ADD last_id :inc" counter UpdateItem. Items are stored per table keyed by
// the numeric "id" attribute value.
type mockDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue

	putCalls    int
	scanCalls   int
	updateCalls int
}

func newMockDynamo() *mockDynamo {
	return &mockDynamo{
		tables: map[string]map[string]map[string]types.AttributeValue{},
	}
}

func (m *mockDynamo) ensureTable(tbl string) map[string]map[string]types.AttributeValue {
	if _, ok := m.tables[tbl]; !ok {
		m.tables[tbl] = map[string]map[string]types.AttributeValue{}
	}
	return m.tables[tbl]
}

func idOf(attrs map[string]types.AttributeValue) (string, error) {
	n, ok := attrs["id"].(*types.AttributeValueMemberN)
	if !ok {
		return "", errors.New("no numeric id attribute")
	}
	return n.Value, nil
}

func (m *mockDynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putCalls++

	table := m.ensureTable(*params.TableName)
	pk, err := idOf(params.Item)
	if err != nil {
		return nil, err
	}

	if params.ConditionExpression != nil {
		_, exists := table[pk]
		switch *params.ConditionExpression {
		case "attribute_not_exists(id)":
			if exists {
				return nil, &types.ConditionalCheckFailedException{}
			}
		case "attribute_exists(id)":
			if !exists {
				return nil, &types.ConditionalCheckFailedException{}
			}
		default:
			return nil, errors.New("unsupported condition: " + *params.ConditionExpression)
		}
	}

	table[pk] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *mockDynamo) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	table := m.ensureTable(*params.TableName)
	pk, err := idOf(params.Key)
	if err != nil {
		return nil, err
	}
	item, ok := table[pk]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (m *mockDynamo) DeleteItem(ctx context.Context, params *dyn.DeleteItemInput, optFns ...func(*dyn.Options)) (*dyn.DeleteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	table := m.ensureTable(*params.TableName)
	pk, err := idOf(params.Key)
	if err != nil {
		return nil, err
	}
	if params.ConditionExpression != nil && *params.ConditionExpression == "attribute_exists(id)" {
		if _, ok := table[pk]; !ok {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	delete(table, pk)
	return &dyn.DeleteItemOutput{}, nil
}

func (m *mockDynamo) UpdateItem(ctx context.Context, params *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++

	table := m.ensureTable(*params.TableName)
	pk, err := idOf(params.Key)
	if err != nil {
		return nil, err
	}
	if params.UpdateExpression == nil || *params.UpdateExpression != "ADD last_id :inc" {
		return nil, errors.New("unsupported update expression")
	}

	item, ok := table[pk]
	if !ok {
		item = map[string]types.AttributeValue{"id": params.Key["id"]}
	}
	var current int64
	if n, ok := item["last_id"].(*types.AttributeValueMemberN); ok {
		current, _ = strconv.ParseInt(n.Value, 10, 64)
	}
	inc := params.ExpressionAttributeValues[":inc"].(*types.AttributeValueMemberN)
	delta, _ := strconv.ParseInt(inc.Value, 10, 64)
	next := current + delta

	item["last_id"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(next, 10)}
	table[pk] = item

	return &dyn.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
		"last_id": item["last_id"],
	}}, nil
}

func (m *mockDynamo) Scan(ctx context.Context, params *dyn.ScanInput, optFns ...func(*dyn.Options)) (*dyn.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scanCalls++

	table := m.ensureTable(*params.TableName)
	items := make([]map[string]types.AttributeValue, 0, len(table))
	for _, item := range table {
		items = append(items, item)
	}
	return &dyn.ScanOutput{Items: items}, nil
}
