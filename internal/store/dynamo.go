package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/mdigital/sales-api/internal/aws"
)

// counterID is the reserved key of the per-table ID counter item. It never
// appears in GetAll results and is not a valid entity ID.
const counterID = 0

// Table is a DynamoDB-backed Store. Rows live in a single table keyed by a
// numeric "id" attribute. Insert/Update/Delete use conditional writes so that
// duplicate-key and not-found races resolve without partial writes.
type Table[T any] struct {
	client    aws.DynamoDBAPI
	tableName string
}

// NewTable creates a Table bound to the given DynamoDB table name.
func NewTable[T any](client aws.DynamoDBAPI, tableName string) *Table[T] {
	return &Table[T]{client: client, tableName: tableName}
}

func idKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

// conditionFailed reports whether err is a failed ConditionExpression.
func conditionFailed(err error) bool {
	var cc *types.ConditionalCheckFailedException
	if errors.As(err, &cc) {
		return true
	}
	var ae smithy.APIError
	return errors.As(err, &ae) && ae.ErrorCode() == "ConditionalCheckFailedException"
}

func (t *Table[T]) GetAll(ctx context.Context) ([]T, error) {
	items := []map[string]types.AttributeValue{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := t.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &t.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	// Scan order is undefined; callers expect a stable ascending-ID listing.
	type keyed struct {
		id   int64
		item map[string]types.AttributeValue
	}
	rows := make([]keyed, 0, len(items))
	for _, item := range items {
		n, ok := item["id"].(*types.AttributeValueMemberN)
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil || id == counterID {
			continue
		}
		rows = append(rows, keyed{id: id, item: item})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].id < rows[j].id })

	out := make([]T, 0, len(rows))
	for _, r := range rows {
		var row T
		if err := attributevalue.UnmarshalMap(r.item, &row); err != nil {
			return nil, fmt.Errorf("unmarshal row %d: %w", r.id, err)
		}
		out = append(out, row)
	}
	return out, nil
}

func (t *Table[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	out, err := t.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &t.tableName,
		Key:       idKey(id),
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var row T
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return nil, fmt.Errorf("unmarshal row: %w", err)
	}
	return &row, nil
}

func (t *Table[T]) Exists(ctx context.Context, id int64) (bool, error) {
	out, err := t.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &t.tableName,
		Key:       idKey(id),
	})
	if err != nil {
		return false, fmt.Errorf("get item: %w", err)
	}
	return len(out.Item) > 0, nil
}

func (t *Table[T]) Insert(ctx context.Context, id int64, row T) error {
	item, err := attributevalue.MarshalMap(row)
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}
	item["id"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)}

	_, err = t.client.PutItem(ctx, &dyn.PutItemInput{
		TableName:           &t.tableName,
		Item:                item,
		ConditionExpression: strPtr("attribute_not_exists(id)"),
	})
	if err != nil {
		if conditionFailed(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}

func (t *Table[T]) Update(ctx context.Context, id int64, row T) error {
	item, err := attributevalue.MarshalMap(row)
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}
	item["id"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)}

	_, err = t.client.PutItem(ctx, &dyn.PutItemInput{
		TableName:           &t.tableName,
		Item:                item,
		ConditionExpression: strPtr("attribute_exists(id)"),
	})
	if err != nil {
		if conditionFailed(err) {
			return ErrNotFound
		}
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}

func (t *Table[T]) Delete(ctx context.Context, id int64) error {
	_, err := t.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName:           &t.tableName,
		Key:                 idKey(id),
		ConditionExpression: strPtr("attribute_exists(id)"),
	})
	if err != nil {
		if conditionFailed(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// AllocateID increments the counter item atomically and returns the new value.
func (t *Table[T]) AllocateID(ctx context.Context) (int64, error) {
	out, err := t.client.UpdateItem(ctx, &dyn.UpdateItemInput{
		TableName:        &t.tableName,
		Key:              idKey(counterID),
		UpdateExpression: strPtr("ADD last_id :inc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inc": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("allocate id: %w", err)
	}
	n, ok := out.Attributes["last_id"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("allocate id: counter attribute missing")
	}
	id, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("allocate id: parse counter: %w", err)
	}
	return id, nil
}

func strPtr(s string) *string { return &s }
