package repository

import (
	"context"
	"errors"
	"strconv"

	"assistec/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSequencesTableName = "sequences"

// SequenceDynamoRepository hands out document numbers from atomic counter
// items, one per (prefix, year-month) key. The ADD update is atomic on the
// server, so concurrent creators can never draw the same value.
//
// Table requirements:
//   - PK: key (string)

type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SEQUENCES_TABLE", defaultSequencesTableName),
	}
}

func (r *SequenceDynamoRepository) Next(ctx context.Context, key string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	raw, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errMissingCounterValue
	}
	return strconv.ParseInt(raw.Value, 10, 64)
}

var errMissingCounterValue = errors.New("counter value missing from update response")
