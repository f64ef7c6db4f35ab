package repository

import (
	"context"

	"assistec/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	ID            string   `dynamodbav:"id"`
	Name          string   `dynamodbav:"name"`
	DisplayPrefix string   `dynamodbav:"display_prefix,omitempty"`
	TaxID         string   `dynamodbav:"tax_id,omitempty"`
	Address       string   `dynamodbav:"address,omitempty"`
	Contacts      []string `dynamodbav:"contacts,omitempty"`
}

// ClientDynamoRepository is the Dynamo-backed client directory. Client CRUD
// belongs to the registration service; this read model lets the workflow run
// standalone.
//
// Table requirements:
//   - PK: id (string)

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientDirectory = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) GetClient(ctx context.Context, id string) (interfaces.ClientInfo, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return interfaces.ClientInfo{}, err
	}
	if len(out.Item) == 0 {
		return interfaces.ClientInfo{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return interfaces.ClientInfo{}, err
	}
	return interfaces.ClientInfo{
		ID:            it.ID,
		Name:          it.Name,
		DisplayPrefix: it.DisplayPrefix,
		TaxID:         it.TaxID,
		Address:       it.Address,
		Contacts:      it.Contacts,
	}, nil
}
