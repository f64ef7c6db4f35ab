package repository

import (
	"context"

	"assistec/internal/domain/entities"
	"assistec/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSalesTableName = "sales"
	salesQuoteIDIndex     = "quote_id-index"
)

type saleItem struct {
	ID          string    `dynamodbav:"id"`
	QuoteID     string    `dynamodbav:"quote_id"`
	ClientID    string    `dynamodbav:"client_id"`
	GrossAmount string    `dynamodbav:"gross_amount"`
	Discount    string    `dynamodbav:"discount"`
	NetAmount   string    `dynamodbav:"net_amount"`
	Terms       termsItem `dynamodbav:"terms"`
	Nature      string    `dynamodbav:"nature"`
	Status      string    `dynamodbav:"status"`
	SettledBy   string    `dynamodbav:"settled_by,omitempty"`
	SettledAt   string    `dynamodbav:"settled_at,omitempty"`
	CreatedAt   string    `dynamodbav:"created_at"`
}

// SaleDynamoRepository persists Sale entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id), backs the one-sale-per-quote lookup

type SaleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb *dynamodb.Client) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SALES_TABLE", defaultSalesTableName),
	}
}

func (r *SaleDynamoRepository) Create(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	av, err := attributevalue.MarshalMap(toSaleItem(s))
	if err != nil {
		return entities.Sale{}, err
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
		return entities.Sale{}, err
	}
	return s, nil
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Item) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Sale, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(salesQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Items) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) Save(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	av, err := attributevalue.MarshalMap(toSaleItem(s))
	if err != nil {
		return entities.Sale{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Sale{}, err
	}
	return s, nil
}

func toSaleItem(s entities.Sale) saleItem {
	return saleItem{
		ID:          s.ID,
		QuoteID:     s.QuoteID,
		ClientID:    s.ClientID,
		GrossAmount: decToString(s.GrossAmount),
		Discount:    decToString(s.Discount),
		NetAmount:   decToString(s.NetAmount),
		Terms:       toTermsItem(s.Terms),
		Nature:      string(s.Nature),
		Status:      string(s.Status),
		SettledBy:   s.SettledBy,
		SettledAt:   optTimeToString(s.SettledAt),
		CreatedAt:   timeToString(s.CreatedAt),
	}
}

func fromSaleItem(it saleItem) entities.Sale {
	return entities.Sale{
		ID:          it.ID,
		QuoteID:     it.QuoteID,
		ClientID:    it.ClientID,
		GrossAmount: decFromString(it.GrossAmount),
		Discount:    decFromString(it.Discount),
		NetAmount:   decFromString(it.NetAmount),
		Terms:       fromTermsItem(it.Terms),
		Nature:      entities.OperationNature(it.Nature),
		Status:      entities.SaleStatus(it.Status),
		SettledBy:   it.SettledBy,
		SettledAt:   optTimeFromString(it.SettledAt),
		CreatedAt:   timeFromString(it.CreatedAt),
	}
}
