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
	defaultQuotesTableName = "quotes"
	quotesStatusIndex      = "status-index"
)

type quoteLineItem struct {
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Total       string `dynamodbav:"total"`
}

type quoteItem struct {
	ID              string          `dynamodbav:"id"`
	Number          string          `dynamodbav:"number"`
	ClientID        string          `dynamodbav:"client_id"`
	TicketID        string          `dynamodbav:"ticket_id,omitempty"`
	Items           []quoteLineItem `dynamodbav:"items"`
	Total           string          `dynamodbav:"total"`
	Status          string          `dynamodbav:"status"`
	Terms           termsItem       `dynamodbav:"terms"`
	ValidUntil      string          `dynamodbav:"valid_until,omitempty"`
	RejectionReason string          `dynamodbav:"rejection_reason,omitempty"`
	History         []historyItem   `dynamodbav:"history"`
	CreatedAt       string          `dynamodbav:"created_at"`
	UpdatedAt       string          `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status), drives the expiration sweep

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) ListByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	items := make([]quoteLineItem, 0, len(q.Items))
	for _, li := range q.Items {
		items = append(items, quoteLineItem{
			Description: li.Description,
			Quantity:    decToString(li.Quantity),
			UnitPrice:   decToString(li.UnitPrice),
			Total:       decToString(li.Total),
		})
	}
	return quoteItem{
		ID:              q.ID,
		Number:          q.Number,
		ClientID:        q.ClientID,
		TicketID:        q.TicketID,
		Items:           items,
		Total:           decToString(q.Total),
		Status:          string(q.Status),
		Terms:           toTermsItem(q.Terms),
		ValidUntil:      optTimeToString(q.ValidUntil),
		RejectionReason: q.RejectionReason,
		History:         toHistoryItems(q.History),
		CreatedAt:       timeToString(q.CreatedAt),
		UpdatedAt:       timeToString(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.QuoteItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.QuoteItem{
			Description: li.Description,
			Quantity:    decFromString(li.Quantity),
			UnitPrice:   decFromString(li.UnitPrice),
			Total:       decFromString(li.Total),
		})
	}
	return entities.Quote{
		ID:              it.ID,
		Number:          it.Number,
		ClientID:        it.ClientID,
		TicketID:        it.TicketID,
		Items:           items,
		Total:           decFromString(it.Total),
		Status:          entities.QuoteStatus(it.Status),
		Terms:           fromTermsItem(it.Terms),
		ValidUntil:      optTimeFromString(it.ValidUntil),
		RejectionReason: it.RejectionReason,
		History:         fromHistoryItems(it.History),
		CreatedAt:       timeFromString(it.CreatedAt),
		UpdatedAt:       timeFromString(it.UpdatedAt),
	}
}
