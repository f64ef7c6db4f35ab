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

const defaultTicketsTableName = "tickets"

type technicalReturnItem struct {
	Summary       string `dynamodbav:"summary"`
	PartsRemoved  bool   `dynamodbav:"parts_removed"`
	PartsLocation string `dynamodbav:"parts_location,omitempty"`
}

type financialPendingItem struct {
	Description string `dynamodbav:"description"`
	QuoteID     string `dynamodbav:"quote_id,omitempty"`
}

type ticketItem struct {
	ID              string                `dynamodbav:"id"`
	Number          string                `dynamodbav:"number"`
	ClientID        string                `dynamodbav:"client_id"`
	ClientName      string                `dynamodbav:"client_name"`
	Category        string                `dynamodbav:"category"`
	Urgent          bool                  `dynamodbav:"urgent"`
	Description     string                `dynamodbav:"description"`
	Status          string                `dynamodbav:"status"`
	TechnicalReturn *technicalReturnItem  `dynamodbav:"technical_return,omitempty"`
	Financial       *financialPendingItem `dynamodbav:"financial,omitempty"`
	History         []historyItem         `dynamodbav:"history"`
	ArchivedAt      string                `dynamodbav:"archived_at,omitempty"`
	CreatedAt       string                `dynamodbav:"created_at"`
	UpdatedAt       string                `dynamodbav:"updated_at"`
}

// TicketDynamoRepository persists ServiceTicket entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type TicketDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITicketRepository = (*TicketDynamoRepository)(nil)

func NewTicketDynamoRepository(ddb *dynamodb.Client) *TicketDynamoRepository {
	return &TicketDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TICKETS_TABLE", defaultTicketsTableName),
	}
}

func (r *TicketDynamoRepository) Create(ctx context.Context, t entities.ServiceTicket) (entities.ServiceTicket, error) {
	av, err := attributevalue.MarshalMap(toTicketItem(t))
	if err != nil {
		return entities.ServiceTicket{}, err
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
		return entities.ServiceTicket{}, err
	}
	return t, nil
}

func (r *TicketDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceTicket, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceTicket{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceTicket{}, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceTicket{}, err
	}
	return fromTicketItem(it), nil
}

// Save overwrites the full document. The state machine is the only writer, so
// last-write-wins is the accepted consistency model here.
func (r *TicketDynamoRepository) Save(ctx context.Context, t entities.ServiceTicket) (entities.ServiceTicket, error) {
	av, err := attributevalue.MarshalMap(toTicketItem(t))
	if err != nil {
		return entities.ServiceTicket{}, err
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
		return entities.ServiceTicket{}, err
	}
	return t, nil
}

func (r *TicketDynamoRepository) List(ctx context.Context, includeArchived bool) ([]entities.ServiceTicket, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if !includeArchived {
		in.FilterExpression = aws.String("attribute_not_exists(archived_at)")
	}

	var tickets []entities.ServiceTicket
	paginator := dynamodb.NewScanPaginator(r.ddb, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it ticketItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			tickets = append(tickets, fromTicketItem(it))
		}
	}
	return tickets, nil
}

func toTicketItem(t entities.ServiceTicket) ticketItem {
	it := ticketItem{
		ID:          t.ID,
		Number:      t.Number,
		ClientID:    t.ClientID,
		ClientName:  t.ClientName,
		Category:    string(t.Category),
		Urgent:      t.Urgent,
		Description: t.Description,
		Status:      string(t.Status),
		History:     toHistoryItems(t.History),
		ArchivedAt:  optTimeToString(t.ArchivedAt),
		CreatedAt:   timeToString(t.CreatedAt),
		UpdatedAt:   timeToString(t.UpdatedAt),
	}
	if t.TechnicalReturn != nil {
		it.TechnicalReturn = &technicalReturnItem{
			Summary:       t.TechnicalReturn.Summary,
			PartsRemoved:  t.TechnicalReturn.PartsRemoved,
			PartsLocation: t.TechnicalReturn.PartsLocation,
		}
	}
	if t.Financial != nil {
		it.Financial = &financialPendingItem{Description: t.Financial.Description, QuoteID: t.Financial.QuoteID}
	}
	return it
}

func fromTicketItem(it ticketItem) entities.ServiceTicket {
	t := entities.ServiceTicket{
		ID:          it.ID,
		Number:      it.Number,
		ClientID:    it.ClientID,
		ClientName:  it.ClientName,
		Category:    entities.TicketCategory(it.Category),
		Urgent:      it.Urgent,
		Description: it.Description,
		Status:      entities.TicketStatus(it.Status),
		History:     fromHistoryItems(it.History),
		ArchivedAt:  optTimeFromString(it.ArchivedAt),
		CreatedAt:   timeFromString(it.CreatedAt),
		UpdatedAt:   timeFromString(it.UpdatedAt),
	}
	if it.TechnicalReturn != nil {
		t.TechnicalReturn = &entities.TechnicalReturnPending{
			Summary:       it.TechnicalReturn.Summary,
			PartsRemoved:  it.TechnicalReturn.PartsRemoved,
			PartsLocation: it.TechnicalReturn.PartsLocation,
		}
	}
	if it.Financial != nil {
		t.Financial = &entities.FinancialPending{Description: it.Financial.Description, QuoteID: it.Financial.QuoteID}
	}
	return t
}
