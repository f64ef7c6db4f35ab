package repository

import (
	"context"
	"sort"

	"assistec/internal/domain/entities"
	"assistec/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReceivablesTableName = "receivables"
	receivablesSaleIDIndex      = "sale_id-index"
)

type receivableItem struct {
	ID             string        `dynamodbav:"id"`
	SaleID         string        `dynamodbav:"sale_id"`
	Sequence       int           `dynamodbav:"sequence"`
	DueDate        string        `dynamodbav:"due_date"`
	OriginalAmount string        `dynamodbav:"original_amount"`
	FinalAmount    string        `dynamodbav:"final_amount"`
	PaidAmount     string        `dynamodbav:"paid_amount"`
	Status         string        `dynamodbav:"status"`
	CostCenter     ledgerRefItem `dynamodbav:"cost_center"`
	ChartAccount   ledgerRefItem `dynamodbav:"chart_account"`
	Method         string        `dynamodbav:"method"`
	CreatedAt      string        `dynamodbav:"created_at"`
}

// ReceivableDynamoRepository persists Receivable entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string), deterministic saleID:sequence
//   - GSI: sale_id-index (PK: sale_id)
//
// Upsert is an unconditional PutItem: re-running a crashed settlement rewrites
// the same keys instead of duplicating rows.

type ReceivableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReceivableRepository = (*ReceivableDynamoRepository)(nil)

func NewReceivableDynamoRepository(ddb *dynamodb.Client) *ReceivableDynamoRepository {
	return &ReceivableDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECEIVABLES_TABLE", defaultReceivablesTableName),
	}
}

func (r *ReceivableDynamoRepository) Upsert(ctx context.Context, rec entities.Receivable) (entities.Receivable, error) {
	av, err := attributevalue.MarshalMap(toReceivableItem(rec))
	if err != nil {
		return entities.Receivable{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Receivable{}, err
	}
	return rec, nil
}

func (r *ReceivableDynamoRepository) ListBySaleID(ctx context.Context, saleID string) ([]entities.Receivable, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(receivablesSaleIDIndex),
		KeyConditionExpression: aws.String("sale_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: saleID},
		},
	})
	if err != nil {
		return nil, err
	}

	recs := make([]entities.Receivable, 0, len(out.Items))
	for _, raw := range out.Items {
		var it receivableItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		recs = append(recs, fromReceivableItem(it))
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Sequence < recs[j].Sequence })
	return recs, nil
}

func toReceivableItem(rec entities.Receivable) receivableItem {
	return receivableItem{
		ID:             rec.ID,
		SaleID:         rec.SaleID,
		Sequence:       rec.Sequence,
		DueDate:        timeToString(rec.DueDate),
		OriginalAmount: decToString(rec.OriginalAmount),
		FinalAmount:    decToString(rec.FinalAmount),
		PaidAmount:     decToString(rec.PaidAmount),
		Status:         string(rec.Status),
		CostCenter:     toLedgerRefItem(rec.CostCenter),
		ChartAccount:   toLedgerRefItem(rec.ChartAccount),
		Method:         string(rec.Method),
		CreatedAt:      timeToString(rec.CreatedAt),
	}
}

func fromReceivableItem(it receivableItem) entities.Receivable {
	return entities.Receivable{
		ID:             it.ID,
		SaleID:         it.SaleID,
		Sequence:       it.Sequence,
		DueDate:        timeFromString(it.DueDate),
		OriginalAmount: decFromString(it.OriginalAmount),
		FinalAmount:    decFromString(it.FinalAmount),
		PaidAmount:     decFromString(it.PaidAmount),
		Status:         entities.ReceivableStatus(it.Status),
		CostCenter:     fromLedgerRefItem(it.CostCenter),
		ChartAccount:   fromLedgerRefItem(it.ChartAccount),
		Method:         entities.PaymentMethod(it.Method),
		CreatedAt:      timeFromString(it.CreatedAt),
	}
}
