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
	defaultPricingTableName        = "pricing_records"
	defaultPricingHistoryTableName = "pricing_history"
	pricingHistoryProductIDIndex   = "product_id-index"
)

type pricingInputsItem struct {
	IndirectPct string `dynamodbav:"indirect_pct"`
	Method      string `dynamodbav:"method"`
	MethodPct   string `dynamodbav:"method_pct"`
	TaxPct      string `dynamodbav:"tax_pct"`
	Freight     string `dynamodbav:"freight"`
}

type pricingRecordItem struct {
	ProductID       string            `dynamodbav:"product_id"`
	Cost            string            `dynamodbav:"cost"`
	QuantityInStock string            `dynamodbav:"quantity_in_stock"`
	Inputs          pricingInputsItem `dynamodbav:"inputs"`
	BasePrice       string            `dynamodbav:"base_price"`
	FinalPrice      string            `dynamodbav:"final_price"`
	Profit          string            `dynamodbav:"profit"`
	EffectiveMargin string            `dynamodbav:"effective_margin"`
	UpdatedAt       string            `dynamodbav:"updated_at"`
}

type pricingHistoryItem struct {
	ID            string            `dynamodbav:"id"`
	ProductID     string            `dynamodbav:"product_id"`
	PreviousCost  string            `dynamodbav:"previous_cost"`
	NewCost       string            `dynamodbav:"new_cost"`
	PreviousTotal string            `dynamodbav:"previous_total"`
	NewTotal      string            `dynamodbav:"new_total"`
	IncreaseAbs   string            `dynamodbav:"increase_abs"`
	IncreasePct   string            `dynamodbav:"increase_pct"`
	Inputs        pricingInputsItem `dynamodbav:"inputs"`
	Reason        string            `dynamodbav:"reason,omitempty"`
	Trigger       string            `dynamodbav:"trigger"`
	CreatedAt     string            `dynamodbav:"created_at"`
}

// PricingDynamoRepository persists pricing records and their append-only
// increase history.
//
// Table requirements:
//   - pricing_records: PK product_id (string)
//   - pricing_history: PK id (string), GSI product_id-index (PK: product_id)

type PricingDynamoRepository struct {
	ddb        *dynamodb.Client
	recordsTbl string
	historyTbl string
}

var _ interfaces.IPricingRepository = (*PricingDynamoRepository)(nil)

func NewPricingDynamoRepository(ddb *dynamodb.Client) *PricingDynamoRepository {
	return &PricingDynamoRepository{
		ddb:        ddb,
		recordsTbl: getenvDefault("PRICING_TABLE", defaultPricingTableName),
		historyTbl: getenvDefault("PRICING_HISTORY_TABLE", defaultPricingHistoryTableName),
	}
}

func (r *PricingDynamoRepository) GetRecord(ctx context.Context, productID string) (entities.PricingRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.recordsTbl),
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: productID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PricingRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PricingRecord{}, nil
	}

	var it pricingRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PricingRecord{}, err
	}
	return fromPricingRecordItem(it), nil
}

func (r *PricingDynamoRepository) SaveRecord(ctx context.Context, rec entities.PricingRecord) (entities.PricingRecord, error) {
	av, err := attributevalue.MarshalMap(toPricingRecordItem(rec))
	if err != nil {
		return entities.PricingRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.recordsTbl),
		Item:      av,
	})
	if err != nil {
		return entities.PricingRecord{}, err
	}
	return rec, nil
}

func (r *PricingDynamoRepository) ListRecords(ctx context.Context) ([]entities.PricingRecord, error) {
	var recs []entities.PricingRecord
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.recordsTbl)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it pricingRecordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			recs = append(recs, fromPricingRecordItem(it))
		}
	}
	return recs, nil
}

func (r *PricingDynamoRepository) AppendHistory(ctx context.Context, e entities.PricingHistoryEntry) (entities.PricingHistoryEntry, error) {
	av, err := attributevalue.MarshalMap(toPricingHistoryItem(e))
	if err != nil {
		return entities.PricingHistoryEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.historyTbl),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PricingHistoryEntry{}, err
	}
	return e, nil
}

func (r *PricingDynamoRepository) ListRecentHistory(ctx context.Context, productID string, limit int) ([]entities.PricingHistoryEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.historyTbl),
		IndexName:              aws.String(pricingHistoryProductIDIndex),
		KeyConditionExpression: aws.String("product_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: productID},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.PricingHistoryEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pricingHistoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromPricingHistoryItem(it))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func toPricingInputsItem(in entities.PricingInputs) pricingInputsItem {
	return pricingInputsItem{
		IndirectPct: decToString(in.IndirectPct),
		Method:      string(in.Method),
		MethodPct:   decToString(in.MethodPct),
		TaxPct:      decToString(in.TaxPct),
		Freight:     decToString(in.Freight),
	}
}

func fromPricingInputsItem(it pricingInputsItem) entities.PricingInputs {
	return entities.PricingInputs{
		IndirectPct: decFromString(it.IndirectPct),
		Method:      entities.PricingMethod(it.Method),
		MethodPct:   decFromString(it.MethodPct),
		TaxPct:      decFromString(it.TaxPct),
		Freight:     decFromString(it.Freight),
	}
}

func toPricingRecordItem(rec entities.PricingRecord) pricingRecordItem {
	return pricingRecordItem{
		ProductID:       rec.ProductID,
		Cost:            decToString(rec.Cost),
		QuantityInStock: decToString(rec.QuantityInStock),
		Inputs:          toPricingInputsItem(rec.Inputs),
		BasePrice:       decToString(rec.BasePrice),
		FinalPrice:      decToString(rec.FinalPrice),
		Profit:          decToString(rec.Profit),
		EffectiveMargin: decToString(rec.EffectiveMargin),
		UpdatedAt:       timeToString(rec.UpdatedAt),
	}
}

func fromPricingRecordItem(it pricingRecordItem) entities.PricingRecord {
	return entities.PricingRecord{
		ProductID:       it.ProductID,
		Cost:            decFromString(it.Cost),
		QuantityInStock: decFromString(it.QuantityInStock),
		Inputs:          fromPricingInputsItem(it.Inputs),
		BasePrice:       decFromString(it.BasePrice),
		FinalPrice:      decFromString(it.FinalPrice),
		Profit:          decFromString(it.Profit),
		EffectiveMargin: decFromString(it.EffectiveMargin),
		UpdatedAt:       timeFromString(it.UpdatedAt),
	}
}

func toPricingHistoryItem(e entities.PricingHistoryEntry) pricingHistoryItem {
	return pricingHistoryItem{
		ID:            e.ID,
		ProductID:     e.ProductID,
		PreviousCost:  decToString(e.PreviousCost),
		NewCost:       decToString(e.NewCost),
		PreviousTotal: decToString(e.PreviousTotal),
		NewTotal:      decToString(e.NewTotal),
		IncreaseAbs:   decToString(e.IncreaseAbs),
		IncreasePct:   decToString(e.IncreasePct),
		Inputs:        toPricingInputsItem(e.Inputs),
		Reason:        e.Reason,
		Trigger:       string(e.Trigger),
		CreatedAt:     timeToString(e.CreatedAt),
	}
}

func fromPricingHistoryItem(it pricingHistoryItem) entities.PricingHistoryEntry {
	return entities.PricingHistoryEntry{
		ID:            it.ID,
		ProductID:     it.ProductID,
		PreviousCost:  decFromString(it.PreviousCost),
		NewCost:       decFromString(it.NewCost),
		PreviousTotal: decFromString(it.PreviousTotal),
		NewTotal:      decFromString(it.NewTotal),
		IncreaseAbs:   decFromString(it.IncreaseAbs),
		IncreasePct:   decFromString(it.IncreasePct),
		Inputs:        fromPricingInputsItem(it.Inputs),
		Reason:        it.Reason,
		Trigger:       entities.PriceChangeTrigger(it.Trigger),
		CreatedAt:     timeFromString(it.CreatedAt),
	}
}
