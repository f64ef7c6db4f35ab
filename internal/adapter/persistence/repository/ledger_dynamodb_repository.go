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
	defaultCostCentersTableName      = "cost_centers"
	defaultCostCenterGroupsTableName = "cost_center_groups"
	defaultChartAccountsTableName    = "chart_accounts"
)

type costCenterItem struct {
	Code           string   `dynamodbav:"code"`
	ID             string   `dynamodbav:"id"`
	Name           string   `dynamodbav:"name"`
	GroupCode      string   `dynamodbav:"group_code"`
	AcceptsRevenue bool     `dynamodbav:"accepts_revenue"`
	AcceptsExpense bool     `dynamodbav:"accepts_expense"`
	Origins        []string `dynamodbav:"origins"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

type costCenterGroupItem struct {
	Code      string `dynamodbav:"code"`
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type chartAccountItem struct {
	Code string `dynamodbav:"code"`
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

// LedgerDynamoRepository persists accounting buckets in DynamoDB.
//
// Table requirements:
//   - cost_centers: PK code (string)
//   - cost_center_groups: PK code (string)
//   - chart_accounts: PK code (string)

type LedgerDynamoRepository struct {
	ddb             *dynamodb.Client
	costCentersTbl  string
	groupsTbl       string
	chartAccountTbl string
}

var _ interfaces.ILedgerRepository = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb *dynamodb.Client) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{
		ddb:             ddb,
		costCentersTbl:  getenvDefault("COST_CENTERS_TABLE", defaultCostCentersTableName),
		groupsTbl:       getenvDefault("COST_CENTER_GROUPS_TABLE", defaultCostCenterGroupsTableName),
		chartAccountTbl: getenvDefault("CHART_ACCOUNTS_TABLE", defaultChartAccountsTableName),
	}
}

func (r *LedgerDynamoRepository) GetCostCenterByCode(ctx context.Context, code string) (entities.CostCenter, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.costCentersTbl),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostCenter{}, err
	}
	if len(out.Item) == 0 {
		return entities.CostCenter{}, nil
	}

	var it costCenterItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CostCenter{}, err
	}
	return fromCostCenterItem(it), nil
}

// PutCostCenter is an upsert: resolution both creates and repairs.
func (r *LedgerDynamoRepository) PutCostCenter(ctx context.Context, c entities.CostCenter) (entities.CostCenter, error) {
	av, err := attributevalue.MarshalMap(toCostCenterItem(c))
	if err != nil {
		return entities.CostCenter{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.costCentersTbl),
		Item:      av,
	})
	if err != nil {
		return entities.CostCenter{}, err
	}
	return c, nil
}

func (r *LedgerDynamoRepository) GetCostCenterGroupByCode(ctx context.Context, code string) (entities.CostCenterGroup, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.groupsTbl),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostCenterGroup{}, err
	}
	if len(out.Item) == 0 {
		return entities.CostCenterGroup{}, nil
	}

	var it costCenterGroupItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CostCenterGroup{}, err
	}
	return entities.CostCenterGroup{
		ID:        it.ID,
		Code:      it.Code,
		Name:      it.Name,
		CreatedAt: timeFromString(it.CreatedAt),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}, nil
}

func (r *LedgerDynamoRepository) PutCostCenterGroup(ctx context.Context, g entities.CostCenterGroup) (entities.CostCenterGroup, error) {
	av, err := attributevalue.MarshalMap(costCenterGroupItem{
		Code:      g.Code,
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: timeToString(g.CreatedAt),
		UpdatedAt: timeToString(g.UpdatedAt),
	})
	if err != nil {
		return entities.CostCenterGroup{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.groupsTbl),
		Item:      av,
	})
	if err != nil {
		return entities.CostCenterGroup{}, err
	}
	return g, nil
}

func (r *LedgerDynamoRepository) GetChartAccountByCode(ctx context.Context, code string) (entities.ChartAccount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.chartAccountTbl),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ChartAccount{}, err
	}
	if len(out.Item) == 0 {
		return entities.ChartAccount{}, nil
	}

	var it chartAccountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ChartAccount{}, err
	}
	return entities.ChartAccount{ID: it.ID, Code: it.Code, Name: it.Name}, nil
}

func (r *LedgerDynamoRepository) FindChartAccountByNamePrefix(ctx context.Context, prefix string) (entities.ChartAccount, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.chartAccountTbl),
		FilterExpression: aws.String("begins_with(#name, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: prefix},
		},
	})
	if err != nil {
		return entities.ChartAccount{}, err
	}
	if len(out.Items) == 0 {
		return entities.ChartAccount{}, nil
	}

	var it chartAccountItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ChartAccount{}, err
	}
	return entities.ChartAccount{ID: it.ID, Code: it.Code, Name: it.Name}, nil
}

func toCostCenterItem(c entities.CostCenter) costCenterItem {
	return costCenterItem{
		Code:           c.Code,
		ID:             c.ID,
		Name:           c.Name,
		GroupCode:      c.GroupCode,
		AcceptsRevenue: c.AcceptsRevenue,
		AcceptsExpense: c.AcceptsExpense,
		Origins:        c.Origins,
		CreatedAt:      timeToString(c.CreatedAt),
		UpdatedAt:      timeToString(c.UpdatedAt),
	}
}

func fromCostCenterItem(it costCenterItem) entities.CostCenter {
	return entities.CostCenter{
		Code:           it.Code,
		ID:             it.ID,
		Name:           it.Name,
		GroupCode:      it.GroupCode,
		AcceptsRevenue: it.AcceptsRevenue,
		AcceptsExpense: it.AcceptsExpense,
		Origins:        it.Origins,
		CreatedAt:      timeFromString(it.CreatedAt),
		UpdatedAt:      timeFromString(it.UpdatedAt),
	}
}
