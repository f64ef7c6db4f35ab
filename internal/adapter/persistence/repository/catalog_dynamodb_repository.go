package repository

import (
	"context"

	"assistec/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProductsTableName    = "products"
	defaultRemittancesTableName = "stock_remittances"
	remittancesProductIDIndex   = "product_id-index"
)

type productItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Manufacturer string `dynamodbav:"manufacturer,omitempty"`
	SalePrice    string `dynamodbav:"sale_price"`
}

type remittanceItem struct {
	ID        string `dynamodbav:"id"`
	ProductID string `dynamodbav:"product_id"`
	UnitPrice string `dynamodbav:"unit_price"`
	Quantity  string `dynamodbav:"quantity"`
}

// CatalogDynamoRepository is the Dynamo-backed product catalog and stock feed.
// Product CRUD and remittance intake belong to the inventory service; pricing
// only reads through this projection.
//
// Table requirements:
//   - products: PK id (string)
//   - stock_remittances: PK id (string), GSI product_id-index on product_id

type CatalogDynamoRepository struct {
	ddb              *dynamodb.Client
	productsTable    string
	remittancesTable string
}

var (
	_ interfaces.IProductCatalog = (*CatalogDynamoRepository)(nil)
	_ interfaces.IStockFeed      = (*CatalogDynamoRepository)(nil)
)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:              ddb,
		productsTable:    getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
		remittancesTable: getenvDefault("REMITTANCES_TABLE", defaultRemittancesTableName),
	}
}

func (r *CatalogDynamoRepository) GetProduct(ctx context.Context, id string) (interfaces.ProductInfo, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.productsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return interfaces.ProductInfo{}, err
	}
	if len(out.Item) == 0 {
		return interfaces.ProductInfo{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return interfaces.ProductInfo{}, err
	}
	return interfaces.ProductInfo{
		ID:           it.ID,
		Name:         it.Name,
		Manufacturer: it.Manufacturer,
		SalePrice:    decFromString(it.SalePrice),
	}, nil
}

func (r *CatalogDynamoRepository) ListProductIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:            aws.String(r.productsTable),
		ProjectionExpression: aws.String("id"),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []productItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			ids = append(ids, it.ID)
		}
	}
	return ids, nil
}

func (r *CatalogDynamoRepository) ListRemittances(ctx context.Context, productID string) ([]interfaces.RemittanceLine, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.remittancesTable),
		IndexName:              aws.String(remittancesProductIDIndex),
		KeyConditionExpression: aws.String("product_id = :product_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":product_id": &types.AttributeValueMemberS{Value: productID},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []remittanceItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	lines := make([]interfaces.RemittanceLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, interfaces.RemittanceLine{
			UnitPrice: decFromString(it.UnitPrice),
			Quantity:  decFromString(it.Quantity),
		})
	}
	return lines, nil
}
