package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// External collaborators consumed by the core. Reference-data CRUD lives in
// other services; the use cases only read through these.

// ClientInfo is the directory projection of a client.
type ClientInfo struct {
	ID            string
	Name          string
	DisplayPrefix string
	TaxID         string
	Address       string
	Contacts      []string
}

// ProductInfo is the catalog projection of a product.
type ProductInfo struct {
	ID           string
	Name         string
	Manufacturer string
	SalePrice    decimal.Decimal
}

// RemittanceLine is one stock remittance for a product.
type RemittanceLine struct {
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
}

type IClientDirectory interface {
	GetClient(ctx context.Context, id string) (ClientInfo, error)
}

type IProductCatalog interface {
	GetProduct(ctx context.Context, id string) (ProductInfo, error)
	ListProductIDs(ctx context.Context) ([]string, error)
}

type IStockFeed interface {
	ListRemittances(ctx context.Context, productID string) ([]RemittanceLine, error)
}

// IChargeGateway abstracts external charge providers (e.g. Mercado Pago).
// Settlement uses it to register boleto/pix charges for generated receivables;
// failures never block settlement.
type IChargeGateway interface {
	RegisterCharge(ctx context.Context, receivableID string, amount decimal.Decimal, method string, dueDate string) (providerChargeID string, err error)
}
