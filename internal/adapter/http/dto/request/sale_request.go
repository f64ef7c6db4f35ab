package request

import (
	"assistec/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ConfirmSaleRequest converts an approved quote into a sale.
type ConfirmSaleRequest struct {
	QuoteID  string  `json:"quote_id" binding:"required"`
	Discount float64 `json:"discount"`
	Nature   string  `json:"nature"`
	Actor    string  `json:"actor"`
}

func (r ConfirmSaleRequest) ResolveActor() string { return resolveActor(r.Actor) }

func (r ConfirmSaleRequest) ResolveDiscount() decimal.Decimal {
	return decimal.NewFromFloat(r.Discount).Round(2)
}

func (r ConfirmSaleRequest) ResolveNature() entities.OperationNature {
	if r.Nature == string(entities.NatureGoodsSale) {
		return entities.NatureGoodsSale
	}
	return entities.NatureService
}
