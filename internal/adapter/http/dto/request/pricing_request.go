package request

import (
	"assistec/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PricingInputsRequest is a manual edit of the five editable pricing
// parameters plus the audit reason.
type PricingInputsRequest struct {
	IndirectPct float64 `json:"indirect_pct"`
	Method      string  `json:"method" binding:"required"`
	MethodPct   float64 `json:"method_pct"`
	TaxPct      float64 `json:"tax_pct"`
	Freight     float64 `json:"freight"`
	Reason      string  `json:"reason"`
}

func (r PricingInputsRequest) ToEntity() entities.PricingInputs {
	return entities.PricingInputs{
		IndirectPct: decimal.NewFromFloat(r.IndirectPct),
		Method:      entities.PricingMethod(r.Method),
		MethodPct:   decimal.NewFromFloat(r.MethodPct),
		TaxPct:      decimal.NewFromFloat(r.TaxPct),
		Freight:     decimal.NewFromFloat(r.Freight).Round(2),
	}
}
