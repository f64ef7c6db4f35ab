package response

import (
	"time"

	"assistec/internal/domain/entities"
)

type PricingInputsResponse struct {
	IndirectPct float64 `json:"indirect_pct"`
	Method      string  `json:"method"`
	MethodPct   float64 `json:"method_pct"`
	TaxPct      float64 `json:"tax_pct"`
	Freight     float64 `json:"freight"`
}

func fromPricingInputs(in entities.PricingInputs) PricingInputsResponse {
	return PricingInputsResponse{
		IndirectPct: in.IndirectPct.InexactFloat64(),
		Method:      string(in.Method),
		MethodPct:   in.MethodPct.InexactFloat64(),
		TaxPct:      in.TaxPct.InexactFloat64(),
		Freight:     in.Freight.InexactFloat64(),
	}
}

type PricingRecordResponse struct {
	ProductID       string                `json:"product_id"`
	Cost            float64               `json:"cost"`
	QuantityInStock float64               `json:"quantity_in_stock"`
	Inputs          PricingInputsResponse `json:"inputs"`
	BasePrice       float64               `json:"base_price"`
	FinalPrice      float64               `json:"final_price"`
	Profit          float64               `json:"profit"`
	EffectiveMargin float64               `json:"effective_margin"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

func FromPricingRecord(r entities.PricingRecord) PricingRecordResponse {
	return PricingRecordResponse{
		ProductID:       r.ProductID,
		Cost:            r.Cost.InexactFloat64(),
		QuantityInStock: r.QuantityInStock.InexactFloat64(),
		Inputs:          fromPricingInputs(r.Inputs),
		BasePrice:       r.BasePrice.InexactFloat64(),
		FinalPrice:      r.FinalPrice.InexactFloat64(),
		Profit:          r.Profit.InexactFloat64(),
		EffectiveMargin: r.EffectiveMargin.InexactFloat64(),
		UpdatedAt:       r.UpdatedAt,
	}
}

type PricingHistoryResponse struct {
	ID            string                `json:"id"`
	ProductID     string                `json:"product_id"`
	PreviousCost  float64               `json:"previous_cost"`
	NewCost       float64               `json:"new_cost"`
	PreviousTotal float64               `json:"previous_total"`
	NewTotal      float64               `json:"new_total"`
	IncreaseAbs   float64               `json:"increase_abs"`
	IncreasePct   float64               `json:"increase_pct"`
	Inputs        PricingInputsResponse `json:"inputs"`
	Reason        string                `json:"reason,omitempty"`
	Trigger       string                `json:"trigger"`
	CreatedAt     time.Time             `json:"created_at"`
}

func FromPricingHistory(hs []entities.PricingHistoryEntry) []PricingHistoryResponse {
	out := make([]PricingHistoryResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, PricingHistoryResponse{
			ID:            h.ID,
			ProductID:     h.ProductID,
			PreviousCost:  h.PreviousCost.InexactFloat64(),
			NewCost:       h.NewCost.InexactFloat64(),
			PreviousTotal: h.PreviousTotal.InexactFloat64(),
			NewTotal:      h.NewTotal.InexactFloat64(),
			IncreaseAbs:   h.IncreaseAbs.InexactFloat64(),
			IncreasePct:   h.IncreasePct.InexactFloat64(),
			Inputs:        fromPricingInputs(h.Inputs),
			Reason:        h.Reason,
			Trigger:       string(h.Trigger),
			CreatedAt:     h.CreatedAt,
		})
	}
	return out
}

// RecomputeResponse reports how many pricing records a full pass refreshed.
type RecomputeResponse struct {
	Updated int `json:"updated"`
}
