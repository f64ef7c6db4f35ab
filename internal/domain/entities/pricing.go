package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingMethod selects how the base price derives from cost.

type PricingMethod string

const (
	PricingMethodMargin PricingMethod = "margin"
	PricingMethodMarkup PricingMethod = "markup"
)

// PriceChangeTrigger tags what caused a history entry.
type PriceChangeTrigger string

const (
	TriggerCostUpdate PriceChangeTrigger = "cost_update"
	TriggerManualEdit PriceChangeTrigger = "manual_edit"
)

// PricingInputs are the five editable parameters of a pricing record.
type PricingInputs struct {
	IndirectPct decimal.Decimal `json:"indirect_pct"`
	Method      PricingMethod   `json:"method"`
	MethodPct   decimal.Decimal `json:"method_pct"`
	TaxPct      decimal.Decimal `json:"tax_pct"`
	Freight     decimal.Decimal `json:"freight"`
}

// PricingRecord holds a product's cost basis, editable inputs and every
// derived output. Derived fields are recomputed as a whole from the inputs;
// the record is never stored partially derived.
//
// Storage model (DynamoDB):
//   - PK: product_id
type PricingRecord struct {
	ProductID       string          `json:"product_id"`
	Cost            decimal.Decimal `json:"cost"`
	QuantityInStock decimal.Decimal `json:"quantity_in_stock"`

	Inputs PricingInputs `json:"inputs"`

	BasePrice       decimal.Decimal `json:"base_price"`
	FinalPrice      decimal.Decimal `json:"final_price"`
	Profit          decimal.Decimal `json:"profit"`
	EffectiveMargin decimal.Decimal `json:"effective_margin"`

	UpdatedAt time.Time `json:"updated_at"`
}

// PricingHistoryEntry is one immutable price-increase record. Created only
// when the new total exceeds the previous one, and only once per distinct
// (new cost, new total) pair.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (product_id-index): product_id
type PricingHistoryEntry struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`

	PreviousCost  decimal.Decimal `json:"previous_cost"`
	NewCost       decimal.Decimal `json:"new_cost"`
	PreviousTotal decimal.Decimal `json:"previous_total"`
	NewTotal      decimal.Decimal `json:"new_total"`
	IncreaseAbs   decimal.Decimal `json:"increase_abs"`
	IncreasePct   decimal.Decimal `json:"increase_pct"`

	Inputs  PricingInputs      `json:"inputs"`
	Reason  string             `json:"reason,omitempty"`
	Trigger PriceChangeTrigger `json:"trigger"`

	CreatedAt time.Time `json:"created_at"`
}
