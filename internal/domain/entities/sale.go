package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus tracks whether the sale has generated its receivables yet.

type SaleStatus string

const (
	SaleStatusPendingSettlement SaleStatus = "pending_settlement"
	SaleStatusSettled           SaleStatus = "settled"
)

// Sale is produced from an approved quote. Created once, mutated once on
// settlement.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
type Sale struct {
	ID       string `json:"id"`
	QuoteID  string `json:"quote_id"`
	ClientID string `json:"client_id"`

	GrossAmount decimal.Decimal `json:"gross_amount"`
	Discount    decimal.Decimal `json:"discount"`
	NetAmount   decimal.Decimal `json:"net_amount"`

	Terms  PaymentTerms    `json:"terms"`
	Nature OperationNature `json:"nature"`
	Status SaleStatus      `json:"status"`

	SettledBy string     `json:"settled_by,omitempty"`
	SettledAt *time.Time `json:"settled_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ReceivableStatus is "open" at generation time; collection flows own the rest.
type ReceivableStatus string

const ReceivableStatusOpen ReceivableStatus = "open"

// LedgerRef is a resolved accounting bucket reference (cost center or chart
// account). Zero value means "unresolved"; settlement carries it as-is.
type LedgerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Receivable is one posted installment of a settled sale. Its id is
// deterministic (saleID:sequence) so re-running a crashed settlement upserts
// instead of duplicating.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (sale_id-index): sale_id
type Receivable struct {
	ID       string `json:"id"`
	SaleID   string `json:"sale_id"`
	Sequence int    `json:"sequence"`

	DueDate        time.Time       `json:"due_date"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`

	Status       ReceivableStatus `json:"status"`
	CostCenter   LedgerRef        `json:"cost_center"`
	ChartAccount LedgerRef        `json:"chart_account"`
	Method       PaymentMethod    `json:"method"`

	CreatedAt time.Time `json:"created_at"`
}

// ReceivableID builds the deterministic receivable key for a sale installment.
func ReceivableID(saleID string, sequence int) string {
	return fmt.Sprintf("%s:%d", saleID, sequence)
}
