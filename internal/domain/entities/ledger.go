package entities

import "time"

// OperationNature selects the fixed chart-of-accounts code for a sale.

type OperationNature string

const (
	NatureGoodsSale OperationNature = "goods_sale"
	NatureService   OperationNature = "service"
)

// CostCenter is an accounting bucket auto-provisioned per client. It is looked
// up by code and repaired in place on every resolution (name/group refreshed
// from current client data), so it is not immutable.
//
// Storage model (DynamoDB):
//   - PK: code
type CostCenter struct {
	ID             string    `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	GroupCode      string    `json:"group_code"`
	AcceptsRevenue bool      `json:"accepts_revenue"`
	AcceptsExpense bool      `json:"accepts_expense"`
	Origins        []string  `json:"origins"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Ref converts to the reference carried by receivables.
func (c CostCenter) Ref() LedgerRef { return LedgerRef{ID: c.ID, Name: c.Name, Code: c.Code} }

// CostCenterGroup is the fixed parent bucket client cost centers hang from.
// Provisioned once under a fixed code/name; resolution re-creates it if the
// record goes missing.
//
// Storage model (DynamoDB):
//   - PK: code
type CostCenterGroup struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChartAccount is a chart-of-accounts entry. This core only reads them; it
// never creates one (missing entries resolve to an empty reference).
//
// Storage model (DynamoDB):
//   - PK: code
type ChartAccount struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Ref converts to the reference carried by receivables.
func (a ChartAccount) Ref() LedgerRef { return LedgerRef{ID: a.ID, Name: a.Name, Code: a.Code} }
