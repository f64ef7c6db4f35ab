package response

import (
	"time"

	"assistec/internal/domain/entities"
)

type SaleResponse struct {
	ID          string     `json:"id"`
	QuoteID     string     `json:"quote_id"`
	ClientID    string     `json:"client_id"`
	GrossAmount float64    `json:"gross_amount"`
	Discount    float64    `json:"discount"`
	NetAmount   float64    `json:"net_amount"`
	Nature      string     `json:"nature"`
	Status      string     `json:"status"`
	SettledBy   string     `json:"settled_by,omitempty"`
	SettledAt   *time.Time `json:"settled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromSale(s entities.Sale) SaleResponse {
	return SaleResponse{
		ID:          s.ID,
		QuoteID:     s.QuoteID,
		ClientID:    s.ClientID,
		GrossAmount: s.GrossAmount.InexactFloat64(),
		Discount:    s.Discount.InexactFloat64(),
		NetAmount:   s.NetAmount.InexactFloat64(),
		Nature:      string(s.Nature),
		Status:      string(s.Status),
		SettledBy:   s.SettledBy,
		SettledAt:   s.SettledAt,
		CreatedAt:   s.CreatedAt,
	}
}

type LedgerRefResponse struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Code string `json:"code,omitempty"`
}

type ReceivableResponse struct {
	ID             string            `json:"id"`
	SaleID         string            `json:"sale_id"`
	Sequence       int               `json:"sequence"`
	DueDate        string            `json:"due_date"`
	OriginalAmount float64           `json:"original_amount"`
	FinalAmount    float64           `json:"final_amount"`
	PaidAmount     float64           `json:"paid_amount"`
	Status         string            `json:"status"`
	CostCenter     LedgerRefResponse `json:"cost_center"`
	ChartAccount   LedgerRefResponse `json:"chart_account"`
	Method         string            `json:"method"`
}

func FromReceivable(r entities.Receivable) ReceivableResponse {
	return ReceivableResponse{
		ID:             r.ID,
		SaleID:         r.SaleID,
		Sequence:       r.Sequence,
		DueDate:        r.DueDate.Format(time.DateOnly),
		OriginalAmount: r.OriginalAmount.InexactFloat64(),
		FinalAmount:    r.FinalAmount.InexactFloat64(),
		PaidAmount:     r.PaidAmount.InexactFloat64(),
		Status:         string(r.Status),
		CostCenter:     LedgerRefResponse{ID: r.CostCenter.ID, Name: r.CostCenter.Name, Code: r.CostCenter.Code},
		ChartAccount:   LedgerRefResponse{ID: r.ChartAccount.ID, Name: r.ChartAccount.Name, Code: r.ChartAccount.Code},
		Method:         string(r.Method),
	}
}

func FromReceivables(rs []entities.Receivable) []ReceivableResponse {
	out := make([]ReceivableResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReceivable(r))
	}
	return out
}

// SettlementResponse bundles the settled sale with its generated receivables.
type SettlementResponse struct {
	Sale        SaleResponse         `json:"sale"`
	Receivables []ReceivableResponse `json:"receivables"`
}
