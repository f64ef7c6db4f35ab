package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a price quote (orçamento).

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// Terminal reports whether the status admits no further workflow transitions.
func (s QuoteStatus) Terminal() bool {
	return s == QuoteStatusApproved || s == QuoteStatusRejected || s == QuoteStatusExpired
}

// QuoteItem is a snapshot line item. Total is always Quantity × UnitPrice
// rounded to 2 decimals; it is recomputed on every mutation, never trusted
// from the caller.
type QuoteItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Quote is the priced proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (ticket_id-index): ticket_id
//
// Number format: QUO-YYMM#####.
//
// Invariant: Total equals the sum of item totals after any item mutation.
type Quote struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	ClientID string `json:"client_id"`
	TicketID string `json:"ticket_id,omitempty"`

	Items []QuoteItem     `json:"items"`
	Total decimal.Decimal `json:"total"`

	Status          QuoteStatus  `json:"status"`
	Terms           PaymentTerms `json:"terms"`
	ValidUntil      *time.Time   `json:"valid_until,omitempty"`
	RejectionReason string       `json:"rejection_reason,omitempty"`

	History   []HistoryEntry `json:"history"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Recalculate rounds every item total to 2 decimals and refreshes Total.
func (q *Quote) Recalculate() {
	sum := decimal.Zero
	for i := range q.Items {
		q.Items[i].Total = q.Items[i].Quantity.Mul(q.Items[i].UnitPrice).Round(2)
		sum = sum.Add(q.Items[i].Total)
	}
	q.Total = sum
}

// AppendHistory records one audit line on the quote.
func (q *Quote) AppendHistory(at time.Time, actor, action, detail string) {
	q.History = append(q.History, HistoryEntry{At: at, Actor: actor, Action: action, Detail: detail})
}
