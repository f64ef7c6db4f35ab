package request

import (
	"errors"
	"time"

	"assistec/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidTermsPayload = errors.New("invalid payment terms payload")

// QuoteItemRequest is one line item. Quantity and unit price arrive as plain
// numbers and are snapped to 2 decimals on conversion.
type QuoteItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
}

func (r QuoteItemRequest) ToEntity() entities.QuoteItem {
	return entities.QuoteItem{
		Description: r.Description,
		Quantity:    decimal.NewFromFloat(r.Quantity),
		UnitPrice:   decimal.NewFromFloat(r.UnitPrice).Round(2),
	}
}

type LumpSumTermsRequest struct {
	DueDate *time.Time `json:"due_date"`
	Method  string     `json:"method"`
}

type InstallmentTermsRequest struct {
	DownPayment       float64 `json:"down_payment"`
	DownPaymentMethod string  `json:"down_payment_method"`
	DownPaymentDueDay int     `json:"down_payment_due_day"`
	Count             int     `json:"count"`
	Method            string  `json:"method"`
	DueDay            int     `json:"due_day"`
}

// PaymentTermsRequest mirrors the tagged union: kind selects which sub-object
// must be present.
type PaymentTermsRequest struct {
	Kind        string                   `json:"kind" binding:"required"`
	LumpSum     *LumpSumTermsRequest     `json:"lump_sum"`
	Installment *InstallmentTermsRequest `json:"installment"`
}

func (r PaymentTermsRequest) ToEntity() (entities.PaymentTerms, error) {
	t := entities.PaymentTerms{Kind: entities.PaymentTermsKind(r.Kind)}
	if r.LumpSum != nil {
		t.LumpSum = &entities.LumpSumTerms{DueDate: r.LumpSum.DueDate, Method: r.LumpSum.Method}
	}
	if r.Installment != nil {
		t.Installment = &entities.InstallmentTerms{
			DownPayment:       decimal.NewFromFloat(r.Installment.DownPayment).Round(2),
			DownPaymentMethod: r.Installment.DownPaymentMethod,
			DownPaymentDueDay: r.Installment.DownPaymentDueDay,
			Count:             r.Installment.Count,
			Method:            r.Installment.Method,
			DueDay:            r.Installment.DueDay,
		}
	}
	if !t.Valid() {
		return entities.PaymentTerms{}, ErrInvalidTermsPayload
	}
	return t, nil
}

// CreateQuoteRequest drafts a quote, optionally linked to a ticket.
type CreateQuoteRequest struct {
	ClientID   string              `json:"client_id" binding:"required"`
	TicketID   string              `json:"ticket_id"`
	Items      []QuoteItemRequest  `json:"items"`
	Terms      PaymentTermsRequest `json:"terms" binding:"required"`
	ValidUntil *time.Time          `json:"valid_until"`
	Actor      string              `json:"actor"`
}

func (r CreateQuoteRequest) ResolveActor() string { return resolveActor(r.Actor) }

func (r CreateQuoteRequest) ResolveItems() []entities.QuoteItem {
	items := make([]entities.QuoteItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, it.ToEntity())
	}
	return items
}

// RejectQuoteRequest carries the mandatory rejection reason.
type RejectQuoteRequest struct {
	Actor  string `json:"actor"`
	Reason string `json:"reason"`
}

func (r RejectQuoteRequest) ResolveActor() string { return resolveActor(r.Actor) }
