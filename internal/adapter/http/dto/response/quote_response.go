package response

import (
	"time"

	"assistec/internal/domain/entities"
)

type QuoteItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type QuoteResponse struct {
	ID              string                 `json:"id"`
	Number          string                 `json:"number"`
	ClientID        string                 `json:"client_id"`
	TicketID        string                 `json:"ticket_id,omitempty"`
	Items           []QuoteItemResponse    `json:"items"`
	Total           float64                `json:"total"`
	Status          string                 `json:"status"`
	ValidUntil      *time.Time             `json:"valid_until,omitempty"`
	RejectionReason string                 `json:"rejection_reason,omitempty"`
	History         []HistoryEntryResponse `json:"history"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity.InexactFloat64(),
			UnitPrice:   it.UnitPrice.InexactFloat64(),
			Total:       it.Total.InexactFloat64(),
		})
	}
	return QuoteResponse{
		ID:              q.ID,
		Number:          q.Number,
		ClientID:        q.ClientID,
		TicketID:        q.TicketID,
		Items:           items,
		Total:           q.Total.InexactFloat64(),
		Status:          string(q.Status),
		ValidUntil:      q.ValidUntil,
		RejectionReason: q.RejectionReason,
		History:         fromHistory(q.History),
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

// ExpireSweepResponse reports how many sent quotes the sweep expired.
type ExpireSweepResponse struct {
	Expired int `json:"expired"`
}
