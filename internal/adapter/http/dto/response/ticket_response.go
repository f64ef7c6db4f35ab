package response

import (
	"time"

	"assistec/internal/domain/entities"
)

type HistoryEntryResponse struct {
	At     time.Time `json:"at"`
	Actor  string    `json:"actor"`
	Action string    `json:"action"`
	Detail string    `json:"detail,omitempty"`
}

func fromHistory(hs []entities.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, HistoryEntryResponse{At: h.At, Actor: h.Actor, Action: h.Action, Detail: h.Detail})
	}
	return out
}

type TechnicalReturnResponse struct {
	Summary       string `json:"summary"`
	PartsRemoved  bool   `json:"parts_removed"`
	PartsLocation string `json:"parts_location,omitempty"`
}

type FinancialPendingResponse struct {
	Description string `json:"description"`
	QuoteID     string `json:"quote_id,omitempty"`
}

type TicketResponse struct {
	ID              string                    `json:"id"`
	Number          string                    `json:"number"`
	ClientID        string                    `json:"client_id"`
	ClientName      string                    `json:"client_name"`
	Category        string                    `json:"category"`
	Urgent          bool                      `json:"urgent"`
	Description     string                    `json:"description"`
	Status          string                    `json:"status"`
	TechnicalReturn *TechnicalReturnResponse  `json:"technical_return,omitempty"`
	Financial       *FinancialPendingResponse `json:"financial,omitempty"`
	History         []HistoryEntryResponse    `json:"history"`
	ArchivedAt      *time.Time                `json:"archived_at,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

func FromTicket(t entities.ServiceTicket) TicketResponse {
	resp := TicketResponse{
		ID:          t.ID,
		Number:      t.Number,
		ClientID:    t.ClientID,
		ClientName:  t.ClientName,
		Category:    string(t.Category),
		Urgent:      t.Urgent,
		Description: t.Description,
		Status:      string(t.Status),
		History:     fromHistory(t.History),
		ArchivedAt:  t.ArchivedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.TechnicalReturn != nil {
		resp.TechnicalReturn = &TechnicalReturnResponse{
			Summary:       t.TechnicalReturn.Summary,
			PartsRemoved:  t.TechnicalReturn.PartsRemoved,
			PartsLocation: t.TechnicalReturn.PartsLocation,
		}
	}
	if t.Financial != nil {
		resp.Financial = &FinancialPendingResponse{Description: t.Financial.Description, QuoteID: t.Financial.QuoteID}
	}
	return resp
}

func FromTickets(ts []entities.ServiceTicket) []TicketResponse {
	out := make([]TicketResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTicket(t))
	}
	return out
}
