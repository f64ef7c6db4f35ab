package entities

import "time"

// TicketStatus represents the lifecycle of a service ticket (ordem de serviço).
//
// Domain notes:
//   - Transitions are validated against a static table in the ticket use case;
//     the quote workflow drives the quote_* statuses.
//   - completed/cancelled are terminal; archival is orthogonal and never
//     touches the status.

type TicketStatus string

const (
	TicketStatusOpen             TicketStatus = "open"
	TicketStatusInProgress       TicketStatus = "in_progress"
	TicketStatusCompleted        TicketStatus = "completed"
	TicketStatusCancelled        TicketStatus = "cancelled"
	TicketStatusPendingTechnical TicketStatus = "pending_technical"
	TicketStatusPendingFinancial TicketStatus = "pending_financial"
	TicketStatusAwaitingReturn   TicketStatus = "awaiting_return"
	TicketStatusQuoteInDraft     TicketStatus = "quote_in_draft"
	TicketStatusQuoteSent        TicketStatus = "quote_sent"
	TicketStatusQuoteApproved    TicketStatus = "quote_approved"
	TicketStatusQuoteRejected    TicketStatus = "quote_rejected"
)

// TicketCategory distinguishes field-technical requests from commercial ones.
type TicketCategory string

const (
	TicketCategoryTechnical  TicketCategory = "technical"
	TicketCategoryCommercial TicketCategory = "commercial"
)

// HistoryEntry is one immutable line in a ticket or quote audit log.
type HistoryEntry struct {
	At     time.Time `json:"at"`
	Actor  string    `json:"actor"`
	Action string    `json:"action"`
	Detail string    `json:"detail,omitempty"`
}

// TechnicalReturnPending is the structured note written onto a ticket when an
// approved quote re-routes it back to field execution. PartsRemoved/PartsLocation
// are carried forward from the pending record that originated the quote.
type TechnicalReturnPending struct {
	Summary       string `json:"summary"`
	PartsRemoved  bool   `json:"parts_removed"`
	PartsLocation string `json:"parts_location,omitempty"`
}

// FinancialPending captures a billing blocker raised while the ticket is open.
type FinancialPending struct {
	Description string `json:"description"`
	QuoteID     string `json:"quote_id,omitempty"`
}

// ServiceTicket is the field-service request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (number-index): number
//
// Number format: OS-YYMM#####, monotonic per calendar month.
type ServiceTicket struct {
	ID          string         `json:"id"`
	Number      string         `json:"number"`
	ClientID    string         `json:"client_id"`
	ClientName  string         `json:"client_name"`
	Category    TicketCategory `json:"category"`
	Urgent      bool           `json:"urgent"`
	Description string         `json:"description"`
	Status      TicketStatus   `json:"status"`

	TechnicalReturn *TechnicalReturnPending `json:"technical_return,omitempty"`
	Financial       *FinancialPending       `json:"financial,omitempty"`

	History    []HistoryEntry `json:"history"`
	ArchivedAt *time.Time     `json:"archived_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Archived reports whether the ticket is hidden from active views.
func (t ServiceTicket) Archived() bool { return t.ArchivedAt != nil }

// AppendHistory records one audit line. History is append-only.
func (t *ServiceTicket) AppendHistory(at time.Time, actor, action, detail string) {
	t.History = append(t.History, HistoryEntry{At: at, Actor: actor, Action: action, Detail: detail})
}
