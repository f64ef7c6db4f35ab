package usecase

import (
	"context"
	"errors"
	"strings"

	"assistec/internal/domain/entities"
	"assistec/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrInvalidTicketID     = errors.New("invalid ticket id")
	ErrInvalidClient       = errors.New("invalid client")
	ErrClientNotFound      = errors.New("client not found")
	ErrMissingDescription  = errors.New("missing description")
	ErrInvalidCategory     = errors.New("invalid ticket category")
	ErrInvalidTransition   = errors.New("invalid ticket transition")
	ErrTicketArchived      = errors.New("ticket is archived")
	ErrTicketNotArchived   = errors.New("ticket is not archived")
	ErrTicketAlreadyClosed = errors.New("ticket already closed")
)

const ticketNumberPrefix = "OS"

// ticketTransitions is the static edge list of the ticket state machine.
// The source system accepted any status write; here every transition,
// including the ones driven by the quote workflow, must be listed.
//
// completed → in_progress is deliberate: field returns re-open work orders.
// cancelled is strictly terminal.
var ticketTransitions = map[entities.TicketStatus][]entities.TicketStatus{
	entities.TicketStatusOpen: {
		entities.TicketStatusInProgress, entities.TicketStatusCancelled,
		entities.TicketStatusPendingTechnical, entities.TicketStatusPendingFinancial,
		entities.TicketStatusQuoteInDraft,
	},
	entities.TicketStatusInProgress: {
		entities.TicketStatusCompleted, entities.TicketStatusCancelled,
		entities.TicketStatusPendingTechnical, entities.TicketStatusPendingFinancial,
		entities.TicketStatusAwaitingReturn, entities.TicketStatusQuoteInDraft,
	},
	entities.TicketStatusPendingTechnical: {
		entities.TicketStatusInProgress, entities.TicketStatusCancelled,
		entities.TicketStatusQuoteInDraft,
	},
	entities.TicketStatusPendingFinancial: {
		entities.TicketStatusInProgress, entities.TicketStatusCancelled,
		entities.TicketStatusQuoteInDraft,
	},
	entities.TicketStatusQuoteInDraft: {
		entities.TicketStatusQuoteSent, entities.TicketStatusInProgress,
		entities.TicketStatusCancelled,
	},
	entities.TicketStatusQuoteSent: {
		entities.TicketStatusQuoteApproved, entities.TicketStatusQuoteRejected,
		entities.TicketStatusAwaitingReturn, entities.TicketStatusCancelled,
	},
	entities.TicketStatusQuoteApproved: {
		entities.TicketStatusInProgress, entities.TicketStatusCompleted,
		entities.TicketStatusCancelled,
	},
	entities.TicketStatusQuoteRejected: {
		entities.TicketStatusInProgress, entities.TicketStatusCompleted,
		entities.TicketStatusQuoteInDraft, entities.TicketStatusCancelled,
	},
	entities.TicketStatusAwaitingReturn: {
		entities.TicketStatusInProgress, entities.TicketStatusCompleted,
		entities.TicketStatusCancelled,
	},
	entities.TicketStatusCompleted: {
		entities.TicketStatusInProgress,
	},
	entities.TicketStatusCancelled: {},
}

func transitionAllowed(from, to entities.TicketStatus) bool {
	for _, s := range ticketTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CreateTicketInput carries everything needed to open a service ticket.
type CreateTicketInput struct {
	ClientID    string
	Category    entities.TicketCategory
	Urgent      bool
	Description string
	Actor       string
}

// TransitionInput is one state-machine step. TechnicalReturn/Financial, when
// set, replace the ticket's structured pending sub-records alongside the
// status change (the quote workflow uses this to re-route tickets).
type TransitionInput struct {
	TicketID        string
	To              entities.TicketStatus
	Actor           string
	Note            string
	TechnicalReturn *entities.TechnicalReturnPending
	Financial       *entities.FinancialPending
}

// ITicketUseCase exposes the ticket state machine.

type ITicketUseCase interface {
	Create(ctx context.Context, in CreateTicketInput) (entities.ServiceTicket, error)
	GetByID(ctx context.Context, id string) (entities.ServiceTicket, error)
	List(ctx context.Context, includeArchived bool) ([]entities.ServiceTicket, error)
	Transition(ctx context.Context, in TransitionInput) (entities.ServiceTicket, error)
	Archive(ctx context.Context, id, actor string) (entities.ServiceTicket, error)
	Unarchive(ctx context.Context, id, actor string) (entities.ServiceTicket, error)
}

type TicketUseCase struct {
	repo    interfaces.ITicketRepository
	seq     interfaces.ISequenceRepository
	clients interfaces.IClientDirectory
	clock   interfaces.Clock
}

var _ ITicketUseCase = (*TicketUseCase)(nil)

func NewTicketUseCase(repo interfaces.ITicketRepository, seq interfaces.ISequenceRepository, clients interfaces.IClientDirectory, clock interfaces.Clock) *TicketUseCase {
	return &TicketUseCase{repo: repo, seq: seq, clients: clients, clock: clock}
}

func (u *TicketUseCase) Create(ctx context.Context, in CreateTicketInput) (entities.ServiceTicket, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	if in.ClientID == "" {
		return entities.ServiceTicket{}, ErrInvalidClient
	}
	if strings.TrimSpace(in.Description) == "" {
		return entities.ServiceTicket{}, ErrMissingDescription
	}
	switch in.Category {
	case entities.TicketCategoryTechnical, entities.TicketCategoryCommercial:
	default:
		return entities.ServiceTicket{}, ErrInvalidCategory
	}

	client, err := u.clients.GetClient(ctx, in.ClientID)
	if err != nil {
		return entities.ServiceTicket{}, err
	}
	if client.ID == "" {
		return entities.ServiceTicket{}, ErrClientNotFound
	}

	now := u.clock.Now()
	number, err := nextDocumentNumber(ctx, u.seq, ticketNumberPrefix, now)
	if err != nil {
		return entities.ServiceTicket{}, err
	}

	t := entities.ServiceTicket{
		ID:          uuid.NewString(),
		Number:      number,
		ClientID:    client.ID,
		ClientName:  client.Name,
		Category:    in.Category,
		Urgent:      in.Urgent,
		Description: strings.TrimSpace(in.Description),
		Status:      entities.TicketStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	t.AppendHistory(now, in.Actor, "created", "ticket opened as "+number)
	return u.repo.Create(ctx, t)
}

func (u *TicketUseCase) GetByID(ctx context.Context, id string) (entities.ServiceTicket, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceTicket{}, ErrInvalidTicketID
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceTicket{}, err
	}
	if t.ID == "" {
		return entities.ServiceTicket{}, ErrTicketNotFound
	}
	return t, nil
}

func (u *TicketUseCase) List(ctx context.Context, includeArchived bool) ([]entities.ServiceTicket, error) {
	return u.repo.List(ctx, includeArchived)
}

func (u *TicketUseCase) Transition(ctx context.Context, in TransitionInput) (entities.ServiceTicket, error) {
	t, err := u.GetByID(ctx, in.TicketID)
	if err != nil {
		return entities.ServiceTicket{}, err
	}
	if t.Archived() {
		return entities.ServiceTicket{}, ErrTicketArchived
	}
	if !transitionAllowed(t.Status, in.To) {
		return entities.ServiceTicket{}, ErrInvalidTransition
	}

	now := u.clock.Now()
	t.Status = in.To
	if in.TechnicalReturn != nil {
		t.TechnicalReturn = in.TechnicalReturn
	}
	if in.Financial != nil {
		t.Financial = in.Financial
	}
	t.UpdatedAt = now
	t.AppendHistory(now, in.Actor, "status:"+string(in.To), in.Note)
	return u.repo.Save(ctx, t)
}

// Archive hides the ticket from active views. Status is untouched.
func (u *TicketUseCase) Archive(ctx context.Context, id, actor string) (entities.ServiceTicket, error) {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceTicket{}, err
	}
	if t.Archived() {
		return entities.ServiceTicket{}, ErrTicketArchived
	}
	now := u.clock.Now()
	t.ArchivedAt = &now
	t.UpdatedAt = now
	t.AppendHistory(now, actor, "archived", "")
	return u.repo.Save(ctx, t)
}

func (u *TicketUseCase) Unarchive(ctx context.Context, id, actor string) (entities.ServiceTicket, error) {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceTicket{}, err
	}
	if !t.Archived() {
		return entities.ServiceTicket{}, ErrTicketNotArchived
	}
	now := u.clock.Now()
	t.ArchivedAt = nil
	t.UpdatedAt = now
	t.AppendHistory(now, actor, "unarchived", "")
	return u.repo.Save(ctx, t)
}
