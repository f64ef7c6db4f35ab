package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"assistec/internal/domain/entities"
	"assistec/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrInvalidQuoteID   = errors.New("invalid quote id")
	ErrQuoteNotDraft    = errors.New("quote is not a draft")
	ErrQuoteNotSent     = errors.New("quote is not sent")
	ErrEmptyQuote       = errors.New("quote has no line items")
	ErrMissingReason    = errors.New("missing rejection reason")
	ErrInvalidQuoteItem = errors.New("invalid quote item")
	ErrInvalidTerms     = errors.New("invalid payment terms")
)

const quoteNumberPrefix = "QUO"

// CreateQuoteInput opens a draft quote, optionally linked to a ticket.
type CreateQuoteInput struct {
	ClientID   string
	TicketID   string
	Items      []entities.QuoteItem
	Terms      entities.PaymentTerms
	ValidUntil *time.Time
	Actor      string
}

// IQuoteUseCase exposes the quote workflow. Transitions on linked tickets go
// through the ticket state machine, never around it.

type IQuoteUseCase interface {
	Create(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	AddItem(ctx context.Context, quoteID string, item entities.QuoteItem, actor string) (entities.Quote, error)
	RemoveItem(ctx context.Context, quoteID string, index int, actor string) (entities.Quote, error)
	Send(ctx context.Context, quoteID, actor string) (entities.Quote, error)
	Approve(ctx context.Context, quoteID, actor string) (entities.Quote, error)
	Reject(ctx context.Context, quoteID, actor, reason string) (entities.Quote, error)
	ExpireOverdue(ctx context.Context) (int, error)
}

type QuoteUseCase struct {
	repo    interfaces.IQuoteRepository
	seq     interfaces.ISequenceRepository
	clients interfaces.IClientDirectory
	tickets ITicketUseCase
	clock   interfaces.Clock
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, seq interfaces.ISequenceRepository, clients interfaces.IClientDirectory, tickets ITicketUseCase, clock interfaces.Clock) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, seq: seq, clients: clients, tickets: tickets, clock: clock}
}

func (u *QuoteUseCase) Create(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	if in.ClientID == "" {
		return entities.Quote{}, ErrInvalidClient
	}
	if !in.Terms.Valid() {
		return entities.Quote{}, ErrInvalidTerms
	}
	for _, it := range in.Items {
		if err := validateQuoteItem(it); err != nil {
			return entities.Quote{}, err
		}
	}

	client, err := u.clients.GetClient(ctx, in.ClientID)
	if err != nil {
		return entities.Quote{}, err
	}
	if client.ID == "" {
		return entities.Quote{}, ErrClientNotFound
	}

	now := u.clock.Now()
	number, err := nextDocumentNumber(ctx, u.seq, quoteNumberPrefix, now)
	if err != nil {
		return entities.Quote{}, err
	}

	q := entities.Quote{
		ID:         uuid.NewString(),
		Number:     number,
		ClientID:   client.ID,
		TicketID:   strings.TrimSpace(in.TicketID),
		Items:      in.Items,
		Status:     entities.QuoteStatusDraft,
		Terms:      in.Terms,
		ValidUntil: in.ValidUntil,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	q.Recalculate()
	q.AppendHistory(now, in.Actor, "created", "quote drafted as "+number)

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	if created.TicketID != "" {
		if _, err := u.tickets.Transition(ctx, TransitionInput{
			TicketID: created.TicketID,
			To:       entities.TicketStatusQuoteInDraft,
			Actor:    in.Actor,
			Note:     "quote " + created.Number + " drafted",
		}); err != nil {
			log.Printf("[quote][usecase] ticket sync failed quote_id=%s ticket_id=%s err=%v", created.ID, created.TicketID, err)
			return entities.Quote{}, err
		}
	}
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func validateQuoteItem(it entities.QuoteItem) error {
	if strings.TrimSpace(it.Description) == "" || !it.Quantity.IsPositive() || it.UnitPrice.IsNegative() {
		return ErrInvalidQuoteItem
	}
	return nil
}

func (u *QuoteUseCase) AddItem(ctx context.Context, quoteID string, item entities.QuoteItem, actor string) (entities.Quote, error) {
	if err := validateQuoteItem(item); err != nil {
		return entities.Quote{}, err
	}
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusDraft {
		return entities.Quote{}, ErrQuoteNotDraft
	}

	now := u.clock.Now()
	q.Items = append(q.Items, item)
	q.Recalculate()
	q.UpdatedAt = now
	q.AppendHistory(now, actor, "item_added", item.Description)
	return u.repo.Save(ctx, q)
}

func (u *QuoteUseCase) RemoveItem(ctx context.Context, quoteID string, index int, actor string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusDraft {
		return entities.Quote{}, ErrQuoteNotDraft
	}
	if index < 0 || index >= len(q.Items) {
		return entities.Quote{}, ErrInvalidQuoteItem
	}

	now := u.clock.Now()
	removed := q.Items[index]
	q.Items = append(q.Items[:index], q.Items[index+1:]...)
	q.Recalculate()
	q.UpdatedAt = now
	q.AppendHistory(now, actor, "item_removed", removed.Description)
	return u.repo.Save(ctx, q)
}

func (u *QuoteUseCase) Send(ctx context.Context, quoteID, actor string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusDraft {
		return entities.Quote{}, ErrQuoteNotDraft
	}
	if len(q.Items) == 0 {
		return entities.Quote{}, ErrEmptyQuote
	}

	now := u.clock.Now()
	q.Status = entities.QuoteStatusSent
	q.UpdatedAt = now
	q.AppendHistory(now, actor, "sent", "")
	saved, err := u.repo.Save(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	if err := u.syncTicket(ctx, saved, TransitionInput{
		TicketID: saved.TicketID,
		To:       entities.TicketStatusQuoteSent,
		Actor:    actor,
		Note:     "quote " + saved.Number + " sent to client",
	}); err != nil {
		return entities.Quote{}, err
	}
	return saved, nil
}

func (u *QuoteUseCase) Approve(ctx context.Context, quoteID, actor string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusSent {
		return entities.Quote{}, ErrQuoteNotSent
	}

	now := u.clock.Now()
	q.Status = entities.QuoteStatusApproved
	q.UpdatedAt = now
	q.AppendHistory(now, actor, "approved", "")
	saved, err := u.repo.Save(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	if saved.TicketID != "" {
		// Approval re-routes the ticket back to field execution with a
		// structured return note. Parts metadata from the pending record that
		// originated the quote is carried forward.
		ticket, err := u.tickets.GetByID(ctx, saved.TicketID)
		if err != nil {
			log.Printf("[quote][usecase] ticket load failed quote_id=%s ticket_id=%s err=%v", saved.ID, saved.TicketID, err)
			return entities.Quote{}, err
		}
		ret := &entities.TechnicalReturnPending{Summary: approvedItemsSummary(saved)}
		if ticket.TechnicalReturn != nil {
			ret.PartsRemoved = ticket.TechnicalReturn.PartsRemoved
			ret.PartsLocation = ticket.TechnicalReturn.PartsLocation
		}
		if err := u.syncTicket(ctx, saved, TransitionInput{
			TicketID:        saved.TicketID,
			To:              entities.TicketStatusQuoteApproved,
			Actor:           actor,
			Note:            "quote " + saved.Number + " approved; pending technical return",
			TechnicalReturn: ret,
		}); err != nil {
			return entities.Quote{}, err
		}
	}
	return saved, nil
}

func (u *QuoteUseCase) Reject(ctx context.Context, quoteID, actor, reason string) (entities.Quote, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Quote{}, ErrMissingReason
	}
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusSent {
		return entities.Quote{}, ErrQuoteNotSent
	}

	now := u.clock.Now()
	q.Status = entities.QuoteStatusRejected
	q.RejectionReason = reason
	q.UpdatedAt = now
	q.AppendHistory(now, actor, "rejected", reason)
	saved, err := u.repo.Save(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	if saved.TicketID != "" {
		ticket, err := u.tickets.GetByID(ctx, saved.TicketID)
		if err != nil {
			log.Printf("[quote][usecase] ticket load failed quote_id=%s ticket_id=%s err=%v", saved.ID, saved.TicketID, err)
			return entities.Quote{}, err
		}

		// Two distinct downstream effects: when parts were removed from the
		// client site the ticket must collect the equipment back before it
		// can close; otherwise it just records the rejection.
		in := TransitionInput{
			TicketID: saved.TicketID,
			To:       entities.TicketStatusQuoteRejected,
			Actor:    actor,
			Note:     "quote " + saved.Number + " rejected: " + reason,
		}
		if ticket.TechnicalReturn != nil && ticket.TechnicalReturn.PartsRemoved {
			in.To = entities.TicketStatusAwaitingReturn
			in.Note = "quote " + saved.Number + " rejected; return equipment to client"
		}
		if err := u.syncTicket(ctx, saved, in); err != nil {
			return entities.Quote{}, err
		}
	}
	return saved, nil
}

// ExpireOverdue sweeps every sent quote whose validity date is before today
// (date-only comparison) and marks it expired. Safe to run on every list load;
// already-expired quotes are not scanned again.
func (u *QuoteUseCase) ExpireOverdue(ctx context.Context) (int, error) {
	sent, err := u.repo.ListByStatus(ctx, entities.QuoteStatusSent)
	if err != nil {
		return 0, err
	}

	today := dateOnly(u.clock.Now())
	expired := 0
	for _, q := range sent {
		if q.ValidUntil == nil || !dateOnly(*q.ValidUntil).Before(today) {
			continue
		}
		now := u.clock.Now()
		q.Status = entities.QuoteStatusExpired
		q.UpdatedAt = now
		q.AppendHistory(now, "system", "expired", "validity date passed")
		if _, err := u.repo.Save(ctx, q); err != nil {
			log.Printf("[quote][usecase] expire save failed quote_id=%s err=%v", q.ID, err)
			continue
		}
		expired++
	}
	return expired, nil
}

func (u *QuoteUseCase) syncTicket(ctx context.Context, q entities.Quote, in TransitionInput) error {
	if q.TicketID == "" {
		return nil
	}
	if _, err := u.tickets.Transition(ctx, in); err != nil {
		log.Printf("[quote][usecase] ticket sync failed quote_id=%s ticket_id=%s to=%s err=%v", q.ID, q.TicketID, in.To, err)
		return err
	}
	return nil
}

func approvedItemsSummary(q entities.Quote) string {
	var b strings.Builder
	b.WriteString("approved quote " + q.Number + ": ")
	for i, it := range q.Items {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s x%s @ %s", it.Description, it.Quantity.String(), it.UnitPrice.StringFixed(2))
	}
	return b.String()
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
