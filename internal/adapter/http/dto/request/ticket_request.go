package request

import (
	"strings"

	"assistec/internal/domain/entities"
)

// CreateTicketRequest opens a service ticket.
type CreateTicketRequest struct {
	ClientID    string `json:"client_id" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Urgent      bool   `json:"urgent"`
	Description string `json:"description" binding:"required"`
	Actor       string `json:"actor"`
}

func (r CreateTicketRequest) ResolveActor() string { return resolveActor(r.Actor) }

// TransitionTicketRequest moves a ticket through the state machine.
type TransitionTicketRequest struct {
	Status string `json:"status" binding:"required"`
	Actor  string `json:"actor"`
	Note   string `json:"note"`
}

func (r TransitionTicketRequest) ResolveStatus() entities.TicketStatus {
	return entities.TicketStatus(strings.TrimSpace(strings.ToLower(r.Status)))
}

func (r TransitionTicketRequest) ResolveActor() string { return resolveActor(r.Actor) }

// ActorRequest covers archive/unarchive and other actor-only bodies.
type ActorRequest struct {
	Actor string `json:"actor"`
}

func (r ActorRequest) ResolveActor() string { return resolveActor(r.Actor) }

func resolveActor(actor string) string {
	if v := strings.TrimSpace(actor); v != "" {
		return v
	}
	return "system"
}
