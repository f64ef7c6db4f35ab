package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "assistec/internal/adapter/http/dto/request"
	response "assistec/internal/adapter/http/dto/response"
	"assistec/internal/domain/entities"
	"assistec/internal/usecase"
	"assistec/pkg"

	"github.com/gin-gonic/gin"
)

// TicketHandler handles HTTP requests for service tickets.

type TicketHandler struct {
	usecase usecase.ITicketUseCase
}

func NewTicketHandler(uc usecase.ITicketUseCase) *TicketHandler {
	return &TicketHandler{usecase: uc}
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var payload request.CreateTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateTicketInput{
		ClientID:    payload.ClientID,
		Category:    entities.TicketCategory(payload.Category),
		Urgent:      payload.Urgent,
		Description: payload.Description,
		Actor:       payload.ResolveActor(),
	})
	if err != nil {
		log.Printf("[ticket][handler] create failed client_id=%s err=%v", payload.ClientID, err)
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[ticket][handler] create success ticket_id=%s number=%s", created.ID, created.Number)

	c.JSON(http.StatusCreated, response.FromTicket(created))
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	id := c.Param("id")
	t, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTicket(t))
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	includeArchived := c.Query("include_archived") == "true"
	tickets, err := h.usecase.List(c.Request.Context(), includeArchived)
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTickets(tickets))
}

// TransitionTicket moves a ticket to a new status through the state machine.
func (h *TicketHandler) TransitionTicket(c *gin.Context) {
	id := c.Param("id")
	var payload request.TransitionTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	t, err := h.usecase.Transition(c.Request.Context(), usecase.TransitionInput{
		TicketID: id,
		To:       payload.ResolveStatus(),
		Actor:    payload.ResolveActor(),
		Note:     payload.Note,
	})
	if err != nil {
		log.Printf("[ticket][handler] transition failed ticket_id=%s to=%s err=%v", id, payload.Status, err)
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[ticket][handler] transition success ticket_id=%s status=%s", t.ID, t.Status)

	c.JSON(http.StatusOK, response.FromTicket(t))
}

func (h *TicketHandler) ArchiveTicket(c *gin.Context) {
	h.patchArchival(c, h.usecase.Archive)
}

func (h *TicketHandler) UnarchiveTicket(c *gin.Context) {
	h.patchArchival(c, h.usecase.Unarchive)
}

func (h *TicketHandler) patchArchival(
	c *gin.Context,
	updater func(ctx context.Context, id, actor string) (entities.ServiceTicket, error),
) {
	id := c.Param("id")
	var payload request.ActorRequest
	_ = c.ShouldBindJSON(&payload)

	t, err := updater(c.Request.Context(), id, payload.ResolveActor())
	if err != nil {
		log.Printf("[ticket][handler] archival change failed ticket_id=%s err=%v", id, err)
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTicket(t))
}

func mapTicketError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTicketID),
		errors.Is(err, usecase.ErrInvalidClient),
		errors.Is(err, usecase.ErrMissingDescription),
		errors.Is(err, usecase.ErrInvalidCategory):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrTicketArchived):
		return pkg.NewDomainErrorSimple("TICKET_ARCHIVED", "Ticket is archived", http.StatusConflict)
	case errors.Is(err, usecase.ErrTicketNotArchived):
		return pkg.NewDomainErrorSimple("TICKET_NOT_ARCHIVED", "Ticket is not archived", http.StatusConflict)
	case errors.Is(err, usecase.ErrSequenceExhausted):
		return pkg.NewDomainErrorSimple("SEQUENCE_UNAVAILABLE", "Document numbering temporarily unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
