package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	request "assistec/internal/adapter/http/dto/request"
	response "assistec/internal/adapter/http/dto/response"
	"assistec/internal/domain/entities"
	"assistec/internal/usecase"
	"assistec/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for the quote workflow.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	terms, err := payload.Terms.ToEntity()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateQuoteInput{
		ClientID:   payload.ClientID,
		TicketID:   payload.TicketID,
		Items:      payload.ResolveItems(),
		Terms:      terms,
		ValidUntil: payload.ValidUntil,
		Actor:      payload.ResolveActor(),
	})
	if err != nil {
		log.Printf("[quote][handler] create failed client_id=%s err=%v", payload.ClientID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] create success quote_id=%s number=%s", created.ID, created.Number)

	c.JSON(http.StatusCreated, response.FromQuote(created))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id := c.Param("id")
	q, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) AddQuoteItem(c *gin.Context) {
	id := c.Param("id")
	var payload struct {
		request.QuoteItemRequest
		Actor string `json:"actor"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.AddItem(c.Request.Context(), id, payload.ToEntity(), resolveActorParam(payload.Actor))
	if err != nil {
		log.Printf("[quote][handler] add-item failed quote_id=%s err=%v", id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) RemoveQuoteItem(c *gin.Context) {
	id := c.Param("id")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	var payload request.ActorRequest
	_ = c.ShouldBindJSON(&payload)

	q, err := h.usecase.RemoveItem(c.Request.Context(), id, index, payload.ResolveActor())
	if err != nil {
		log.Printf("[quote][handler] remove-item failed quote_id=%s index=%d err=%v", id, index, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) SendQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Send)
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Approve)
}

// RejectQuote requires a non-empty reason; the linked ticket routes to
// equipment return when parts were removed from the client site.
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	id := c.Param("id")
	var payload request.RejectQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Reject(c.Request.Context(), id, payload.ResolveActor(), payload.Reason)
	if err != nil {
		log.Printf("[quote][handler] reject failed quote_id=%s err=%v", id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] reject success quote_id=%s", q.ID)

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ExpireQuotes sweeps sent quotes whose validity date has passed.
func (h *QuoteHandler) ExpireQuotes(c *gin.Context) {
	expired, err := h.usecase.ExpireOverdue(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] expire sweep finished expired=%d", expired)
	c.JSON(http.StatusOK, response.ExpireSweepResponse{Expired: expired})
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, quoteID, actor string) (entities.Quote, error),
) {
	id := c.Param("id")
	var payload request.ActorRequest
	_ = c.ShouldBindJSON(&payload)

	q, err := updater(c.Request.Context(), id, payload.ResolveActor())
	if err != nil {
		log.Printf("[quote][handler] status change failed quote_id=%s err=%v", id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] status change success quote_id=%s status=%s", q.ID, q.Status)

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func resolveActorParam(actor string) string {
	if actor == "" {
		return "system"
	}
	return actor
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidClient),
		errors.Is(err, usecase.ErrInvalidQuoteItem),
		errors.Is(err, usecase.ErrInvalidTerms):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyQuote):
		return pkg.NewDomainErrorSimple("EMPTY_QUOTE", "Quote has no line items", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingReason):
		return pkg.NewDomainErrorSimple("MISSING_REASON", "Rejection reason is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotDraft),
		errors.Is(err, usecase.ErrQuoteNotSent):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_STATUS", "Quote status does not allow this operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Linked ticket transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrTicketArchived):
		return pkg.NewDomainErrorSimple("TICKET_ARCHIVED", "Linked ticket is archived", http.StatusConflict)
	case errors.Is(err, usecase.ErrSequenceExhausted):
		return pkg.NewDomainErrorSimple("SEQUENCE_UNAVAILABLE", "Document numbering temporarily unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
