package handlers

import (
	"errors"
	"log"
	"net/http"

	request "assistec/internal/adapter/http/dto/request"
	response "assistec/internal/adapter/http/dto/response"
	"assistec/internal/usecase"
	"assistec/pkg"

	"github.com/gin-gonic/gin"
)

// SaleHandler handles HTTP requests for sale confirmation and settlement.

type SaleHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewSaleHandler(uc usecase.ISettlementUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc}
}

// ConfirmSale snapshots an approved quote into a pending-settlement sale.
func (h *SaleHandler) ConfirmSale(c *gin.Context) {
	var payload request.ConfirmSaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	s, err := h.usecase.ConfirmSale(c.Request.Context(), payload.QuoteID, payload.ResolveDiscount(), payload.ResolveNature(), payload.ResolveActor())
	if err != nil {
		log.Printf("[sale][handler] confirm failed quote_id=%s err=%v", payload.QuoteID, err)
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sale][handler] confirm success sale_id=%s quote_id=%s", s.ID, s.QuoteID)

	c.JSON(http.StatusCreated, response.FromSale(s))
}

func (h *SaleHandler) GetSale(c *gin.Context) {
	id := c.Param("id")
	s, err := h.usecase.GetSale(c.Request.Context(), id)
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSale(s))
}

// SettleSale plans installments and generates the open receivables. Safe to
// re-run after a partial failure; receivable writes are idempotent upserts.
func (h *SaleHandler) SettleSale(c *gin.Context) {
	id := c.Param("id")
	var payload request.ActorRequest
	_ = c.ShouldBindJSON(&payload)

	s, receivables, err := h.usecase.Settle(c.Request.Context(), id, payload.ResolveActor())
	if err != nil {
		log.Printf("[sale][handler] settle failed sale_id=%s err=%v", id, err)
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sale][handler] settle success sale_id=%s receivables=%d", s.ID, len(receivables))

	c.JSON(http.StatusOK, response.SettlementResponse{
		Sale:        response.FromSale(s),
		Receivables: response.FromReceivables(receivables),
	})
}

func (h *SaleHandler) ListSaleReceivables(c *gin.Context) {
	id := c.Param("id")
	receivables, err := h.usecase.ListReceivables(c.Request.Context(), id)
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReceivables(receivables))
}

func mapSaleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleID),
		errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidDiscount),
		errors.Is(err, usecase.ErrInvalidDueDay),
		errors.Is(err, usecase.ErrNegativeTotal),
		errors.Is(err, usecase.ErrDownPaymentTooHigh):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote is not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrSaleAlreadyExists):
		return pkg.NewDomainErrorSimple("SALE_ALREADY_EXISTS", "A sale already exists for this quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrSaleAlreadySettled):
		return pkg.NewDomainErrorSimple("SALE_ALREADY_SETTLED", "Sale already settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallmentMismatch):
		return pkg.NewDomainErrorSimple("INSTALLMENT_MISMATCH", "Installment plan does not add up to the sale amount", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
