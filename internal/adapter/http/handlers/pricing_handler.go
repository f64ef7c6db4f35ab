package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "assistec/internal/adapter/http/dto/request"
	response "assistec/internal/adapter/http/dto/response"
	"assistec/internal/usecase"
	"assistec/pkg"

	"github.com/gin-gonic/gin"
)

// PricingHandler handles HTTP requests for product pricing records.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

func (h *PricingHandler) GetPricingRecord(c *gin.Context) {
	productID := c.Param("product_id")
	r, err := h.usecase.GetRecord(c.Request.Context(), productID)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPricingRecord(r))
}

// UpdatePricingInputs applies a manual edit of the editable parameters and
// returns the fully rederived record.
func (h *PricingHandler) UpdatePricingInputs(c *gin.Context) {
	productID := c.Param("product_id")
	var payload request.PricingInputsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	r, err := h.usecase.UpdateInputs(c.Request.Context(), productID, payload.ToEntity(), payload.Reason)
	if err != nil {
		log.Printf("[pricing][handler] update failed product_id=%s err=%v", productID, err)
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pricing][handler] update success product_id=%s final=%0.2f", r.ProductID, r.FinalPrice.InexactFloat64())

	c.JSON(http.StatusOK, response.FromPricingRecord(r))
}

// RecomputePricing refreshes every record from the stock feed. Only one pass
// runs at a time; a concurrent call gets a conflict.
func (h *PricingHandler) RecomputePricing(c *gin.Context) {
	updated, err := h.usecase.RecomputeAll(c.Request.Context())
	if err != nil {
		log.Printf("[pricing][handler] recompute failed err=%v", err)
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.RecomputeResponse{Updated: updated})
}

func (h *PricingHandler) ListPricingHistory(c *gin.Context) {
	productID := c.Param("product_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	history, err := h.usecase.ListHistory(c.Request.Context(), productID, limit)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPricingHistory(history))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidMargin),
		errors.Is(err, usecase.ErrInvalidPricingMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPricingNotFound):
		return pkg.NewDomainErrorSimple("PRICING_NOT_FOUND", "Pricing record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRecomputeInProgress):
		return pkg.NewDomainErrorSimple("RECOMPUTE_IN_PROGRESS", "A pricing recompute is already running", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
