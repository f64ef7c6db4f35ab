package routes

import (
	"assistec/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPricing = "/pricing"

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.GET("/:product_id", pricingHandler.GetPricingRecord)
		pricing.PUT("/:product_id/inputs", pricingHandler.UpdatePricingInputs)
		pricing.GET("/:product_id/history", pricingHandler.ListPricingHistory)
		pricing.POST("/recompute", pricingHandler.RecomputePricing)
	}
}
