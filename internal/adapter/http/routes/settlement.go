package routes

import (
	"assistec/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathSales = "/sales"

func addSettlementRoutes(rg *gin.RouterGroup, saleHandler *handlers.SaleHandler) {
	sales := rg.Group(PathSales)
	{
		sales.POST("", saleHandler.ConfirmSale)
		sales.GET("/:id", saleHandler.GetSale)
		sales.POST("/:id/settle", saleHandler.SettleSale)
		sales.GET("/:id/receivables", saleHandler.ListSaleReceivables)
	}
}
