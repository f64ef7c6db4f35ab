package routes

import (
	"assistec/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTickets = "/tickets"
	PathQuotes  = "/quotes"
)

func addWorkflowRoutes(rg *gin.RouterGroup, ticketHandler *handlers.TicketHandler, quoteHandler *handlers.QuoteHandler) {
	tickets := rg.Group(PathTickets)
	{
		tickets.POST("", ticketHandler.CreateTicket)
		tickets.GET("", ticketHandler.ListTickets)
		tickets.GET("/:id", ticketHandler.GetTicket)
		tickets.PATCH("/:id/status", ticketHandler.TransitionTicket)
		tickets.PATCH("/:id/archive", ticketHandler.ArchiveTicket)
		tickets.PATCH("/:id/unarchive", ticketHandler.UnarchiveTicket)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.POST("/:id/items", quoteHandler.AddQuoteItem)
		quotes.DELETE("/:id/items/:index", quoteHandler.RemoveQuoteItem)
		quotes.PATCH("/:id/send", quoteHandler.SendQuote)
		quotes.PATCH("/:id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:id/reject", quoteHandler.RejectQuote)
		quotes.POST("/expire", quoteHandler.ExpireQuotes)
	}
}
