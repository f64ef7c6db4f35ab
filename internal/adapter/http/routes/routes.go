package routes

import (
	"log"
	"os"
	"strconv"

	_ "assistec/docs" // swag-generated documentation
	"assistec/internal/adapter/http/handlers"
	repository "assistec/internal/adapter/persistence/repository"
	"assistec/internal/infrastructure/database"
	"assistec/internal/infrastructure/payments"
	"assistec/internal/usecase"
	"assistec/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	clock := usecase.SystemClock()

	ticketRepo := repository.NewTicketDynamoRepository(ddb)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	saleRepo := repository.NewSaleDynamoRepository(ddb)
	receivableRepo := repository.NewReceivableDynamoRepository(ddb)
	ledgerRepo := repository.NewLedgerDynamoRepository(ddb)
	pricingRepo := repository.NewPricingDynamoRepository(ddb)
	sequenceRepo := repository.NewSequenceDynamoRepository(ddb)
	clientRepo := repository.NewClientDynamoRepository(ddb)
	catalogRepo := repository.NewCatalogDynamoRepository(ddb)

	var chargeGateway interfaces.IChargeGateway
	mpGateway, err := payments.NewMercadoPagoChargeGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Charge gateway not configured: %v", err)
	} else {
		chargeGateway = mpGateway
	}

	ticketUseCase := usecase.NewTicketUseCase(ticketRepo, sequenceRepo, clientRepo, clock)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, sequenceRepo, clientRepo, ticketUseCase, clock)
	resolver := usecase.NewLedgerResolver(ledgerRepo, clock)
	settlementUseCase := usecase.NewSettlementUseCase(saleRepo, receivableRepo, quoteUseCase, clientRepo, resolver, chargeGateway, clock)
	pricingUseCase := usecase.NewPricingUseCase(pricingRepo, catalogRepo, catalogRepo, clock)

	ticketHandler := handlers.NewTicketHandler(ticketUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	saleHandler := handlers.NewSaleHandler(settlementUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkflowRoutes(v1, ticketHandler, quoteHandler)
	addSettlementRoutes(v1, saleHandler)
	addPricingRoutes(v1, pricingHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
