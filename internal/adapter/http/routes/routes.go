package routes

import (
	"log"
	"os"
	"strconv"

	_ "fleetval/docs" // swag-generated
	"fleetval/internal/adapter/http/handlers"
	"fleetval/internal/adapter/http/middleware"
	"fleetval/internal/adapter/persistence/repository"
	"fleetval/internal/infrastructure/database"
	"fleetval/internal/infrastructure/notifications"
	"fleetval/internal/infrastructure/payments"
	"fleetval/internal/usecase"
	"fleetval/internal/usecase/interfaces"

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

// getRoutes wires every collaborator explicitly at startup: repositories,
// gateway and notifier are constructed once here and passed down by
// interface. No component reaches for a lazily-built global client.
func getRoutes() {
	ddb := database.ConnectDynamoDB()

	reportRepo := repository.NewReportDynamoRepository(ddb)
	historyRepo := repository.NewStatusHistoryDynamoRepository(ddb)

	var notifier interfaces.INotificationDispatcher = notifications.NewLogDispatcher()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	statusUseCase := usecase.NewStatusUseCase(reportRepo, historyRepo, notifier)
	fleetUseCase := usecase.NewFleetUsageUseCase(reportRepo)
	reportUseCase := usecase.NewReportUseCase(reportRepo, historyRepo, paymentGateway, fleetUseCase, statusUseCase)
	reconcilerUseCase := usecase.NewPaymentReconcilerUseCase(reportRepo, statusUseCase)

	reportHandler := handlers.NewReportHandler(reportUseCase, fleetUseCase)
	statusHandler := handlers.NewStatusHandler(statusUseCase)
	paymentHandler := handlers.NewPaymentHandler(reportUseCase, reconcilerUseCase)
	webhookHandler := handlers.NewWebhookHandler(reconcilerUseCase, notifier)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReportRoutes(v1, reportHandler, statusHandler, paymentHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.ActorContext())
}
