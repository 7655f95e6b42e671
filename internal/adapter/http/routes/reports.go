package routes

import (
	"fleetval/internal/adapter/http/handlers"
	"fleetval/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathReports  = "/reports"
	PathWebhooks = "/webhooks"
)

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler, statusHandler *handlers.StatusHandler, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler) {
	reports := rg.Group(PathReports)
	{
		reports.POST("", middleware.RequireUser(), reportHandler.CreateReport)
		reports.POST("/payment-intent", middleware.RequireUser(), paymentHandler.CreatePaymentIntent)
		reports.POST("/payment-confirmed", middleware.RequireUser(), paymentHandler.ConfirmPayment)
		reports.GET("/fleet-credits", middleware.RequireUser(), reportHandler.GetFleetCredits)
		reports.GET("/:id", middleware.RequireUser(), reportHandler.GetReport)
		reports.GET("/:id/timeline", middleware.RequireUser(), reportHandler.GetTimeline)
		reports.PUT("/:id/status", middleware.RequireAdmin(), statusHandler.UpdateStatus)
		reports.POST("/overdue-sweep", middleware.RequireAdmin(), statusHandler.SweepOverdue)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		// Unauthenticated by design: gateway deliveries carry no actor.
		webhooks.POST("/payments", webhookHandler.HandlePaymentEvent)
	}
}
