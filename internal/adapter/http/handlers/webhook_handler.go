package handlers

import (
	"log"
	"net/http"
	"time"

	"fleetval/internal/adapter/http/dto/request"
	"fleetval/internal/domain/entities"
	"fleetval/internal/usecase"
	"fleetval/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// WebhookHandler consumes gateway events. The gateway disables endpoints
// that repeatedly answer non-2xx, so every internal failure is absorbed:
// logged, acknowledged with 200, retried by the gateway's own redelivery.

type WebhookHandler struct {
	reconciler usecase.IPaymentReconcilerUseCase
	notifier   interfaces.INotificationDispatcher
}

func NewWebhookHandler(reconciler usecase.IPaymentReconcilerUseCase, notifier interfaces.INotificationDispatcher) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler, notifier: notifier}
}

func (h *WebhookHandler) HandlePaymentEvent(c *gin.Context) {
	var envelope request.WebhookEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		log.Printf("[webhook][handler] unreadable payload err=%v", err)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	obj := envelope.Data.Object
	log.Printf("[webhook][handler] event start type=%s intent_id=%s status=%s", envelope.Type, obj.ID, obj.Status)

	switch envelope.Type {
	case request.WebhookPaymentSucceeded:
		amount := entities.NormalizeAmount(obj.RawAmount())
		report, err := h.reconciler.MarkPaid(c.Request.Context(), obj.ID, amount, obj.ReportIDHint(), entities.SystemActor)
		if err != nil {
			// Absorbed; the gateway redelivers and MarkPaid is retry-safe.
			// A missing report means a paid transaction without a record.
			log.Printf("[webhook][handler] ALERT reconciliation failed intent_id=%s amount=%s err=%v",
				obj.ID, amount, err)
			break
		}
		log.Printf("[webhook][handler] reconciled intent_id=%s report_id=%s status=%s", obj.ID, report.ID, report.Status)

	case request.WebhookPaymentFailed:
		h.emit(c, entities.EventPaymentFailed, obj)
	case request.WebhookPaymentCanceled:
		h.emit(c, entities.EventPaymentCanceled, obj)
	case request.WebhookChargeRefunded:
		// Refunds notify but never regress a report's status.
		h.emit(c, entities.EventChargeRefunded, obj)
	default:
		log.Printf("[webhook][handler] ignored event type=%s", envelope.Type)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *WebhookHandler) emit(c *gin.Context, eventType entities.ReportEventType, obj request.WebhookObject) {
	if h.notifier == nil {
		return
	}
	event := entities.ReportEvent{
		Type:       eventType,
		ReportID:   obj.ReportIDHint(),
		IntentID:   obj.ID,
		OccurredAt: time.Now().UTC(),
	}
	if err := h.notifier.Emit(c.Request.Context(), event); err != nil {
		log.Printf("[webhook][handler] notify failed type=%s intent_id=%s err=%v", eventType, obj.ID, err)
	}
}
