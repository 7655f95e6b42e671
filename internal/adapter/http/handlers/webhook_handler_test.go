package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleetval/internal/adapter/http/handlers/mocks"
	"fleetval/internal/domain/entities"
	"fleetval/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type captureDispatcher struct {
	events []entities.ReportEvent
	err    error
}

func (d *captureDispatcher) Emit(_ context.Context, event entities.ReportEvent) error {
	d.events = append(d.events, event)
	return d.err
}

func postWebhook(t *testing.T, h *WebhookHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.POST("/v1/webhooks/payments", h.HandlePaymentEvent)

	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookHandler_HandlePaymentEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("succeeded event reconciles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconciler := mocks.NewMockIPaymentReconcilerUseCase(ctrl)
		h := NewWebhookHandler(reconciler, nil)

		reconciler.EXPECT().
			MarkPaid(gomock.Any(), "pi_1", entities.NewMoney(49500, "USD"), "rep-1", entities.SystemActor).
			Return(entities.Report{ID: "rep-1", Status: entities.StatusSubmitted}, nil)

		w := postWebhook(t, h, `{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","amount_received":49500,"status":"succeeded","metadata":{"report_id":"rep-1"}}}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reconciliation failure still answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconciler := mocks.NewMockIPaymentReconcilerUseCase(ctrl)
		h := NewWebhookHandler(reconciler, nil)

		reconciler.EXPECT().
			MarkPaid(gomock.Any(), "pi_ghost", gomock.Any(), "", entities.SystemActor).
			Return(entities.Report{}, usecase.ErrReportNotFound)

		w := postWebhook(t, h, `{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_ghost","amount":49500}}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 even on reconciliation failure, got %d", w.Code)
		}
	})

	t.Run("malformed payload still answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconciler := mocks.NewMockIPaymentReconcilerUseCase(ctrl)
		h := NewWebhookHandler(reconciler, nil)

		w := postWebhook(t, h, "{not json")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 on malformed payload, got %d", w.Code)
		}
	})

	t.Run("unknown event type is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconciler := mocks.NewMockIPaymentReconcilerUseCase(ctrl)
		h := NewWebhookHandler(reconciler, nil)

		w := postWebhook(t, h, `{"type":"customer.created","data":{"object":{"id":"cus_1"}}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("failed event notifies without reconciling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconciler := mocks.NewMockIPaymentReconcilerUseCase(ctrl)
		notifier := &captureDispatcher{}
		h := NewWebhookHandler(reconciler, notifier)

		w := postWebhook(t, h, `{"type":"payment_intent.payment_failed","data":{"object":{"id":"pi_1","metadata":{"report_id":"rep-1"}}}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if len(notifier.events) != 1 || notifier.events[0].Type != entities.EventPaymentFailed {
			t.Fatalf("expected one payment.failed event, got %+v", notifier.events)
		}
	})

	t.Run("refund notifies and never touches status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconciler := mocks.NewMockIPaymentReconcilerUseCase(ctrl)
		notifier := &captureDispatcher{err: errors.New("smtp down")}
		h := NewWebhookHandler(reconciler, notifier)

		w := postWebhook(t, h, `{"type":"charge.refunded","data":{"object":{"id":"pi_1"}}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 even when notify fails, got %d", w.Code)
		}
		if len(notifier.events) != 1 || notifier.events[0].Type != entities.EventChargeRefunded {
			t.Fatalf("expected one charge.refunded event, got %+v", notifier.events)
		}
	})
}
