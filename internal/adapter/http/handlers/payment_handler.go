package handlers

import (
	"log"
	"net/http"

	"fleetval/internal/adapter/http/dto/request"
	"fleetval/internal/adapter/http/dto/response"
	"fleetval/internal/adapter/http/middleware"
	"fleetval/internal/domain/entities"
	"fleetval/internal/usecase"
	"fleetval/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the client-facing payment endpoints: intent
// creation and the polling confirmation fallback.

type PaymentHandler struct {
	reports    usecase.IReportUseCase
	reconciler usecase.IPaymentReconcilerUseCase
}

func NewPaymentHandler(reports usecase.IReportUseCase, reconciler usecase.IPaymentReconcilerUseCase) *PaymentHandler {
	return &PaymentHandler{reports: reports, reconciler: reconciler}
}

// CreatePaymentIntent creates a gateway intent for a draft report at the
// server-computed canonical price.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req request.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.reports.CreatePaymentIntent(c.Request.Context(), req.ReportID, actor)
	if err != nil {
		log.Printf("[payment][handler] intent failed report_id=%s actor=%s err=%v", req.ReportID, actor.ID, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] intent success report_id=%s intent_id=%s amount=%s",
		result.ReportID, result.PaymentIntentID, result.Amount)

	c.JSON(http.StatusOK, response.PaymentIntentResponse{
		ReportID:         result.ReportID,
		PaymentIntentID:  result.PaymentIntentID,
		Amount:           result.Amount.String(),
		AmountMinor:      result.Amount.AmountMinor,
		Currency:         result.Amount.Currency,
		ProviderStatus:   result.ProviderStatus,
		ProviderResponse: result.ProviderResponse,
	})
}

// ConfirmPayment is the client-initiated confirmation path, used when
// webhook delivery lags. The raw amount is normalized exactly once here, at
// ingestion; an amount mismatch is rejected and logged as a security event
// with the caller and source address.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req request.PaymentConfirmedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	hint := req.ResolveReportID()
	if hint == "" {
		// Best-effort fallback: the caller's most recent draft.
		hint = h.reconciler.ResolveHint(c.Request.Context(), actor.ID)
	}

	amount := entities.NormalizeAmount(req.Amount)
	report, err := h.reconciler.MarkPaid(c.Request.Context(), req.ResolveIntentID(), amount, hint, actor)
	if err != nil {
		if appErr := mapReportError(err); appErr.Code == "PAYMENT_AMOUNT_MISMATCH" {
			log.Printf("[payment][handler] SECURITY amount mismatch intent_id=%s actor=%s ip=%s asserted=%v",
				req.PaymentIntentID, actor.ID, c.ClientIP(), req.Amount)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[payment][handler] confirm failed intent_id=%s actor=%s err=%v",
			req.PaymentIntentID, actor.ID, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm success intent_id=%s report_id=%s status=%s",
		req.PaymentIntentID, report.ID, report.Status)

	c.JSON(http.StatusOK, response.FromReport(report))
}
