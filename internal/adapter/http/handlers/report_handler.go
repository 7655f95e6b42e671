package handlers

import (
	"log"
	"net/http"
	"time"

	"fleetval/internal/adapter/http/dto/request"
	"fleetval/internal/adapter/http/dto/response"
	"fleetval/internal/adapter/http/middleware"
	"fleetval/internal/usecase"
	"fleetval/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles report creation, reads, the timeline view and fleet
// credit queries.

type ReportHandler struct {
	reports usecase.IReportUseCase
	fleet   usecase.IFleetUsageUseCase
}

func NewReportHandler(reports usecase.IReportUseCase, fleet usecase.IFleetUsageUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, fleet: fleet}
}

// CreateReport creates a DRAFT report owned by the caller.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	actor := middleware.GetActor(c)
	var req request.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[report][handler] create invalid payload owner_id=%s err=%v", actor.ID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	kind, err := req.ResolveKind()
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.reports.CreateDraft(c.Request.Context(), usecase.CreateDraftInput{
		OwnerID:        actor.ID,
		Kind:           kind,
		UnitCount:      req.UnitCount,
		CreditIntentID: req.CreditPaymentIntentID,
	})
	if err != nil {
		log.Printf("[report][handler] create failed owner_id=%s kind=%s err=%v", actor.ID, kind, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[report][handler] create success report_id=%s owner_id=%s kind=%s status=%s",
		created.ID, created.OwnerID, created.Kind, created.Status)

	c.JSON(http.StatusCreated, response.FromReport(created))
}

// GetReport returns one report, owner- or admin-visible.
func (h *ReportHandler) GetReport(c *gin.Context) {
	actor := middleware.GetActor(c)
	reportID := c.Param("id")

	report, err := h.reports.GetByID(c.Request.Context(), reportID, actor)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	remaining := usecase.TimeRemaining(report, time.Now().UTC())
	c.JSON(http.StatusOK, response.FromReport(report).WithTurnaround(remaining.IsOverdue, remaining.Remaining))
}

// GetTimeline returns the ordered status history, including synthesized
// entries for timestamps predating history rows.
func (h *ReportHandler) GetTimeline(c *gin.Context) {
	actor := middleware.GetActor(c)
	reportID := c.Param("id")

	entries, err := h.reports.Timeline(c.Request.Context(), reportID, actor)
	if err != nil {
		log.Printf("[report][handler] timeline failed report_id=%s err=%v", reportID, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTimeline(reportID, entries))
}

// GetFleetCredits reports the remaining valuation credits of one fleet
// payment.
func (h *ReportHandler) GetFleetCredits(c *gin.Context) {
	intentID := c.Query("payment_intent_id")

	credits, err := h.fleet.RemainingCredits(c.Request.Context(), intentID)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FleetCreditsResponse{
		PaymentIntentID: credits.PaymentIntentID,
		Included:        credits.Included,
		Used:            credits.Used,
		Remaining:       credits.Remaining,
		CanUse:          credits.CanUse,
	})
}
