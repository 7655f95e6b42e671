package handlers

import (
	"log"
	"net/http"
	"time"

	"fleetval/internal/adapter/http/dto/request"
	"fleetval/internal/adapter/http/dto/response"
	"fleetval/internal/adapter/http/middleware"
	"fleetval/pkg"

	"fleetval/internal/usecase"

	"github.com/gin-gonic/gin"
)

// StatusHandler exposes the admin-side state machine operations: direct
// transitions and the overdue sweep.

type StatusHandler struct {
	status usecase.IStatusUseCase
}

func NewStatusHandler(status usecase.IStatusUseCase) *StatusHandler {
	return &StatusHandler{status: status}
}

// UpdateStatus applies an admin-driven transition. Route is admin-guarded;
// the usecase re-checks edge validity for the actor anyway.
func (h *StatusHandler) UpdateStatus(c *gin.Context) {
	actor := middleware.GetActor(c)
	reportID := c.Param("id")

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	target, ok := req.ResolveStatus()
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unknown status", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.status.Apply(c.Request.Context(), reportID, target, actor, req.Notes)
	if err != nil {
		log.Printf("[status][handler] update failed report_id=%s target=%s actor=%s err=%v",
			reportID, target, actor.ID, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[status][handler] update success report_id=%s status=%s actor=%s",
		updated.ID, updated.Status, actor.ID)

	c.JSON(http.StatusOK, response.FromReport(updated))
}

// SweepOverdue lets an external scheduler mark overdue SUBMITTED reports.
func (h *StatusHandler) SweepOverdue(c *gin.Context) {
	marked, err := h.status.SweepOverdue(c.Request.Context(), time.Now().UTC())
	if err != nil {
		log.Printf("[status][handler] overdue sweep failed err=%v", err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"marked_overdue": marked})
}
