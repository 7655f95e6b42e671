package handlers

import (
	"errors"
	"net/http"

	"fleetval/internal/adapter/http/dto/request"
	"fleetval/internal/usecase"
	"fleetval/pkg"
)

// mapReportError translates usecase sentinels into boundary errors. Webhook
// handlers never use this: their errors are absorbed, not surfaced.
func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID),
		errors.Is(err, usecase.ErrInvalidReportKind),
		errors.Is(err, usecase.ErrInvalidUnitCount),
		errors.Is(err, usecase.ErrInvalidReportID),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidPaymentIntentID),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrCreditsNonFleet),
		errors.Is(err, usecase.ErrNoCanonicalPrice),
		errors.Is(err, request.ErrUnknownReportKind):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReportNotFound):
		return pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Report not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotReportOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller does not own this report", http.StatusForbidden)
	case errors.Is(err, usecase.ErrReportNotDraft):
		return pkg.NewDomainErrorSimple("REPORT_NOT_DRAFT", "Report is not in draft status", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoFleetCredits):
		return pkg.NewDomainErrorSimple("NO_FLEET_CREDITS", "No fleet valuation credits remaining", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentAmountMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_AMOUNT_MISMATCH", "Payment amount does not match the report price", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
