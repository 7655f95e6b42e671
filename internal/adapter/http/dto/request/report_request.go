package request

import (
	"errors"
	"strings"

	"fleetval/internal/domain/entities"
)

var ErrUnknownReportKind = errors.New("unknown report kind")

// CreateReportRequest creates a DRAFT report. CreditPaymentIntentID creates a
// fleet unit valuation against an existing credit pool instead of requiring a
// new payment. No price field exists here on purpose: prices are always
// computed server-side.
type CreateReportRequest struct {
	ReportKind            string `json:"report_kind" binding:"required"`
	UnitCount             int    `json:"unit_count"`
	CreditPaymentIntentID string `json:"credit_payment_intent_id"`
}

func (r CreateReportRequest) ResolveKind() (entities.ReportKind, error) {
	switch strings.TrimSpace(strings.ToLower(r.ReportKind)) {
	case "spot_check", "spotcheck", "spot-check":
		return entities.ReportKindSpotCheck, nil
	case "professional":
		return entities.ReportKindProfessional, nil
	case "fleet_valuation", "fleet", "fleet-valuation":
		return entities.ReportKindFleetValuation, nil
	}
	return "", ErrUnknownReportKind
}

// UpdateStatusRequest drives the admin status endpoint.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

func (r UpdateStatusRequest) ResolveStatus() (entities.ReportStatus, bool) {
	s := entities.ReportStatus(strings.TrimSpace(strings.ToLower(r.Status)))
	if !s.Valid() {
		return "", false
	}
	return s, true
}
