package entities

import "time"

// ReportEventType tags domain events consumed by the notification
// dispatcher. Events are best-effort and do not participate in correctness.

type ReportEventType string

const (
	EventReportSubmitted ReportEventType = "report.submitted"
	EventStatusChanged   ReportEventType = "report.status_changed"
	EventReportOverdue   ReportEventType = "report.overdue"
	EventPaymentFailed   ReportEventType = "payment.failed"
	EventPaymentCanceled ReportEventType = "payment.canceled"
	EventChargeRefunded  ReportEventType = "charge.refunded"
)

type ReportEvent struct {
	Type       ReportEventType `json:"type"`
	ReportID   string          `json:"report_id,omitempty"`
	OwnerID    string          `json:"owner_id,omitempty"`
	OldStatus  ReportStatus    `json:"old_status,omitempty"`
	NewStatus  ReportStatus    `json:"new_status,omitempty"`
	IntentID   string          `json:"payment_intent_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
