package response

import (
	"time"

	"fleetval/internal/domain/entities"
)

type ReportResponse struct {
	ID              string `json:"id"`
	OwnerID         string `json:"owner_id"`
	ReportKind      string `json:"report_kind"`
	Status          string `json:"status"`
	FleetTier       string `json:"fleet_tier,omitempty"`
	UnitCount       int    `json:"unit_count,omitempty"`
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
	AmountPaid      string `json:"amount_paid,omitempty"`
	PaymentStatus   string `json:"payment_status,omitempty"`

	ValuationsIncluded int `json:"valuations_included,omitempty"`
	ValuationsUsed     int `json:"valuations_used,omitempty"`

	CreatedAt          time.Time  `json:"created_at"`
	SubmittedAt        *time.Time `json:"submitted_at,omitempty"`
	InProgressAt       *time.Time `json:"in_progress_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	NeedMoreInfoAt     *time.Time `json:"need_more_info_at,omitempty"`
	OverdueAt          *time.Time `json:"overdue_at,omitempty"`
	TurnaroundDeadline *time.Time `json:"turnaround_deadline,omitempty"`

	IsOverdue        bool  `json:"is_overdue"`
	RemainingSeconds int64 `json:"turnaround_remaining_seconds,omitempty"`
}

func FromReport(r entities.Report) ReportResponse {
	res := ReportResponse{
		ID:                 r.ID,
		OwnerID:            r.OwnerID,
		ReportKind:         string(r.Kind),
		Status:             string(r.Status),
		FleetTier:          string(r.FleetTier),
		UnitCount:          r.UnitCount,
		PaymentIntentID:    r.PaymentIntentID,
		PaymentStatus:      r.PaymentStatus,
		ValuationsIncluded: r.ValuationsIncluded,
		ValuationsUsed:     r.ValuationsUsed,
		CreatedAt:          r.CreatedAt,
		SubmittedAt:        r.SubmittedAt,
		InProgressAt:       r.InProgressAt,
		CompletedAt:        r.CompletedAt,
		DeliveredAt:        r.DeliveredAt,
		NeedMoreInfoAt:     r.NeedMoreInfoAt,
		OverdueAt:          r.OverdueAt,
		TurnaroundDeadline: r.TurnaroundDeadline,
	}
	if r.AmountPaid != nil {
		res.AmountPaid = r.AmountPaid.String()
	}
	return res
}

// WithTurnaround annotates the response with the SLA evaluation at now.
func (r ReportResponse) WithTurnaround(isOverdue bool, remaining time.Duration) ReportResponse {
	r.IsOverdue = isOverdue
	if remaining > 0 {
		r.RemainingSeconds = int64(remaining.Seconds())
	}
	return r
}
