package entities

import "time"

// ReportKind identifies which valuation product was purchased.

type ReportKind string

const (
	ReportKindSpotCheck      ReportKind = "spot_check"
	ReportKindProfessional   ReportKind = "professional"
	ReportKindFleetValuation ReportKind = "fleet_valuation"
)

func (k ReportKind) Valid() bool {
	switch k {
	case ReportKindSpotCheck, ReportKindProfessional, ReportKindFleetValuation:
		return true
	}
	return false
}

// ReportStatus is the single source of truth for a report's lifecycle
// position. It is never represented as a bare string outside serialization
// boundaries.

type ReportStatus string

const (
	StatusDraft        ReportStatus = "draft"
	StatusSubmitted    ReportStatus = "submitted"
	StatusInProgress   ReportStatus = "in_progress"
	StatusCompleted    ReportStatus = "completed"
	StatusDelivered    ReportStatus = "delivered"
	StatusNeedMoreInfo ReportStatus = "need_more_info"
	StatusOverdue      ReportStatus = "overdue"
	StatusDeleted      ReportStatus = "deleted"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusInProgress, StatusCompleted,
		StatusDelivered, StatusNeedMoreInfo, StatusOverdue, StatusDeleted:
		return true
	}
	return false
}

// transitions is the closed edge table of the report lifecycle.
// DELIVERED is terminal; DELETED is reached via soft delete only and is
// therefore not an edge target here. OVERDUE is entered from SUBMITTED only:
// the sweep never overrides a report an admin has already picked up.
var transitions = map[ReportStatus][]ReportStatus{
	StatusDraft:        {StatusSubmitted},
	StatusSubmitted:    {StatusInProgress, StatusNeedMoreInfo, StatusCompleted, StatusDelivered, StatusOverdue},
	StatusInProgress:   {StatusCompleted, StatusNeedMoreInfo, StatusDelivered},
	StatusCompleted:    {StatusDelivered},
	StatusNeedMoreInfo: {StatusInProgress, StatusSubmitted, StatusCompleted, StatusDelivered},
	StatusOverdue:      {StatusInProgress, StatusCompleted, StatusDelivered},
}

// adminForwardTargets are the states an admin may force a report into even
// when the edge is not in the table. DRAFT is never a valid target.
var adminForwardTargets = map[ReportStatus]bool{
	StatusSubmitted:    true,
	StatusInProgress:   true,
	StatusCompleted:    true,
	StatusDelivered:    true,
	StatusNeedMoreInfo: true,
}

// CanTransition reports whether from -> to is an edge of the lifecycle table.
func CanTransition(from, to ReportStatus) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// AdminCanForce reports whether an admin override may move a report into
// target regardless of the current status.
func AdminCanForce(target ReportStatus) bool {
	return adminForwardTargets[target]
}

// FleetTier buckets the unit count of a Fleet Valuation purchase.

type FleetTier string

const (
	FleetTier1To5   FleetTier = "1-5"
	FleetTier6To10  FleetTier = "6-10"
	FleetTier11To25 FleetTier = "11-25"
	FleetTier26To50 FleetTier = "26-50"
)

// ResolveFleetTier maps a unit count (1..50) to its pricing tier.
// Returns false when the count is out of range.
func ResolveFleetTier(unitCount int) (FleetTier, bool) {
	switch {
	case unitCount >= 1 && unitCount <= 5:
		return FleetTier1To5, true
	case unitCount >= 6 && unitCount <= 10:
		return FleetTier6To10, true
	case unitCount >= 11 && unitCount <= 25:
		return FleetTier11To25, true
	case unitCount >= 26 && unitCount <= 50:
		return FleetTier26To50, true
	}
	return "", false
}

// FleetValuationsIncluded is the number of individual crane valuations
// bundled into a single Fleet Valuation payment. Credits are per payment
// intent, not per user.
const FleetValuationsIncluded = 5

// Report is the central entity: one purchased valuation report tracked from
// DRAFT through DELIVERED, gated by a reconciled payment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_intent_id-index): payment_intent_id
//   - GSI2 (owner_id-index): owner_id
//   - GSI3 (credit_intent_id-index): credit_intent_id
//
// PaymentIntentID is the reconciliation/dedup key and must be unique among
// non-deleted reports. CreditIntentID links a fleet unit valuation to the
// payment intent whose credit pool it consumes; several reports may share it.

type Report struct {
	ID      string     `json:"id"`
	OwnerID string     `json:"owner_id"`
	Kind    ReportKind `json:"report_kind"`

	Status ReportStatus `json:"status"`

	FleetTier FleetTier `json:"fleet_tier,omitempty"`
	UnitCount int       `json:"unit_count,omitempty"`

	PaymentIntentID string `json:"payment_intent_id,omitempty"`
	CreditIntentID  string `json:"credit_intent_id,omitempty"`
	AmountPaid      *Money `json:"amount_paid,omitempty"`
	PaymentStatus   string `json:"payment_status,omitempty"`

	ValuationsIncluded int `json:"valuations_included,omitempty"`
	ValuationsUsed     int `json:"valuations_used,omitempty"`

	Deleted bool `json:"deleted"`

	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	SubmittedAt        *time.Time `json:"submitted_at,omitempty"`
	InProgressAt       *time.Time `json:"in_progress_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	NeedMoreInfoAt     *time.Time `json:"need_more_info_at,omitempty"`
	OverdueAt          *time.Time `json:"overdue_at,omitempty"`
	TurnaroundDeadline *time.Time `json:"turnaround_deadline,omitempty"`
}

// StatusTimestamp returns the pointer to the timestamp recorded when the
// report entered the given status, or nil for statuses without one.
func (r *Report) StatusTimestamp(s ReportStatus) *time.Time {
	switch s {
	case StatusSubmitted:
		return r.SubmittedAt
	case StatusInProgress:
		return r.InProgressAt
	case StatusCompleted:
		return r.CompletedAt
	case StatusDelivered:
		return r.DeliveredAt
	case StatusNeedMoreInfo:
		return r.NeedMoreInfoAt
	case StatusOverdue:
		return r.OverdueAt
	}
	return nil
}

// Actor identifies who is driving a transition: a user, an admin, or the
// system itself (payment reconciliation, overdue sweep).

type Actor struct {
	ID    string
	Admin bool
}

// SystemActor drives transitions that originate from reconciliation or the
// overdue sweep rather than from a caller. It carries no admin override:
// system paths only ever walk table edges, so a duplicate delivery can never
// force a report backwards.
var SystemActor = Actor{ID: "system"}
