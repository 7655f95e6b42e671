package usecase

import (
	"time"

	"fleetval/internal/domain/entities"
)

// Turnaround SLAs per report kind. The deadline is computed once, when the
// report enters SUBMITTED, and never recomputed.
const (
	turnaroundSingleUnit = 24 * time.Hour
	turnaroundFleet      = 72 * time.Hour
)

// TurnaroundSLA returns the SLA window for a report kind.
func TurnaroundSLA(kind entities.ReportKind) time.Duration {
	if kind == entities.ReportKindFleetValuation {
		return turnaroundFleet
	}
	return turnaroundSingleUnit
}

// TurnaroundDeadline computes submittedAt + SLA.
func TurnaroundDeadline(kind entities.ReportKind, submittedAt time.Time) time.Time {
	return submittedAt.Add(TurnaroundSLA(kind))
}

// TimeRemainingResult is a pure evaluation of now against the deadline; it
// never mutates the report. IsOverdue only flags SUBMITTED reports as
// overdue candidates: once an admin picks the report up it stays on its
// current status regardless of the deadline.

type TimeRemainingResult struct {
	IsOverdue bool          `json:"is_overdue"`
	Remaining time.Duration `json:"remaining"`
}

func TimeRemaining(r entities.Report, now time.Time) TimeRemainingResult {
	if r.TurnaroundDeadline == nil {
		return TimeRemainingResult{}
	}
	remaining := r.TurnaroundDeadline.Sub(now)
	overdue := remaining < 0 && r.Status == entities.StatusSubmitted
	return TimeRemainingResult{IsOverdue: overdue, Remaining: remaining}
}
