package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fleetval/internal/domain/entities"
	"fleetval/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidReportID   = errors.New("invalid report id")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrReportNotFound    = errors.New("report not found")
)

// IStatusUseCase is the report state machine: the only path by which a
// report's status ever changes.
//
// Apply contract:
//   - target == current status: no-op success (idempotent).
//   - edge not in the transition table: ErrInvalidTransition, unless the
//     actor is an admin forcing a forward state (never DRAFT).
//   - on success: status-specific timestamp is stamped (set once), entering
//     SUBMITTED also fixes the turnaround deadline, a history row is
//     appended best-effort, and a domain event is emitted.

type IStatusUseCase interface {
	Apply(ctx context.Context, reportID string, target entities.ReportStatus, actor entities.Actor, reason string) (entities.Report, error)
	SweepOverdue(ctx context.Context, now time.Time) (int, error)
}

type StatusUseCase struct {
	repo     interfaces.IReportRepository
	history  interfaces.IStatusHistoryRepository
	notifier interfaces.INotificationDispatcher
}

var _ IStatusUseCase = (*StatusUseCase)(nil)

func NewStatusUseCase(repo interfaces.IReportRepository, history interfaces.IStatusHistoryRepository, notifier interfaces.INotificationDispatcher) *StatusUseCase {
	return &StatusUseCase{repo: repo, history: history, notifier: notifier}
}

// statusApplyAttempts bounds the re-read loop when a conditional status write
// loses a race. One re-read is normally enough; duplicate webhook deliveries
// settle on the no-op branch.
const statusApplyAttempts = 3

func (u *StatusUseCase) Apply(ctx context.Context, reportID string, target entities.ReportStatus, actor entities.Actor, reason string) (entities.Report, error) {
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return entities.Report{}, ErrInvalidReportID
	}
	if !target.Valid() || target == entities.StatusDeleted {
		return entities.Report{}, ErrInvalidStatus
	}
	if u.repo == nil {
		return entities.Report{}, errors.New("report repository not configured")
	}

	for attempt := 1; attempt <= statusApplyAttempts; attempt++ {
		report, err := u.repo.GetByID(ctx, reportID)
		if err != nil {
			return entities.Report{}, err
		}
		if report.ID == "" {
			return entities.Report{}, ErrReportNotFound
		}

		if report.Status == target {
			// Idempotent: duplicate deliveries observe the committed state.
			return report, nil
		}

		if !entities.CanTransition(report.Status, target) {
			if !(actor.Admin && entities.AdminCanForce(target)) {
				log.Printf("[status][usecase] invalid transition report_id=%s from=%s to=%s actor=%s admin=%t",
					reportID, report.Status, target, actor.ID, actor.Admin)
				return entities.Report{}, ErrInvalidTransition
			}
			log.Printf("[status][usecase] admin override report_id=%s from=%s to=%s actor=%s",
				reportID, report.Status, target, actor.ID)
		}

		now := time.Now().UTC()
		var deadline *time.Time
		if target == entities.StatusSubmitted && report.TurnaroundDeadline == nil {
			d := TurnaroundDeadline(report.Kind, now)
			deadline = &d
		}

		updated, err := u.repo.TransitionStatus(ctx, reportID, report.Status, target, now, deadline)
		if err != nil {
			return entities.Report{}, err
		}
		if updated.ID == "" {
			// Conditional check lost a race; re-read and re-evaluate.
			log.Printf("[status][usecase] transition conflict report_id=%s to=%s attempt=%d", reportID, target, attempt)
			continue
		}

		log.Printf("[status][usecase] transition committed report_id=%s from=%s to=%s actor=%s",
			reportID, report.Status, target, actor.ID)

		u.appendHistory(ctx, report.Status, updated, actor, reason)
		u.emit(ctx, report.Status, updated)
		return updated, nil
	}

	return entities.Report{}, ErrInvalidTransition
}

// appendHistory records the audit row. The status change is the durable fact;
// a failed append is logged and swallowed.
func (u *StatusUseCase) appendHistory(ctx context.Context, from entities.ReportStatus, report entities.Report, actor entities.Actor, reason string) {
	if u.history == nil {
		return
	}
	entry := entities.StatusHistoryEntry{
		ID:        uuid.NewString(),
		ReportID:  report.ID,
		OldStatus: from,
		NewStatus: report.Status,
		ChangedBy: actor.ID,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.history.Append(ctx, entry); err != nil {
		log.Printf("[status][usecase] history append failed report_id=%s from=%s to=%s err=%v",
			report.ID, from, report.Status, err)
	}
}

func (u *StatusUseCase) emit(ctx context.Context, from entities.ReportStatus, report entities.Report) {
	if u.notifier == nil {
		return
	}
	eventType := entities.EventStatusChanged
	switch report.Status {
	case entities.StatusSubmitted:
		eventType = entities.EventReportSubmitted
	case entities.StatusOverdue:
		eventType = entities.EventReportOverdue
	}
	event := entities.ReportEvent{
		Type:       eventType,
		ReportID:   report.ID,
		OwnerID:    report.OwnerID,
		OldStatus:  from,
		NewStatus:  report.Status,
		IntentID:   report.PaymentIntentID,
		OccurredAt: time.Now().UTC(),
	}
	if err := u.notifier.Emit(ctx, event); err != nil {
		log.Printf("[status][usecase] event emit failed report_id=%s type=%s err=%v", report.ID, eventType, err)
	}
}

// SweepOverdue marks SUBMITTED reports whose turnaround deadline has passed
// as OVERDUE. Reports already picked up (IN_PROGRESS or later) are never
// touched. Returns the number of reports transitioned.
func (u *StatusUseCase) SweepOverdue(ctx context.Context, now time.Time) (int, error) {
	if u.repo == nil {
		return 0, errors.New("report repository not configured")
	}
	submitted, err := u.repo.ListByStatus(ctx, entities.StatusSubmitted)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, r := range submitted {
		if !TimeRemaining(r, now).IsOverdue {
			continue
		}
		if _, err := u.Apply(ctx, r.ID, entities.StatusOverdue, entities.SystemActor, "turnaround deadline passed"); err != nil {
			// A concurrent admin action may have moved the report on; skip.
			log.Printf("[status][usecase] overdue sweep skip report_id=%s err=%v", r.ID, err)
			continue
		}
		marked++
	}
	log.Printf("[status][usecase] overdue sweep done candidates=%d marked=%d", len(submitted), marked)
	return marked, nil
}
