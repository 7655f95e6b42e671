package interfaces

import (
	"context"
	"time"

	"fleetval/internal/domain/entities"
)

// IReportRepository abstracts DynamoDB persistence for Report.
//
// Every "current rows" read applies the not-deleted filter; soft-deleted
// reports are retained for audit but invisible to lookups and counts.
// ClaimPaymentIntent and TransitionStatus are conditional writes: they are
// the serialization points the reconciler relies on instead of in-process
// locks.

type IReportRepository interface {
	Create(ctx context.Context, r entities.Report) (entities.Report, error)
	GetByID(ctx context.Context, id string) (entities.Report, error)
	FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.Report, error)
	LatestDraftByOwnerID(ctx context.Context, ownerID string) (entities.Report, error)
	ListByCreditIntentID(ctx context.Context, creditIntentID string) ([]entities.Report, error)
	ListByStatus(ctx context.Context, status entities.ReportStatus) ([]entities.Report, error)

	// ClaimPaymentIntent atomically binds a payment intent to a report.
	// First committer wins; the returned id is the report actually holding
	// the claim (the caller's candidate, or a previous winner).
	ClaimPaymentIntent(ctx context.Context, paymentIntentID, reportID string) (string, error)

	// AttachPayment records the reconciled payment on the report. Safe to
	// repeat for the same intent; refuses to overwrite a different one.
	AttachPayment(ctx context.Context, reportID, paymentIntentID string, amount entities.Money, paymentStatus string) (entities.Report, error)

	// TransitionStatus commits from -> to with the given entered-at instant
	// and, when non-nil, the set-once turnaround deadline. Status-specific
	// timestamps and the deadline are written with if_not_exists semantics.
	// Returns a zero-value report when the conditional check loses a race.
	TransitionStatus(ctx context.Context, id string, from, to entities.ReportStatus, enteredAt time.Time, deadline *time.Time) (entities.Report, error)

	// InitUsageMetadata sets the fleet credit pool counters if unset.
	InitUsageMetadata(ctx context.Context, reportID, creditIntentID string, included, used int) (entities.Report, error)

	SoftDelete(ctx context.Context, id string) error
}
