package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"fleetval/internal/domain/entities"
	"fleetval/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentAmount  = errors.New("invalid payment amount")
	ErrPaymentAmountMismatch = errors.New("payment amount does not match canonical price")
)

// IPaymentReconcilerUseCase is the single authorized path by which a report
// moves DRAFT -> SUBMITTED given an external payment confirmation.
//
// MarkPaid is idempotent and tolerant of duplicate/out-of-order delivery:
// reconciliation is keyed by payment intent id, never by report id. The
// conditional intent claim in the repository is the serialization point; a
// losing concurrent call re-resolves the canonical report and observes the
// already-committed SUBMITTED status. A confirmed payment has no
// cancellation path: callers retry transient failures to success.

type IPaymentReconcilerUseCase interface {
	MarkPaid(ctx context.Context, paymentIntentID string, amount entities.Money, reportIDHint string, actor entities.Actor) (entities.Report, error)

	// ResolveHint locates the caller's most recent draft as a best-effort
	// hint for confirmation calls that name no report.
	ResolveHint(ctx context.Context, ownerID string) string
}

type PaymentReconcilerUseCase struct {
	repo     interfaces.IReportRepository
	statusUC IStatusUseCase
}

var _ IPaymentReconcilerUseCase = (*PaymentReconcilerUseCase)(nil)

func NewPaymentReconcilerUseCase(repo interfaces.IReportRepository, statusUC IStatusUseCase) *PaymentReconcilerUseCase {
	return &PaymentReconcilerUseCase{repo: repo, statusUC: statusUC}
}

func (u *PaymentReconcilerUseCase) MarkPaid(ctx context.Context, paymentIntentID string, amount entities.Money, reportIDHint string, actor entities.Actor) (entities.Report, error) {
	paymentIntentID = strings.TrimSpace(paymentIntentID)
	reportIDHint = strings.TrimSpace(reportIDHint)
	if paymentIntentID == "" {
		return entities.Report{}, ErrInvalidPaymentIntentID
	}
	if amount.AmountMinor <= 0 {
		return entities.Report{}, ErrInvalidPaymentAmount
	}
	if u.repo == nil || u.statusUC == nil {
		return entities.Report{}, errors.New("payment reconciler not configured")
	}
	log.Printf("[reconciler][usecase] mark-paid start intent_id=%s amount=%s hint=%q actor=%s",
		paymentIntentID, amount, reportIDHint, actor.ID)

	// 1. The canonical report is whichever non-deleted report already holds
	// this intent; the hint only matters when no such report exists yet.
	candidate, err := u.repo.FindByPaymentIntentID(ctx, paymentIntentID)
	if err != nil {
		return entities.Report{}, err
	}
	if candidate.ID == "" {
		if reportIDHint == "" {
			log.Printf("[reconciler][usecase] no report for intent_id=%s and no hint", paymentIntentID)
			return entities.Report{}, ErrReportNotFound
		}
		candidate, err = u.repo.GetByID(ctx, reportIDHint)
		if err != nil {
			return entities.Report{}, err
		}
		if candidate.ID == "" {
			return entities.Report{}, ErrReportNotFound
		}
	}

	// 2. Amount verification happens before any mutation. Zero tolerance:
	// a mismatch is a security event, not a rounding concern.
	price, err := CanonicalPrice(candidate)
	if err != nil {
		return entities.Report{}, err
	}
	if !amount.Equal(price) {
		log.Printf("[reconciler][usecase] SECURITY amount mismatch intent_id=%s report_id=%s asserted=%s canonical=%s actor=%s",
			paymentIntentID, candidate.ID, amount, price, actor.ID)
		return entities.Report{}, ErrPaymentAmountMismatch
	}

	// 3. First committer wins the intent claim; everyone else adopts the
	// winner as canonical.
	winnerID, err := u.repo.ClaimPaymentIntent(ctx, paymentIntentID, candidate.ID)
	if err != nil {
		return entities.Report{}, err
	}
	canonical := candidate
	if winnerID != candidate.ID {
		canonical, err = u.repo.GetByID(ctx, winnerID)
		if err != nil {
			return entities.Report{}, err
		}
		if canonical.ID == "" {
			return entities.Report{}, ErrReportNotFound
		}
	}

	// 4. A hinted report that is not the canonical one is a duplicate draft
	// created by the submit/webhook race. Soft-delete it; resolved
	// internally, never surfaced.
	if reportIDHint != "" && reportIDHint != canonical.ID {
		if err := u.repo.SoftDelete(ctx, reportIDHint); err != nil {
			log.Printf("[reconciler][usecase] duplicate soft-delete failed report_id=%s err=%v", reportIDHint, err)
		} else {
			log.Printf("[reconciler][usecase] duplicate payment intent resolved intent_id=%s canonical=%s deleted=%s",
				paymentIntentID, canonical.ID, reportIDHint)
		}
	}

	// 5. Record the payment. Repeating for the same intent is a no-op write.
	canonical, err = u.repo.AttachPayment(ctx, canonical.ID, paymentIntentID, amount, "succeeded")
	if err != nil {
		return entities.Report{}, err
	}

	// 6. First payment on a fleet report opens its own 5-credit pool and
	// consumes the first credit. Credits are per payment, not per user.
	if canonical.Kind == entities.ReportKindFleetValuation {
		canonical, err = u.repo.InitUsageMetadata(ctx, canonical.ID, paymentIntentID,
			entities.FleetValuationsIncluded, 1)
		if err != nil {
			return entities.Report{}, err
		}
	}

	// 7. DRAFT -> SUBMITTED through the state machine. A report already past
	// DRAFT was reconciled by an earlier delivery: return it untouched
	// rather than regress it, which is what makes blind retry safe.
	if canonical.Status != entities.StatusDraft {
		log.Printf("[reconciler][usecase] mark-paid no-op intent_id=%s report_id=%s status=%s",
			paymentIntentID, canonical.ID, canonical.Status)
		return canonical, nil
	}
	updated, err := u.statusUC.Apply(ctx, canonical.ID, entities.StatusSubmitted, entities.SystemActor, "payment reconciled")
	if errors.Is(err, ErrInvalidTransition) {
		// Lost the final race to a concurrent confirmation; the committed
		// state is the answer.
		return u.repo.GetByID(ctx, canonical.ID)
	}
	if err != nil {
		return entities.Report{}, err
	}
	log.Printf("[reconciler][usecase] mark-paid success intent_id=%s report_id=%s status=%s amount=%s",
		paymentIntentID, updated.ID, updated.Status, amount)
	return updated, nil
}

func (u *PaymentReconcilerUseCase) ResolveHint(ctx context.Context, ownerID string) string {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" || u.repo == nil {
		return ""
	}
	draft, err := u.repo.LatestDraftByOwnerID(ctx, ownerID)
	if err != nil {
		log.Printf("[reconciler][usecase] hint lookup failed owner_id=%s err=%v", ownerID, err)
		return ""
	}
	return draft.ID
}
