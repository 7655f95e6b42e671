package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"fleetval/internal/domain/entities"
	"fleetval/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOwnerID     = errors.New("invalid owner id")
	ErrInvalidReportKind  = errors.New("invalid report kind")
	ErrInvalidUnitCount   = errors.New("invalid unit count")
	ErrReportNotDraft     = errors.New("report is not a draft")
	ErrNotReportOwner     = errors.New("caller does not own this report")
	ErrNoFleetCredits     = errors.New("no fleet valuation credits remaining")
	ErrCreditsNonFleet    = errors.New("fleet credits only apply to fleet valuation reports")
	ErrGatewayUnavailable = errors.New("payment gateway not configured")
)

// IReportUseCase exposes report CRUD-side operations: draft creation (the
// only way a report comes into existence), gateway intent creation with a
// server-computed price, reads, and the timeline view.

type IReportUseCase interface {
	CreateDraft(ctx context.Context, in CreateDraftInput) (entities.Report, error)
	CreatePaymentIntent(ctx context.Context, reportID string, actor entities.Actor) (PaymentIntentResult, error)
	GetByID(ctx context.Context, reportID string, actor entities.Actor) (entities.Report, error)
	Timeline(ctx context.Context, reportID string, actor entities.Actor) ([]entities.StatusHistoryEntry, error)
}

// CreateDraftInput carries the caller-supplied fields of a new draft.
// CreditIntentID creates a fleet unit valuation against an already-paid
// credit pool instead of requiring a new payment.
type CreateDraftInput struct {
	OwnerID        string
	Kind           entities.ReportKind
	UnitCount      int
	CreditIntentID string
}

// PaymentIntentResult is what the client needs to drive the gateway checkout.
type PaymentIntentResult struct {
	ReportID         string          `json:"report_id"`
	PaymentIntentID  string          `json:"payment_intent_id"`
	Amount           entities.Money  `json:"amount"`
	ProviderStatus   string          `json:"provider_status"`
	ProviderResponse json.RawMessage `json:"provider_response,omitempty"`
}

type ReportUseCase struct {
	repo     interfaces.IReportRepository
	history  interfaces.IStatusHistoryRepository
	gateway  interfaces.IPaymentGateway
	fleet    IFleetUsageUseCase
	statusUC IStatusUseCase
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IReportRepository, history interfaces.IStatusHistoryRepository, gateway interfaces.IPaymentGateway, fleet IFleetUsageUseCase, statusUC IStatusUseCase) *ReportUseCase {
	return &ReportUseCase{repo: repo, history: history, gateway: gateway, fleet: fleet, statusUC: statusUC}
}

func (u *ReportUseCase) CreateDraft(ctx context.Context, in CreateDraftInput) (entities.Report, error) {
	in.OwnerID = strings.TrimSpace(in.OwnerID)
	in.CreditIntentID = strings.TrimSpace(in.CreditIntentID)
	if in.OwnerID == "" {
		return entities.Report{}, ErrInvalidOwnerID
	}
	if !in.Kind.Valid() {
		return entities.Report{}, ErrInvalidReportKind
	}
	if u.repo == nil {
		return entities.Report{}, errors.New("report repository not configured")
	}

	r := entities.Report{
		ID:      uuid.NewString(),
		OwnerID: in.OwnerID,
		Kind:    in.Kind,
		Status:  entities.StatusDraft,
	}

	if in.Kind == entities.ReportKindFleetValuation {
		tier, ok := entities.ResolveFleetTier(in.UnitCount)
		if !ok {
			return entities.Report{}, ErrInvalidUnitCount
		}
		r.FleetTier = tier
		r.UnitCount = in.UnitCount
	} else if in.UnitCount > 1 {
		return entities.Report{}, ErrInvalidUnitCount
	}

	if in.CreditIntentID != "" {
		if in.Kind != entities.ReportKindFleetValuation {
			return entities.Report{}, ErrCreditsNonFleet
		}
		if u.fleet == nil {
			return entities.Report{}, errors.New("fleet usage tracker not configured")
		}
		ok, reason, err := u.fleet.CanCreateReport(ctx, in.OwnerID, in.CreditIntentID)
		if err != nil {
			return entities.Report{}, err
		}
		if !ok {
			log.Printf("[report][usecase] fleet credit denied owner_id=%s credit_intent_id=%s reason=%s",
				in.OwnerID, in.CreditIntentID, reason)
			return entities.Report{}, ErrNoFleetCredits
		}
		r.CreditIntentID = in.CreditIntentID
	}

	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.Report{}, err
	}
	log.Printf("[report][usecase] draft created report_id=%s owner_id=%s kind=%s tier=%s",
		created.ID, created.OwnerID, created.Kind, created.FleetTier)

	// A credit-backed unit valuation is already paid for by its pool; it
	// enters the queue through the state machine like any reconciled report.
	if created.CreditIntentID != "" && u.statusUC != nil {
		submitted, err := u.statusUC.Apply(ctx, created.ID, entities.StatusSubmitted, entities.SystemActor, "fleet credit consumed")
		if err != nil {
			return entities.Report{}, err
		}
		return submitted, nil
	}
	return created, nil
}

func (u *ReportUseCase) CreatePaymentIntent(ctx context.Context, reportID string, actor entities.Actor) (PaymentIntentResult, error) {
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return PaymentIntentResult{}, ErrInvalidReportID
	}
	if u.gateway == nil {
		return PaymentIntentResult{}, ErrGatewayUnavailable
	}

	report, err := u.repo.GetByID(ctx, reportID)
	if err != nil {
		return PaymentIntentResult{}, err
	}
	if report.ID == "" {
		return PaymentIntentResult{}, ErrReportNotFound
	}
	if !actor.Admin && report.OwnerID != actor.ID {
		return PaymentIntentResult{}, ErrNotReportOwner
	}
	if report.Status != entities.StatusDraft {
		return PaymentIntentResult{}, ErrReportNotDraft
	}

	// The price is always computed here; any client-asserted amount was
	// dropped at the DTO boundary.
	price, err := CanonicalPrice(report)
	if err != nil {
		return PaymentIntentResult{}, err
	}

	description := fmt.Sprintf("%s valuation report %s", report.Kind, report.ID)
	intentID, providerStatus, raw, err := u.gateway.CreatePaymentIntent(ctx, report.ID, price, description)
	if err != nil {
		log.Printf("[report][usecase] payment intent failed report_id=%s err=%v", report.ID, err)
		return PaymentIntentResult{}, err
	}
	log.Printf("[report][usecase] payment intent created report_id=%s intent_id=%s amount=%s",
		report.ID, intentID, price)

	return PaymentIntentResult{
		ReportID:         report.ID,
		PaymentIntentID:  intentID,
		Amount:           price,
		ProviderStatus:   providerStatus,
		ProviderResponse: raw,
	}, nil
}

func (u *ReportUseCase) GetByID(ctx context.Context, reportID string, actor entities.Actor) (entities.Report, error) {
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return entities.Report{}, ErrInvalidReportID
	}
	report, err := u.repo.GetByID(ctx, reportID)
	if err != nil {
		return entities.Report{}, err
	}
	if report.ID == "" {
		return entities.Report{}, ErrReportNotFound
	}
	if !actor.Admin && report.OwnerID != actor.ID {
		return entities.Report{}, ErrNotReportOwner
	}
	return report, nil
}

// Timeline returns the ordered status history, synthesizing entries for
// timestamp fields that lack a history row (rows written before history
// existed, or lost to the best-effort append).
func (u *ReportUseCase) Timeline(ctx context.Context, reportID string, actor entities.Actor) ([]entities.StatusHistoryEntry, error) {
	report, err := u.GetByID(ctx, reportID, actor)
	if err != nil {
		return nil, err
	}

	var entries []entities.StatusHistoryEntry
	if u.history != nil {
		entries, err = u.history.ListByReportID(ctx, report.ID)
		if err != nil {
			return nil, err
		}
	}

	recorded := make(map[entities.ReportStatus]bool, len(entries))
	for _, e := range entries {
		recorded[e.NewStatus] = true
	}

	for _, s := range []entities.ReportStatus{
		entities.StatusSubmitted, entities.StatusInProgress, entities.StatusCompleted,
		entities.StatusDelivered, entities.StatusNeedMoreInfo, entities.StatusOverdue,
	} {
		ts := report.StatusTimestamp(s)
		if ts == nil || recorded[s] {
			continue
		}
		entries = append(entries, entities.StatusHistoryEntry{
			ID:          uuid.NewString(),
			ReportID:    report.ID,
			NewStatus:   s,
			ChangedBy:   entities.SystemActor.ID,
			Reason:      "synthesized from report timestamps",
			CreatedAt:   *ts,
			Synthesized: true,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}
