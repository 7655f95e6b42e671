package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleetval/internal/domain/entities"
	mock_interfaces "fleetval/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newReconcilerForTest(t *testing.T) (*PaymentReconcilerUseCase, *mock_interfaces.MockIReportRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockIReportRepository(ctrl)
	statusUC := NewStatusUseCase(repo, nil, nil)
	return NewPaymentReconcilerUseCase(repo, statusUC), repo
}

func TestPaymentReconciler_MarkPaid_Validations(t *testing.T) {
	price := entities.NewMoney(49500, "USD")

	t.Run("empty intent id", func(t *testing.T) {
		uc, _ := newReconcilerForTest(t)
		_, err := uc.MarkPaid(context.Background(), "  ", price, "", entities.SystemActor)
		if !errors.Is(err, ErrInvalidPaymentIntentID) {
			t.Fatalf("expected ErrInvalidPaymentIntentID, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		uc, _ := newReconcilerForTest(t)
		_, err := uc.MarkPaid(context.Background(), "pi_1", entities.Money{}, "", entities.SystemActor)
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("no report and no hint", func(t *testing.T) {
		uc, repo := newReconcilerForTest(t)
		repo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_1").Return(entities.Report{}, nil)

		_, err := uc.MarkPaid(context.Background(), "pi_1", price, "", entities.SystemActor)
		if !errors.Is(err, ErrReportNotFound) {
			t.Fatalf("expected ErrReportNotFound, got %v", err)
		}
	})
}

func TestPaymentReconciler_MarkPaid_AmountMismatch(t *testing.T) {
	uc, repo := newReconcilerForTest(t)

	draft := entities.Report{ID: "rep-1", OwnerID: "u-1", Kind: entities.ReportKindSpotCheck, Status: entities.StatusDraft}
	repo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_1").Return(entities.Report{}, nil)
	repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(draft, nil)

	// $1.00 against the $495.00 spot check price. Nothing may be written.
	_, err := uc.MarkPaid(context.Background(), "pi_1", entities.NewMoney(100, "USD"), "rep-1", entities.SystemActor)
	if !errors.Is(err, ErrPaymentAmountMismatch) {
		t.Fatalf("expected ErrPaymentAmountMismatch, got %v", err)
	}
}

func TestPaymentReconciler_MarkPaid_HappyPath(t *testing.T) {
	uc, repo := newReconcilerForTest(t)
	price := entities.NewMoney(49500, "USD")

	draft := entities.Report{ID: "rep-1", OwnerID: "u-1", Kind: entities.ReportKindSpotCheck, Status: entities.StatusDraft}
	paid := draft
	paid.PaymentIntentID = "pi_1"
	paid.AmountPaid = &price
	paid.PaymentStatus = "succeeded"

	gomock.InOrder(
		repo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_1").Return(draft, nil),
		repo.EXPECT().ClaimPaymentIntent(gomock.Any(), "pi_1", "rep-1").Return("rep-1", nil),
		repo.EXPECT().AttachPayment(gomock.Any(), "rep-1", "pi_1", price, "succeeded").Return(paid, nil),
		// Apply goes through the state machine.
		repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(paid, nil),
		repo.EXPECT().TransitionStatus(gomock.Any(), "rep-1", entities.StatusDraft, entities.StatusSubmitted, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _, _ entities.ReportStatus, enteredAt time.Time, deadline *time.Time) (entities.Report, error) {
				r := paid
				r.Status = entities.StatusSubmitted
				r.SubmittedAt = &enteredAt
				r.TurnaroundDeadline = deadline
				return r, nil
			}),
	)

	got, err := uc.MarkPaid(context.Background(), "pi_1", price, "", entities.SystemActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.StatusSubmitted {
		t.Fatalf("expected SUBMITTED, got %s", got.Status)
	}
	if got.TurnaroundDeadline == nil {
		t.Fatal("expected a turnaround deadline")
	}
}

func TestPaymentReconciler_MarkPaid_DuplicateDelivery(t *testing.T) {
	uc, repo := newReconcilerForTest(t)
	price := entities.NewMoney(49500, "USD")

	now := time.Now().UTC()
	settled := entities.Report{
		ID: "rep-1", OwnerID: "u-1", Kind: entities.ReportKindSpotCheck,
		Status: entities.StatusSubmitted, PaymentIntentID: "pi_1",
		AmountPaid: &price, PaymentStatus: "succeeded", SubmittedAt: &now,
	}

	gomock.InOrder(
		repo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_1").Return(settled, nil),
		repo.EXPECT().ClaimPaymentIntent(gomock.Any(), "pi_1", "rep-1").Return("rep-1", nil),
		repo.EXPECT().AttachPayment(gomock.Any(), "rep-1", "pi_1", price, "succeeded").Return(settled, nil),
	)

	// Second webhook delivery: the report is already SUBMITTED and must be
	// returned untouched, never regressed.
	got, err := uc.MarkPaid(context.Background(), "pi_1", price, "", entities.SystemActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.StatusSubmitted {
		t.Fatalf("expected SUBMITTED, got %s", got.Status)
	}
}

func TestPaymentReconciler_MarkPaid_DuplicateDraftResolved(t *testing.T) {
	uc, repo := newReconcilerForTest(t)
	price := entities.NewMoney(49500, "USD")

	winner := entities.Report{ID: "rep-winner", OwnerID: "u-1", Kind: entities.ReportKindSpotCheck, Status: entities.StatusDraft}
	hinted := entities.Report{ID: "rep-dup", OwnerID: "u-1", Kind: entities.ReportKindSpotCheck, Status: entities.StatusDraft}
	paid := winner
	paid.PaymentIntentID = "pi_1"

	gomock.InOrder(
		// The hint resolves the candidate, but the claim reveals an earlier
		// winner for this intent.
		repo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_1").Return(entities.Report{}, nil),
		repo.EXPECT().GetByID(gomock.Any(), "rep-dup").Return(hinted, nil),
		repo.EXPECT().ClaimPaymentIntent(gomock.Any(), "pi_1", "rep-dup").Return("rep-winner", nil),
		repo.EXPECT().GetByID(gomock.Any(), "rep-winner").Return(winner, nil),
		// The losing hinted draft is resolved internally.
		repo.EXPECT().SoftDelete(gomock.Any(), "rep-dup").Return(nil),
		repo.EXPECT().AttachPayment(gomock.Any(), "rep-winner", "pi_1", price, "succeeded").Return(paid, nil),
		repo.EXPECT().GetByID(gomock.Any(), "rep-winner").Return(paid, nil),
		repo.EXPECT().TransitionStatus(gomock.Any(), "rep-winner", entities.StatusDraft, entities.StatusSubmitted, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _, _ entities.ReportStatus, enteredAt time.Time, deadline *time.Time) (entities.Report, error) {
				r := paid
				r.Status = entities.StatusSubmitted
				r.SubmittedAt = &enteredAt
				r.TurnaroundDeadline = deadline
				return r, nil
			}),
	)

	got, err := uc.MarkPaid(context.Background(), "pi_1", price, "rep-dup", entities.SystemActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "rep-winner" {
		t.Fatalf("expected canonical rep-winner, got %s", got.ID)
	}
	if got.Status != entities.StatusSubmitted {
		t.Fatalf("expected SUBMITTED, got %s", got.Status)
	}
}

func TestPaymentReconciler_MarkPaid_FleetOpensCreditPool(t *testing.T) {
	uc, repo := newReconcilerForTest(t)
	price := entities.NewMoney(149500, "USD")

	draft := entities.Report{ID: "rep-f", OwnerID: "u-1", Kind: entities.ReportKindFleetValuation, FleetTier: entities.FleetTier1To5, UnitCount: 4, Status: entities.StatusDraft}
	paid := draft
	paid.PaymentIntentID = "pi_fleet"
	withPool := paid
	withPool.CreditIntentID = "pi_fleet"
	withPool.ValuationsIncluded = entities.FleetValuationsIncluded
	withPool.ValuationsUsed = 1

	gomock.InOrder(
		repo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_fleet").Return(draft, nil),
		repo.EXPECT().ClaimPaymentIntent(gomock.Any(), "pi_fleet", "rep-f").Return("rep-f", nil),
		repo.EXPECT().AttachPayment(gomock.Any(), "rep-f", "pi_fleet", price, "succeeded").Return(paid, nil),
		repo.EXPECT().InitUsageMetadata(gomock.Any(), "rep-f", "pi_fleet", entities.FleetValuationsIncluded, 1).Return(withPool, nil),
		repo.EXPECT().GetByID(gomock.Any(), "rep-f").Return(withPool, nil),
		repo.EXPECT().TransitionStatus(gomock.Any(), "rep-f", entities.StatusDraft, entities.StatusSubmitted, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _, _ entities.ReportStatus, enteredAt time.Time, deadline *time.Time) (entities.Report, error) {
				r := withPool
				r.Status = entities.StatusSubmitted
				r.SubmittedAt = &enteredAt
				r.TurnaroundDeadline = deadline
				return r, nil
			}),
	)

	got, err := uc.MarkPaid(context.Background(), "pi_fleet", price, "", entities.SystemActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ValuationsIncluded != entities.FleetValuationsIncluded || got.ValuationsUsed != 1 {
		t.Fatalf("expected pool 5/1, got %d/%d", got.ValuationsIncluded, got.ValuationsUsed)
	}
	if got.TurnaroundDeadline == nil {
		t.Fatal("expected fleet turnaround deadline")
	}
	if want := got.SubmittedAt.Add(72 * time.Hour); !got.TurnaroundDeadline.Equal(want) {
		t.Fatalf("expected 72h deadline %v, got %v", want, *got.TurnaroundDeadline)
	}
}

func TestPaymentReconciler_ResolveHint(t *testing.T) {
	uc, repo := newReconcilerForTest(t)

	repo.EXPECT().LatestDraftByOwnerID(gomock.Any(), "u-1").Return(entities.Report{ID: "rep-1"}, nil)
	if got := uc.ResolveHint(context.Background(), "u-1"); got != "rep-1" {
		t.Fatalf("expected rep-1, got %q", got)
	}

	if got := uc.ResolveHint(context.Background(), "  "); got != "" {
		t.Fatalf("expected empty hint for blank owner, got %q", got)
	}

	repo.EXPECT().LatestDraftByOwnerID(gomock.Any(), "u-2").Return(entities.Report{}, errors.New("db"))
	if got := uc.ResolveHint(context.Background(), "u-2"); got != "" {
		t.Fatalf("expected empty hint on lookup error, got %q", got)
	}
}
