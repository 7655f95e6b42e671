package usecase

import (
	"context"
	"errors"
	"testing"

	"fleetval/internal/domain/entities"
	mock_interfaces "fleetval/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fleetReports(n int) []entities.Report {
	out := make([]entities.Report, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entities.Report{
			ID:   "rep-" + string(rune('a'+i)),
			Kind: entities.ReportKindFleetValuation,
		})
	}
	return out
}

func TestFleetUsageUseCase_RemainingCredits(t *testing.T) {
	t.Run("empty intent id", func(t *testing.T) {
		uc := NewFleetUsageUseCase(nil)
		_, err := uc.RemainingCredits(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidPaymentIntentID) {
			t.Fatalf("expected ErrInvalidPaymentIntentID, got %v", err)
		}
	})

	t.Run("three used leaves two", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewFleetUsageUseCase(repo)

		repo.EXPECT().ListByCreditIntentID(gomock.Any(), "pi_1").Return(fleetReports(3), nil)

		credits, err := uc.RemainingCredits(context.Background(), "pi_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if credits.Included != 5 || credits.Used != 3 || credits.Remaining != 2 {
			t.Fatalf("expected 5/3/2, got %d/%d/%d", credits.Included, credits.Used, credits.Remaining)
		}
		if !credits.CanUse {
			t.Fatal("expected CanUse with 2 remaining")
		}
	})

	t.Run("pool exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewFleetUsageUseCase(repo)

		repo.EXPECT().ListByCreditIntentID(gomock.Any(), "pi_1").Return(fleetReports(5), nil)

		credits, err := uc.RemainingCredits(context.Background(), "pi_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if credits.Remaining != 0 || credits.CanUse {
			t.Fatalf("expected exhausted pool, got %+v", credits)
		}
	})

	t.Run("non-fleet rows never count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewFleetUsageUseCase(repo)

		rows := append(fleetReports(2), entities.Report{ID: "rep-x", Kind: entities.ReportKindSpotCheck})
		repo.EXPECT().ListByCreditIntentID(gomock.Any(), "pi_1").Return(rows, nil)

		credits, err := uc.RemainingCredits(context.Background(), "pi_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if credits.Used != 2 {
			t.Fatalf("expected 2 used, got %d", credits.Used)
		}
	})

	t.Run("overage clamps to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewFleetUsageUseCase(repo)

		repo.EXPECT().ListByCreditIntentID(gomock.Any(), "pi_1").Return(fleetReports(7), nil)

		credits, err := uc.RemainingCredits(context.Background(), "pi_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if credits.Remaining != 0 {
			t.Fatalf("expected Remaining clamped to 0, got %d", credits.Remaining)
		}
	})
}

func TestFleetUsageUseCase_CanCreateReport(t *testing.T) {
	t.Run("missing intent", func(t *testing.T) {
		uc := NewFleetUsageUseCase(nil)
		ok, reason, err := uc.CanCreateReport(context.Background(), "u-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok || reason == "" {
			t.Fatalf("expected denial with reason, got ok=%t reason=%q", ok, reason)
		}
	})

	t.Run("credits remaining", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewFleetUsageUseCase(repo)

		repo.EXPECT().ListByCreditIntentID(gomock.Any(), "pi_1").Return(fleetReports(4), nil)

		ok, _, err := uc.CanCreateReport(context.Background(), "u-1", "pi_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("expected the fifth valuation to be allowed")
		}
	})

	t.Run("pool exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewFleetUsageUseCase(repo)

		repo.EXPECT().ListByCreditIntentID(gomock.Any(), "pi_1").Return(fleetReports(5), nil)

		ok, reason, err := uc.CanCreateReport(context.Background(), "u-1", "pi_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok || reason == "" {
			t.Fatalf("expected the sixth valuation to be denied, got ok=%t reason=%q", ok, reason)
		}
	})
}
