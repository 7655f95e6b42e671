package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"fleetval/internal/domain/entities"
	"fleetval/internal/usecase/interfaces"
)

var ErrInvalidPaymentIntentID = errors.New("invalid payment intent id")

// FleetCredits is the accounting view of one fleet payment's credit pool.
type FleetCredits struct {
	PaymentIntentID string `json:"payment_intent_id"`
	Included        int    `json:"valuations_included"`
	Used            int    `json:"valuations_used"`
	Remaining       int    `json:"valuations_remaining"`
	CanUse          bool   `json:"can_use"`
}

// IFleetUsageUseCase tracks per-payment valuation credits for the multi-unit
// tier. Used is always computed by counting non-deleted fleet reports bound
// to the intent; the counters cached on the report are informational only.

type IFleetUsageUseCase interface {
	RemainingCredits(ctx context.Context, paymentIntentID string) (FleetCredits, error)
	CanCreateReport(ctx context.Context, userID, paymentIntentID string) (bool, string, error)
}

type FleetUsageUseCase struct {
	repo interfaces.IReportRepository
}

var _ IFleetUsageUseCase = (*FleetUsageUseCase)(nil)

func NewFleetUsageUseCase(repo interfaces.IReportRepository) *FleetUsageUseCase {
	return &FleetUsageUseCase{repo: repo}
}

func (u *FleetUsageUseCase) RemainingCredits(ctx context.Context, paymentIntentID string) (FleetCredits, error) {
	paymentIntentID = strings.TrimSpace(paymentIntentID)
	if paymentIntentID == "" {
		return FleetCredits{}, ErrInvalidPaymentIntentID
	}

	reports, err := u.repo.ListByCreditIntentID(ctx, paymentIntentID)
	if err != nil {
		return FleetCredits{}, err
	}

	included := entities.FleetValuationsIncluded
	used := 0
	for _, r := range reports {
		if r.Kind != entities.ReportKindFleetValuation {
			continue
		}
		used++
		if r.ValuationsIncluded > 0 {
			included = r.ValuationsIncluded
		}
	}

	remaining := included - used
	if remaining < 0 {
		remaining = 0
	}

	credits := FleetCredits{
		PaymentIntentID: paymentIntentID,
		Included:        included,
		Used:            used,
		Remaining:       remaining,
		CanUse:          remaining > 0,
	}
	log.Printf("[fleet][usecase] credits intent_id=%s included=%d used=%d remaining=%d",
		paymentIntentID, included, used, remaining)
	return credits, nil
}

func (u *FleetUsageUseCase) CanCreateReport(ctx context.Context, userID, paymentIntentID string) (bool, string, error) {
	if strings.TrimSpace(paymentIntentID) == "" {
		return false, "payment intent required", nil
	}
	credits, err := u.RemainingCredits(ctx, paymentIntentID)
	if err != nil {
		return false, "", err
	}
	if !credits.CanUse {
		return false, "no valuations remaining on this payment", nil
	}
	return true, "", nil
}
