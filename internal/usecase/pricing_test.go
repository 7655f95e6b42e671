package usecase

import (
	"errors"
	"testing"

	"fleetval/internal/domain/entities"
)

func TestCanonicalPrice(t *testing.T) {
	cases := []struct {
		name      string
		report    entities.Report
		wantMinor int64
	}{
		{"spot check", entities.Report{Kind: entities.ReportKindSpotCheck}, 49500},
		{"professional", entities.Report{Kind: entities.ReportKindProfessional}, 99500},
		{"fleet 1-5", entities.Report{Kind: entities.ReportKindFleetValuation, FleetTier: entities.FleetTier1To5}, 149500},
		{"fleet 6-10", entities.Report{Kind: entities.ReportKindFleetValuation, FleetTier: entities.FleetTier6To10}, 249500},
		{"fleet 11-25", entities.Report{Kind: entities.ReportKindFleetValuation, FleetTier: entities.FleetTier11To25}, 399500},
		{"fleet 26-50", entities.Report{Kind: entities.ReportKindFleetValuation, FleetTier: entities.FleetTier26To50}, 599500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CanonicalPrice(tc.report)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.AmountMinor != tc.wantMinor {
				t.Fatalf("expected %d minor units, got %d", tc.wantMinor, got.AmountMinor)
			}
			if got.Currency != entities.DefaultCurrency {
				t.Fatalf("expected %s, got %s", entities.DefaultCurrency, got.Currency)
			}
		})
	}

	t.Run("fleet without tier", func(t *testing.T) {
		_, err := CanonicalPrice(entities.Report{Kind: entities.ReportKindFleetValuation})
		if !errors.Is(err, ErrNoCanonicalPrice) {
			t.Fatalf("expected ErrNoCanonicalPrice, got %v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := CanonicalPrice(entities.Report{Kind: "appraisal"})
		if !errors.Is(err, ErrNoCanonicalPrice) {
			t.Fatalf("expected ErrNoCanonicalPrice, got %v", err)
		}
	})
}
