package entities

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to ReportStatus }{
		{StatusDraft, StatusSubmitted},
		{StatusSubmitted, StatusInProgress},
		{StatusSubmitted, StatusNeedMoreInfo},
		{StatusSubmitted, StatusCompleted},
		{StatusSubmitted, StatusDelivered},
		{StatusSubmitted, StatusOverdue},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusNeedMoreInfo},
		{StatusInProgress, StatusDelivered},
		{StatusCompleted, StatusDelivered},
		{StatusNeedMoreInfo, StatusInProgress},
		{StatusNeedMoreInfo, StatusSubmitted},
		{StatusNeedMoreInfo, StatusCompleted},
		{StatusNeedMoreInfo, StatusDelivered},
		{StatusOverdue, StatusInProgress},
		{StatusOverdue, StatusCompleted},
		{StatusOverdue, StatusDelivered},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to ReportStatus }{
		{StatusDraft, StatusInProgress},
		{StatusDraft, StatusDelivered},
		{StatusSubmitted, StatusDraft},
		{StatusInProgress, StatusSubmitted},
		{StatusDelivered, StatusCompleted},
		{StatusDelivered, StatusSubmitted},
		{StatusCompleted, StatusInProgress},
		{StatusOverdue, StatusSubmitted},
		{StatusDeleted, StatusSubmitted},
		{StatusDraft, StatusDeleted},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestDeliveredIsTerminal(t *testing.T) {
	for _, to := range []ReportStatus{
		StatusDraft, StatusSubmitted, StatusInProgress, StatusCompleted,
		StatusNeedMoreInfo, StatusOverdue, StatusDeleted,
	} {
		if CanTransition(StatusDelivered, to) {
			t.Fatalf("expected DELIVERED to be terminal, but %s is reachable", to)
		}
	}
}

func TestAdminCanForce(t *testing.T) {
	for _, target := range []ReportStatus{
		StatusSubmitted, StatusInProgress, StatusCompleted, StatusDelivered, StatusNeedMoreInfo,
	} {
		if !AdminCanForce(target) {
			t.Fatalf("expected admin override into %s to be allowed", target)
		}
	}
	for _, target := range []ReportStatus{StatusDraft, StatusOverdue, StatusDeleted} {
		if AdminCanForce(target) {
			t.Fatalf("expected admin override into %s to be rejected", target)
		}
	}
}

func TestResolveFleetTier(t *testing.T) {
	cases := []struct {
		units int
		tier  FleetTier
		ok    bool
	}{
		{1, FleetTier1To5, true},
		{5, FleetTier1To5, true},
		{6, FleetTier6To10, true},
		{8, FleetTier6To10, true},
		{10, FleetTier6To10, true},
		{11, FleetTier11To25, true},
		{25, FleetTier11To25, true},
		{26, FleetTier26To50, true},
		{50, FleetTier26To50, true},
		{0, "", false},
		{-3, "", false},
		{51, "", false},
	}
	for _, tc := range cases {
		tier, ok := ResolveFleetTier(tc.units)
		if ok != tc.ok || tier != tc.tier {
			t.Fatalf("ResolveFleetTier(%d) = (%q, %t), want (%q, %t)", tc.units, tier, ok, tc.tier, tc.ok)
		}
	}
}

func TestStatusTimestamp(t *testing.T) {
	now := time.Now().UTC()
	r := Report{SubmittedAt: &now}

	if got := r.StatusTimestamp(StatusSubmitted); got == nil || !got.Equal(now) {
		t.Fatalf("expected submitted timestamp, got %v", got)
	}
	if got := r.StatusTimestamp(StatusInProgress); got != nil {
		t.Fatalf("expected nil for unset status, got %v", got)
	}
	if got := r.StatusTimestamp(StatusDraft); got != nil {
		t.Fatalf("expected nil for draft, got %v", got)
	}
}
