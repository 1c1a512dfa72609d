package quote

import (
	"testing"

	"github.com/RenoBuildCo/reno-marketplace/internal/httperr"
	"github.com/RenoBuildCo/reno-marketplace/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    Status
		to      Status
		wantErr string
	}{
		{"pending to received", StatusPending, StatusReceived, ""},
		{"pending to rejected", StatusPending, StatusRejected, ""},
		{"received to accepted", StatusReceived, StatusAccepted, ""},
		{"accepted to completed", StatusAccepted, StatusCompleted, ""},
		{"accepted to rejected", StatusAccepted, StatusRejected, ""},
		{"same status is a no-op", StatusAccepted, StatusAccepted, ""},
		{"pending cannot jump to accepted", StatusPending, StatusAccepted, "invalid_transition"},
		{"accepted cannot fall back to pending", StatusAccepted, StatusPending, "invalid_transition"},
		{"completed is terminal", StatusCompleted, StatusReceived, "invalid_transition"},
		{"rejected is terminal", StatusRejected, StatusAccepted, "invalid_transition"},
		{"unknown status", StatusPending, Status("approved"), "invalid_status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected allowed, got %v", err)
				}
				return
			}
			if !httperr.IsBusiness(err, tc.wantErr) {
				t.Fatalf("expected %s, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	amount := 250000
	timeline := "6 weeks"
	status := StatusReceived

	q := &models.Quote{Status: string(StatusPending)}
	err := Apply(q, UpdateInput{
		Status:   &status,
		Amount:   &amount,
		Timeline: &timeline,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if q.Status != string(StatusReceived) {
		t.Errorf("status = %s, want received", q.Status)
	}
	if q.Amount == nil || *q.Amount != 250000 {
		t.Errorf("amount = %v, want 250000", q.Amount)
	}
	if q.Timeline != "6 weeks" {
		t.Errorf("timeline = %q", q.Timeline)
	}
}

func TestApplyRejectsBadTransition(t *testing.T) {
	status := StatusCompleted
	q := &models.Quote{Status: string(StatusPending), Description: "original"}

	err := Apply(q, UpdateInput{Status: &status})
	if !httperr.IsBusiness(err, "invalid_transition") {
		t.Fatalf("expected invalid_transition, got %v", err)
	}
	if q.Status != string(StatusPending) {
		t.Errorf("quote mutated on failed transition: %s", q.Status)
	}
}
