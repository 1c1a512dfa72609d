package quote

import (
	"context"
	"testing"

	"github.com/RenoBuildCo/reno-marketplace/internal/audit"
	domain "github.com/RenoBuildCo/reno-marketplace/internal/domain/quote"
	"github.com/RenoBuildCo/reno-marketplace/internal/httperr"
	"github.com/RenoBuildCo/reno-marketplace/internal/models"
	"github.com/RenoBuildCo/reno-marketplace/internal/store"
)

func newFixture(t *testing.T) (*store.MemoryStore, *audit.Dispatcher) {
	t.Helper()
	return store.NewMemoryStore(), audit.NewDispatcher(audit.Discard{})
}

func TestRequestQuotesFanOut(t *testing.T) {
	ctx := context.Background()
	s, d := newFixture(t)

	p := &models.Project{UserID: 1, Name: "Bathroom Renovation"}
	s.CreateProject(ctx, p)

	var contractorIDs []uint
	for _, name := range []string{"A", "B", "C"} {
		c := &models.Contractor{Name: name}
		s.CreateContractor(ctx, c)
		contractorIDs = append(contractorIDs, c.ID)
	}

	uc := NewRequestQuotes(s, d)
	quotes, err := uc.Execute(ctx, RequestQuotesInput{
		UserID:        1,
		ProjectID:     p.ID,
		ContractorIDs: contractorIDs,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(quotes) != 3 {
		t.Fatalf("got %d quotes, want 3", len(quotes))
	}
	for _, q := range quotes {
		if q.Status != "pending" {
			t.Errorf("quote %d status = %q, want pending", q.ID, q.Status)
		}
		if q.Description != "Quote request for Bathroom Renovation" {
			t.Errorf("quote %d description = %q", q.ID, q.Description)
		}
	}

	stored, _ := s.ListQuotesByProject(ctx, p.ID)
	if len(stored) != 3 {
		t.Errorf("store holds %d quotes, want 3", len(stored))
	}
}

func TestRequestQuotesForbiddenForNonOwner(t *testing.T) {
	ctx := context.Background()
	s, d := newFixture(t)

	p := &models.Project{UserID: 1, Name: "Kitchen"}
	s.CreateProject(ctx, p)
	c := &models.Contractor{Name: "A"}
	s.CreateContractor(ctx, c)

	uc := NewRequestQuotes(s, d)
	_, err := uc.Execute(ctx, RequestQuotesInput{
		UserID:        2,
		ProjectID:     p.ID,
		ContractorIDs: []uint{c.ID},
	})
	if !httperr.IsBusiness(err, "forbidden") {
		t.Fatalf("expected forbidden, got %v", err)
	}

	stored, _ := s.ListQuotesByProject(ctx, p.ID)
	if len(stored) != 0 {
		t.Errorf("quotes created despite forbidden: %d", len(stored))
	}
}

func TestRequestQuotesUnknownContractorKeepsEarlierQuotes(t *testing.T) {
	ctx := context.Background()
	s, d := newFixture(t)

	p := &models.Project{UserID: 1, Name: "Kitchen"}
	s.CreateProject(ctx, p)
	c := &models.Contractor{Name: "A"}
	s.CreateContractor(ctx, c)

	uc := NewRequestQuotes(s, d)
	quotes, err := uc.Execute(ctx, RequestQuotesInput{
		UserID:        1,
		ProjectID:     p.ID,
		ContractorIDs: []uint{c.ID, 999},
	})
	if !httperr.IsBusiness(err, "contractor_not_found") {
		t.Fatalf("expected contractor_not_found, got %v", err)
	}
	if len(quotes) != 1 {
		t.Errorf("got %d quotes back, want the 1 created before failure", len(quotes))
	}

	stored, _ := s.ListQuotesByProject(ctx, p.ID)
	if len(stored) != 1 {
		t.Errorf("store holds %d quotes, want 1", len(stored))
	}
}

func TestRequestQuotesCustomMessage(t *testing.T) {
	ctx := context.Background()
	s, d := newFixture(t)

	p := &models.Project{UserID: 1, Name: "Kitchen"}
	s.CreateProject(ctx, p)
	c := &models.Contractor{Name: "A"}
	s.CreateContractor(ctx, c)

	uc := NewRequestQuotes(s, d)
	quotes, err := uc.Execute(ctx, RequestQuotesInput{
		UserID:        1,
		ProjectID:     p.ID,
		ContractorIDs: []uint{c.ID},
		Message:       "Need this done before Diwali",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if quotes[0].Description != "Need this done before Diwali" {
		t.Errorf("description = %q", quotes[0].Description)
	}
}

func TestUpdateQuoteTransition(t *testing.T) {
	ctx := context.Background()
	s, d := newFixture(t)

	p := &models.Project{UserID: 1, Name: "Kitchen"}
	s.CreateProject(ctx, p)
	q := &models.Quote{ProjectID: p.ID, ContractorID: 1}
	s.CreateQuote(ctx, q)

	uc := NewUpdateQuote(s, d)

	status := domain.StatusReceived
	amount := 300000
	updated, err := uc.Execute(ctx, 1, q.ID, domain.UpdateInput{
		Status: &status,
		Amount: &amount,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != "received" {
		t.Errorf("status = %q", updated.Status)
	}
	if updated.Amount == nil || *updated.Amount != 300000 {
		t.Errorf("amount = %v", updated.Amount)
	}

	// jumping from received straight to completed is blocked
	bad := domain.StatusCompleted
	_, err = uc.Execute(ctx, 1, q.ID, domain.UpdateInput{Status: &bad})
	if !httperr.IsBusiness(err, "invalid_transition") {
		t.Fatalf("expected invalid_transition, got %v", err)
	}
}

func TestUpdateQuoteForbiddenForNonOwner(t *testing.T) {
	ctx := context.Background()
	s, d := newFixture(t)

	p := &models.Project{UserID: 1, Name: "Kitchen"}
	s.CreateProject(ctx, p)
	q := &models.Quote{ProjectID: p.ID, ContractorID: 1}
	s.CreateQuote(ctx, q)

	uc := NewUpdateQuote(s, d)
	status := domain.StatusReceived
	_, err := uc.Execute(ctx, 2, q.ID, domain.UpdateInput{Status: &status})
	if !httperr.IsBusiness(err, "forbidden") {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
