package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RenoBuildCo/reno-marketplace/internal/models"
)

func TestMemoryStoreProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	p := &models.Project{UserID: 1, Name: "Kitchen Remodel", Description: "Full gut"}
	if err := s.CreateProject(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if p.Status != "planning" {
		t.Errorf("default status = %q, want planning", p.Status)
	}

	got, err := s.GetProject(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Kitchen Remodel" {
		t.Errorf("name = %q", got.Name)
	}

	got.Status = "in-progress"
	if err := s.UpdateProject(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, _ := s.GetProject(ctx, p.ID)
	if updated.Status != "in-progress" {
		t.Errorf("status after update = %q", updated.Status)
	}

	if err := s.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetProject(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.DeleteProject(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreUpdateBumpsTimestamp(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	q := &models.Quote{ProjectID: 1, ContractorID: 1}
	if err := s.CreateQuote(ctx, q); err != nil {
		t.Fatalf("create: %v", err)
	}
	created := q.UpdatedAt

	time.Sleep(time.Millisecond)
	q.Status = "received"
	if err := s.UpdateQuote(ctx, q); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !q.UpdatedAt.After(created) {
		t.Error("UpdatedAt not bumped on update")
	}
}

func TestMemoryStoreListQuotesForUser(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	mine := &models.Project{UserID: 1, Name: "Mine"}
	theirs := &models.Project{UserID: 2, Name: "Theirs"}
	s.CreateProject(ctx, mine)
	s.CreateProject(ctx, theirs)

	s.CreateQuote(ctx, &models.Quote{ProjectID: mine.ID, ContractorID: 1})
	s.CreateQuote(ctx, &models.Quote{ProjectID: mine.ID, ContractorID: 2})
	s.CreateQuote(ctx, &models.Quote{ProjectID: theirs.ID, ContractorID: 1})

	qs, err := s.ListQuotesForUser(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d quotes, want 2", len(qs))
	}
	for _, q := range qs {
		if q.ProjectID != mine.ID {
			t.Errorf("quote %d belongs to project %d", q.ID, q.ProjectID)
		}
	}
}

func TestMemoryStoreSearchContractors(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	s.CreateContractor(ctx, &models.Contractor{
		Name: "Sharma Construction", Specialty: "General Contractor",
		Specialties: []string{"Kitchen Remodeling", "Bathroom Renovation"},
		Location:    "Mumbai",
	})
	s.CreateContractor(ctx, &models.Contractor{
		Name: "Mehta Electrical", Specialty: "Electrician",
		Specialties: []string{"Wiring", "Smart Home"},
		Location:    "Delhi",
	})

	got, err := s.SearchContractors(ctx, "kitchen")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Sharma Construction" {
		t.Fatalf("search kitchen = %+v", got)
	}

	// matches reachable only through the specialties array
	got, err = s.SearchContractors(ctx, "smart home")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Mehta Electrical" {
		t.Fatalf("search smart home = %+v", got)
	}

	bySpec, err := s.ListContractorsBySpecialty(ctx, "Wiring")
	if err != nil {
		t.Fatalf("by specialty: %v", err)
	}
	if len(bySpec) != 1 || bySpec[0].Name != "Mehta Electrical" {
		t.Fatalf("by specialty = %+v", bySpec)
	}
}

func TestSeedContractorsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	SeedContractors(ctx, s)
	first, _ := s.ListContractors(ctx)
	if len(first) == 0 {
		t.Fatal("seed created no contractors")
	}

	SeedContractors(ctx, s)
	second, _ := s.ListContractors(ctx)
	if len(second) != len(first) {
		t.Errorf("second seed grew contractors from %d to %d", len(first), len(second))
	}
}
