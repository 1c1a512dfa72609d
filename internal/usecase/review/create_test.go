package review

import (
	"context"
	"math"
	"testing"

	"github.com/RenoBuildCo/reno-marketplace/internal/audit"
	"github.com/RenoBuildCo/reno-marketplace/internal/httperr"
	"github.com/RenoBuildCo/reno-marketplace/internal/models"
	"github.com/RenoBuildCo/reno-marketplace/internal/store"
)

func newFixture(t *testing.T) (*store.MemoryStore, *CreateReview) {
	t.Helper()
	s := store.NewMemoryStore()
	return s, NewCreateReview(s, audit.NewDispatcher(audit.Discard{}))
}

func TestCreateReviewRecomputesRating(t *testing.T) {
	ctx := context.Background()
	s, uc := newFixture(t)

	c := &models.Contractor{Name: "Sharma Construction"}
	s.CreateContractor(ctx, c)

	for _, rating := range []int{5, 4, 3} {
		_, err := uc.Execute(ctx, CreateReviewInput{
			UserID:       1,
			ContractorID: c.ID,
			Rating:       rating,
			Review:       "solid work",
		})
		if err != nil {
			t.Fatalf("create rating %d: %v", rating, err)
		}
	}

	got, _ := s.GetContractor(ctx, c.ID)
	if got.ReviewCount != 3 {
		t.Errorf("review count = %d, want 3", got.ReviewCount)
	}
	if math.Abs(got.Rating-4.0) > 1e-9 {
		t.Errorf("rating = %f, want 4.0", got.Rating)
	}
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	ctx := context.Background()
	s, uc := newFixture(t)

	c := &models.Contractor{Name: "A"}
	s.CreateContractor(ctx, c)

	for _, rating := range []int{0, 6, -1} {
		_, err := uc.Execute(ctx, CreateReviewInput{
			UserID:       1,
			ContractorID: c.ID,
			Rating:       rating,
		})
		if !httperr.IsBusiness(err, "invalid_rating") {
			t.Errorf("rating %d: expected invalid_rating, got %v", rating, err)
		}
	}

	got, _ := s.GetContractor(ctx, c.ID)
	if got.ReviewCount != 0 {
		t.Errorf("review count = %d after rejected reviews", got.ReviewCount)
	}
}

func TestCreateReviewUnknownContractor(t *testing.T) {
	ctx := context.Background()
	_, uc := newFixture(t)

	_, err := uc.Execute(ctx, CreateReviewInput{UserID: 1, ContractorID: 42, Rating: 5})
	if !httperr.IsBusiness(err, "contractor_not_found") {
		t.Fatalf("expected contractor_not_found, got %v", err)
	}
}

func TestCreateReviewProjectMustBelongToReviewer(t *testing.T) {
	ctx := context.Background()
	s, uc := newFixture(t)

	c := &models.Contractor{Name: "A"}
	s.CreateContractor(ctx, c)
	p := &models.Project{UserID: 1, Name: "Kitchen"}
	s.CreateProject(ctx, p)

	_, err := uc.Execute(ctx, CreateReviewInput{
		UserID:       2,
		ContractorID: c.ID,
		ProjectID:    &p.ID,
		Rating:       4,
	})
	if !httperr.IsBusiness(err, "forbidden") {
		t.Fatalf("expected forbidden, got %v", err)
	}

	r, err := uc.Execute(ctx, CreateReviewInput{
		UserID:       1,
		ContractorID: c.ID,
		ProjectID:    &p.ID,
		Rating:       4,
	})
	if err != nil {
		t.Fatalf("owner review: %v", err)
	}
	if r.ProjectID == nil || *r.ProjectID != p.ID {
		t.Errorf("project id not kept: %v", r.ProjectID)
	}
}
