package review

import (
	"context"

	"github.com/RenoBuildCo/reno-marketplace/internal/audit"
	"github.com/RenoBuildCo/reno-marketplace/internal/authz"
	"github.com/RenoBuildCo/reno-marketplace/internal/httperr"
	"github.com/RenoBuildCo/reno-marketplace/internal/models"
	"github.com/RenoBuildCo/reno-marketplace/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type CreateReviewInput struct {
	UserID       uint
	ContractorID uint
	ProjectID    *uint
	Rating       int
	Review       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReview struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewCreateReview(s store.Store, audit *audit.Dispatcher) *CreateReview {
	return &CreateReview{
		store: s,
		audit: audit,
	}
}

// Execute persists the review, then recomputes the contractor's aggregate
// rating synchronously within the same request. If the recompute fails the
// review is already persisted; the error still propagates.
func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	if _, err := uc.store.GetContractor(ctx, in.ContractorID); err != nil {
		return nil, httperr.ErrBusiness("contractor_not_found")
	}

	if in.ProjectID != nil {
		project, err := uc.store.GetProject(ctx, *in.ProjectID)
		if err != nil {
			return nil, httperr.ErrBusiness("project_not_found")
		}
		if !authz.Can(in.UserID, authz.ActionView, project) {
			return nil, httperr.ErrBusiness("forbidden")
		}
	}

	r := &models.Review{
		UserID:       in.UserID,
		ContractorID: in.ContractorID,
		ProjectID:    in.ProjectID,
		Rating:       in.Rating,
		Review:       in.Review,
	}

	if err := uc.store.CreateReview(ctx, r); err != nil {
		return nil, err
	}

	if err := uc.recomputeRating(ctx, in.ContractorID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &r.ID,
	})

	return r, nil
}

func (uc *CreateReview) recomputeRating(ctx context.Context, contractorID uint) error {
	reviews, err := uc.store.ListReviewsByContractor(ctx, contractorID)
	if err != nil {
		return err
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}

	avg := 0.0
	if len(reviews) > 0 {
		avg = float64(total) / float64(len(reviews))
	}

	return uc.store.UpdateContractorRating(ctx, contractorID, avg, len(reviews))
}
