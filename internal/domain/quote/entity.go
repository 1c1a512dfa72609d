package quote

import "github.com/RenoBuildCo/reno-marketplace/internal/models"

// ===============================
// Domain Actions
// ===============================

type UpdateInput struct {
	Status      *Status
	Amount      *int
	Timeline    *string
	Description *string
}

// Apply mutates the quote in place after validating the status change.
func Apply(q *models.Quote, in UpdateInput) error {
	if in.Status != nil {
		if err := CanTransition(Status(q.Status), *in.Status); err != nil {
			return err
		}
		q.Status = string(*in.Status)
	}
	if in.Amount != nil {
		q.Amount = in.Amount
	}
	if in.Timeline != nil {
		q.Timeline = *in.Timeline
	}
	if in.Description != nil {
		q.Description = *in.Description
	}
	return nil
}
