package quote

import (
	"context"

	"github.com/RenoBuildCo/reno-marketplace/internal/audit"
	"github.com/RenoBuildCo/reno-marketplace/internal/authz"
	domain "github.com/RenoBuildCo/reno-marketplace/internal/domain/quote"
	"github.com/RenoBuildCo/reno-marketplace/internal/httperr"
	"github.com/RenoBuildCo/reno-marketplace/internal/models"
	"github.com/RenoBuildCo/reno-marketplace/internal/store"
)

type UpdateQuote struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewUpdateQuote(s store.Store, audit *audit.Dispatcher) *UpdateQuote {
	return &UpdateQuote{
		store: s,
		audit: audit,
	}
}

// Execute patches a quote on behalf of the owner of its parent project.
func (uc *UpdateQuote) Execute(
	ctx context.Context,
	userID uint,
	quoteID uint,
	in domain.UpdateInput,
) (*models.Quote, error) {

	q, err := uc.store.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, httperr.ErrBusiness("quote_not_found")
	}

	project, err := uc.store.GetProject(ctx, q.ProjectID)
	if err != nil {
		return nil, httperr.ErrBusiness("project_not_found")
	}

	if !authz.Can(userID, authz.ActionUpdate, project) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := domain.Apply(q, in); err != nil {
		return nil, err
	}

	if err := uc.store.UpdateQuote(ctx, q); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "quote_updated",
		Entity:   "quote",
		EntityID: &q.ID,
		Metadata: map[string]string{"status": q.Status},
	})

	return q, nil
}
