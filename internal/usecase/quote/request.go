package quote

import (
	"context"
	"fmt"

	"github.com/RenoBuildCo/reno-marketplace/internal/audit"
	"github.com/RenoBuildCo/reno-marketplace/internal/authz"
	domain "github.com/RenoBuildCo/reno-marketplace/internal/domain/quote"
	"github.com/RenoBuildCo/reno-marketplace/internal/httperr"
	"github.com/RenoBuildCo/reno-marketplace/internal/models"
	"github.com/RenoBuildCo/reno-marketplace/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type RequestQuotesInput struct {
	UserID        uint
	ProjectID     uint
	ContractorIDs []uint
	Message       string
}

// ======================================================
// USE CASE
// ======================================================

type RequestQuotes struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewRequestQuotes(s store.Store, audit *audit.Dispatcher) *RequestQuotes {
	return &RequestQuotes{
		store: s,
		audit: audit,
	}
}

// Execute creates one pending quote per contractor. The fan-out is a loop
// of independent creates, not a transaction: a mid-loop failure returns
// the error with the already-created quotes left in place.
func (uc *RequestQuotes) Execute(
	ctx context.Context,
	in RequestQuotesInput,
) ([]models.Quote, error) {

	project, err := uc.store.GetProject(ctx, in.ProjectID)
	if err != nil {
		return nil, httperr.ErrBusiness("project_not_found")
	}

	if !authz.Can(in.UserID, authz.ActionUpdate, project) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	description := in.Message
	if description == "" {
		description = fmt.Sprintf("Quote request for %s", project.Name)
	}

	quotes := make([]models.Quote, 0, len(in.ContractorIDs))
	for _, contractorID := range in.ContractorIDs {
		if _, err := uc.store.GetContractor(ctx, contractorID); err != nil {
			return quotes, httperr.ErrBusiness("contractor_not_found")
		}

		q := models.Quote{
			ProjectID:    in.ProjectID,
			ContractorID: contractorID,
			Status:       string(domain.InitialStatus()),
			Description:  description,
		}

		if err := uc.store.CreateQuote(ctx, &q); err != nil {
			return quotes, err
		}
		quotes = append(quotes, q)

		uc.audit.Dispatch(audit.Event{
			UserID:   &in.UserID,
			Action:   "quote_requested",
			Entity:   "quote",
			EntityID: &q.ID,
		})
	}

	return quotes, nil
}
