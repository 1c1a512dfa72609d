package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RenoBuildCo/reno-marketplace/internal/authz"
	domain "github.com/RenoBuildCo/reno-marketplace/internal/domain/quote"
	"github.com/RenoBuildCo/reno-marketplace/internal/dto"
	"github.com/RenoBuildCo/reno-marketplace/internal/httperr"
	"github.com/RenoBuildCo/reno-marketplace/internal/httpresp"
	"github.com/RenoBuildCo/reno-marketplace/internal/store"
	ucQuote "github.com/RenoBuildCo/reno-marketplace/internal/usecase/quote"
)

type QuoteHandler struct {
	store     store.Store
	requestUC *ucQuote.RequestQuotes
	updateUC  *ucQuote.UpdateQuote
}

func NewQuoteHandler(
	s store.Store,
	requestUC *ucQuote.RequestQuotes,
	updateUC *ucQuote.UpdateQuote,
) *QuoteHandler {
	return &QuoteHandler{
		store:     s,
		requestUC: requestUC,
		updateUC:  updateUC,
	}
}

// --------- Requests ---------

type QuoteRequestRequest struct {
	ProjectID     uint   `json:"project_id" binding:"required"`
	ContractorIDs []uint `json:"contractor_ids" binding:"required,min=1"`
	Message       string `json:"message"`
}

type UpdateQuoteRequest struct {
	Status      *string `json:"status,omitempty"`
	Amount      *int    `json:"amount,omitempty"`
	Timeline    *string `json:"timeline,omitempty"`
	Description *string `json:"description,omitempty"`
}

// --------- Handlers ---------

// List returns every quote across the caller's projects, joined with
// project and contractor names.
func (h *QuoteHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	quotes, err := h.store.ListQuotesForUser(ctx, currentUserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_list_quotes", "failed to list quotes")
		return
	}

	items := make([]dto.QuoteListItem, 0, len(quotes))
	for _, q := range quotes {
		item := dto.QuoteListItem{Quote: q}
		if p, err := h.store.GetProject(ctx, q.ProjectID); err == nil {
			item.ProjectName = p.Name
		}
		if ct, err := h.store.GetContractor(ctx, q.ContractorID); err == nil {
			item.ContractorName = ct.Name
		}
		items = append(items, item)
	}

	httpresp.List(c, items)
}

func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	quote, err := h.store.GetQuote(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "quote_not_found", "quote not found")
			return
		}
		httperr.Internal(c, "failed_to_get_quote", "failed to load quote")
		return
	}

	project, err := h.store.GetProject(ctx, quote.ProjectID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_project", "failed to load project")
		return
	}

	if !authz.Can(currentUserID(c), authz.ActionView, project) {
		httperr.Forbidden(c, "forbidden", "you do not own this quote's project")
		return
	}

	httpresp.OK(c, quote)
}

func (h *QuoteHandler) Request(c *gin.Context) {
	var req QuoteRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	quotes, err := h.requestUC.Execute(c.Request.Context(), ucQuote.RequestQuotesInput{
		UserID:        currentUserID(c),
		ProjectID:     req.ProjectID,
		ContractorIDs: req.ContractorIDs,
		Message:       req.Message,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, quotes)
}

func (h *QuoteHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	in := domain.UpdateInput{
		Amount:      req.Amount,
		Timeline:    req.Timeline,
		Description: req.Description,
	}
	if req.Status != nil {
		s := domain.Status(*req.Status)
		in.Status = &s
	}

	quote, err := h.updateUC.Execute(c.Request.Context(), currentUserID(c), id, in)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, quote)
}
