package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RenoBuildCo/reno-marketplace/internal/httperr"
	"github.com/RenoBuildCo/reno-marketplace/internal/httpresp"
	"github.com/RenoBuildCo/reno-marketplace/internal/store"
	ucReview "github.com/RenoBuildCo/reno-marketplace/internal/usecase/review"
)

type ReviewHandler struct {
	store    store.Store
	createUC *ucReview.CreateReview
}

func NewReviewHandler(s store.Store, createUC *ucReview.CreateReview) *ReviewHandler {
	return &ReviewHandler{store: s, createUC: createUC}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	ContractorID uint   `json:"contractor_id" binding:"required"`
	ProjectID    *uint  `json:"project_id"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Review       string `json:"review"`
}

// --------- Handlers ---------

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	review, err := h.createUC.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		UserID:       currentUserID(c),
		ContractorID: req.ContractorID,
		ProjectID:    req.ProjectID,
		Rating:       req.Rating,
		Review:       req.Review,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) ListMine(c *gin.Context) {
	reviews, err := h.store.ListReviewsByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "failed to list reviews")
		return
	}

	httpresp.List(c, reviews)
}
