package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RenoBuildCo/reno-marketplace/internal/httperr"
	"github.com/RenoBuildCo/reno-marketplace/internal/httpresp"
	"github.com/RenoBuildCo/reno-marketplace/internal/models"
	"github.com/RenoBuildCo/reno-marketplace/internal/store"
)

type ContractorHandler struct {
	store store.Store
}

func NewContractorHandler(s store.Store) *ContractorHandler {
	return &ContractorHandler{store: s}
}

// --------- Requests ---------

type CreateContractorRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Specialty    string   `json:"specialty" binding:"required"`
	Specialties  []string `json:"specialties"`
	Location     string   `json:"location" binding:"required"`
	ProfileImage string   `json:"profile_image"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone"`
}

// --------- Handlers ---------

// List supports ?search= free-text lookup and ?specialty= tag filtering;
// without either it returns the full directory.
func (h *ContractorHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	search := strings.TrimSpace(c.Query("search"))
	specialty := strings.TrimSpace(c.Query("specialty"))

	var (
		contractors []models.Contractor
		err         error
	)
	switch {
	case search != "":
		contractors, err = h.store.SearchContractors(ctx, search)
	case specialty != "":
		contractors, err = h.store.ListContractorsBySpecialty(ctx, specialty)
	default:
		contractors, err = h.store.ListContractors(ctx)
	}
	if err != nil {
		httperr.Internal(c, "failed_to_list_contractors", "failed to list contractors")
		return
	}

	httpresp.List(c, contractors)
}

func (h *ContractorHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	contractor, err := h.store.GetContractor(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "contractor_not_found", "contractor not found")
			return
		}
		httperr.Internal(c, "failed_to_get_contractor", "failed to load contractor")
		return
	}

	httpresp.OK(c, contractor)
}

func (h *ContractorHandler) ListReviews(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.store.ListReviewsByContractor(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "failed to list reviews")
		return
	}

	httpresp.List(c, reviews)
}

func (h *ContractorHandler) Create(c *gin.Context) {
	var req CreateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	contractor := models.Contractor{
		Name:         req.Name,
		Description:  req.Description,
		Specialty:    req.Specialty,
		Specialties:  req.Specialties,
		Location:     req.Location,
		ProfileImage: req.ProfileImage,
		Email:        strings.ToLower(req.Email),
		Phone:        req.Phone,
	}

	if err := h.store.CreateContractor(c.Request.Context(), &contractor); err != nil {
		httperr.Internal(c, "failed_to_create_contractor", "failed to create contractor")
		return
	}

	c.JSON(http.StatusCreated, contractor)
}
