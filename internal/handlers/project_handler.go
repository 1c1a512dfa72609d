package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/RenoBuildCo/reno-marketplace/internal/audit"
	"github.com/RenoBuildCo/reno-marketplace/internal/authz"
	"github.com/RenoBuildCo/reno-marketplace/internal/httperr"
	"github.com/RenoBuildCo/reno-marketplace/internal/httpresp"
	"github.com/RenoBuildCo/reno-marketplace/internal/models"
	"github.com/RenoBuildCo/reno-marketplace/internal/store"
	"github.com/RenoBuildCo/reno-marketplace/internal/uploads"
)

var projectStatuses = map[string]bool{
	"planning":    true,
	"in-progress": true,
	"completed":   true,
}

type ProjectHandler struct {
	store    store.Store
	uploader *uploads.Uploader
	audit    *audit.Dispatcher
}

func NewProjectHandler(s store.Store, uploader *uploads.Uploader, audit *audit.Dispatcher) *ProjectHandler {
	return &ProjectHandler{store: s, uploader: uploader, audit: audit}
}

// --------- Requests ---------

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`

	Status string `json:"status"`

	EstimatedCostMin *int `json:"estimated_cost_min"`
	EstimatedCostMax *int `json:"estimated_cost_max"`

	Timeline      string         `json:"timeline"`
	Location      string         `json:"location"`
	SquareFootage *int           `json:"square_footage"`
	Details       datatypes.JSON `json:"details"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`

	EstimatedCostMin *int `json:"estimated_cost_min,omitempty"`
	EstimatedCostMax *int `json:"estimated_cost_max,omitempty"`
	ActualCost       *int `json:"actual_cost,omitempty"`

	Timeline      *string         `json:"timeline,omitempty"`
	Location      *string         `json:"location,omitempty"`
	SquareFootage *int            `json:"square_footage,omitempty"`
	Details       *datatypes.JSON `json:"details,omitempty"`
}

// --------- Handlers ---------

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.store.ListProjectsByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_list_projects", "failed to list projects")
		return
	}

	httpresp.List(c, projects)
}

// getOwned loads the project and enforces ownership in one place.
func (h *ProjectHandler) getOwned(c *gin.Context, action authz.Action) (*models.Project, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}

	project, err := h.store.GetProject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "project_not_found", "project not found")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_project", "failed to load project")
		return nil, false
	}

	if !authz.Can(currentUserID(c), action, project) {
		httperr.Forbidden(c, "forbidden", "you do not own this project")
		return nil, false
	}

	return project, true
}

func (h *ProjectHandler) Get(c *gin.Context) {
	project, ok := h.getOwned(c, authz.ActionView)
	if !ok {
		return
	}
	httpresp.OK(c, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	status := req.Status
	if status == "" {
		status = "planning"
	}
	if !projectStatuses[status] {
		httperr.BadRequest(c, "invalid_status", "status must be planning, in-progress or completed")
		return
	}

	userID := currentUserID(c)
	project := models.Project{
		UserID:           userID,
		Name:             req.Name,
		Type:             req.Type,
		Description:      req.Description,
		Status:           status,
		EstimatedCostMin: req.EstimatedCostMin,
		EstimatedCostMax: req.EstimatedCostMax,
		Timeline:         req.Timeline,
		Location:         req.Location,
		SquareFootage:    req.SquareFootage,
		Details:          req.Details,
	}

	if err := h.store.CreateProject(c.Request.Context(), &project); err != nil {
		httperr.Internal(c, "failed_to_create_project", "failed to create project")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "project_created",
		Entity:   "project",
		EntityID: &project.ID,
	})

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	project, ok := h.getOwned(c, authz.ActionUpdate)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Status != nil && !projectStatuses[*req.Status] {
		httperr.BadRequest(c, "invalid_status", "status must be planning, in-progress or completed")
		return
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Type != nil {
		project.Type = *req.Type
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.EstimatedCostMin != nil {
		project.EstimatedCostMin = req.EstimatedCostMin
	}
	if req.EstimatedCostMax != nil {
		project.EstimatedCostMax = req.EstimatedCostMax
	}
	if req.ActualCost != nil {
		project.ActualCost = req.ActualCost
	}
	if req.Timeline != nil {
		project.Timeline = *req.Timeline
	}
	if req.Location != nil {
		project.Location = *req.Location
	}
	if req.SquareFootage != nil {
		project.SquareFootage = req.SquareFootage
	}
	if req.Details != nil {
		project.Details = *req.Details
	}

	if err := h.store.UpdateProject(c.Request.Context(), project); err != nil {
		httperr.Internal(c, "failed_to_update_project", "failed to update project")
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "project_updated",
		Entity:   "project",
		EntityID: &project.ID,
	})

	httpresp.OK(c, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	project, ok := h.getOwned(c, authz.ActionDelete)
	if !ok {
		return
	}

	if err := h.store.DeleteProject(c.Request.Context(), project.ID); err != nil {
		httperr.Internal(c, "failed_to_delete_project", "failed to delete project")
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "project_deleted",
		Entity:   "project",
		EntityID: &project.ID,
	})

	c.Status(http.StatusNoContent)
}

// UploadPhotos stores up to three photos for a project and appends the
// resulting URLs to the project record.
func (h *ProjectHandler) UploadPhotos(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "uploads_not_configured", "photo uploads are not configured")
		return
	}

	project, ok := h.getOwned(c, authz.ActionUpdate)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "expected multipart form with photos")
		return
	}

	files := form.File["photos"]
	if len(files) == 0 {
		httperr.BadRequest(c, "no_photos", "no photos supplied")
		return
	}

	urls, err := h.uploader.UploadProjectPhotos(c.Request.Context(), project.ID, files)
	if err != nil {
		httperr.BadRequest(c, "upload_failed", err.Error())
		return
	}

	project.PhotoURLs = append(project.PhotoURLs, urls...)
	if err := h.store.UpdateProject(c.Request.Context(), project); err != nil {
		httperr.Internal(c, "failed_to_update_project", "failed to save photo urls")
		return
	}

	httpresp.OK(c, project)
}
