package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RenoBuildCo/reno-marketplace/internal/ai"
	"github.com/RenoBuildCo/reno-marketplace/internal/audit"
	"github.com/RenoBuildCo/reno-marketplace/internal/authz"
	"github.com/RenoBuildCo/reno-marketplace/internal/cache"
	"github.com/RenoBuildCo/reno-marketplace/internal/httperr"
	"github.com/RenoBuildCo/reno-marketplace/internal/httpresp"
	"github.com/RenoBuildCo/reno-marketplace/internal/models"
	"github.com/RenoBuildCo/reno-marketplace/internal/store"
)

type DesignHandler struct {
	store     store.Store
	estimator *ai.Estimator
	cache     *cache.Cache
	audit     *audit.Dispatcher
}

func NewDesignHandler(s store.Store, estimator *ai.Estimator, c *cache.Cache, audit *audit.Dispatcher) *DesignHandler {
	return &DesignHandler{store: s, estimator: estimator, cache: c, audit: audit}
}

// --------- Requests ---------

type InspirationRequest struct {
	Room        string `json:"room" binding:"required"`
	Style       string `json:"style" binding:"required"`
	Preferences string `json:"preferences"`
}

// --------- Handlers ---------

// Generate asks the model for a design concept and persists it for the
// caller when the generation succeeds.
func (h *DesignHandler) Generate(c *gin.Context) {
	var req InspirationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctx := c.Request.Context()

	if !h.cache.Allow(ctx, "design:"+c.ClientIP(), aiRateLimit, aiRateWindow) {
		httperr.TooManyRequests(c, "rate_limited", "too many design requests, slow down")
		return
	}

	result, err := h.estimator.GenerateInspiration(ctx, ai.InspirationInput{
		Room:        req.Room,
		Style:       req.Style,
		Preferences: req.Preferences,
	})
	if err != nil {
		if errors.Is(err, ai.ErrRateLimited) {
			httperr.Internal(c, "ai_rate_limited", "AI provider rate limit exceeded, please try again later")
			return
		}
		httperr.Internal(c, "ai_error", "failed to generate design inspiration")
		return
	}

	userID := currentUserID(c)
	inspiration := models.DesignInspiration{
		UserID:      userID,
		Room:        req.Room,
		Style:       req.Style,
		Description: result.Description,
		ImageURL:    result.ImageURL,
		Prompt:      result.Prompt,
		Tips:        result.Tips,
	}

	if err := h.store.CreateDesignInspiration(ctx, &inspiration); err != nil {
		httperr.Internal(c, "failed_to_save_inspiration", "failed to save design inspiration")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "inspiration_created",
		Entity:   "design_inspiration",
		EntityID: &inspiration.ID,
	})

	c.JSON(http.StatusCreated, inspiration)
}

func (h *DesignHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	inspiration, err := h.store.GetDesignInspiration(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "inspiration_not_found", "design inspiration not found")
			return
		}
		httperr.Internal(c, "failed_to_get_inspiration", "failed to load design inspiration")
		return
	}

	if !authz.Can(currentUserID(c), authz.ActionView, inspiration) {
		httperr.Forbidden(c, "forbidden", "you do not own this design inspiration")
		return
	}

	httpresp.OK(c, inspiration)
}

func (h *DesignHandler) List(c *gin.Context) {
	inspirations, err := h.store.ListDesignInspirationsByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_list_inspirations", "failed to list design inspirations")
		return
	}

	httpresp.List(c, inspirations)
}
