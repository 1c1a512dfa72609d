package handlers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RenoBuildCo/reno-marketplace/internal/ai"
	"github.com/RenoBuildCo/reno-marketplace/internal/cache"
	"github.com/RenoBuildCo/reno-marketplace/internal/httperr"
	"github.com/RenoBuildCo/reno-marketplace/internal/httpresp"
)

const (
	estimateCacheTTL = 6 * time.Hour
	aiRateLimit      = 10
	aiRateWindow     = time.Minute
)

type EstimateHandler struct {
	estimator *ai.Estimator
	cache     *cache.Cache
}

func NewEstimateHandler(estimator *ai.Estimator, c *cache.Cache) *EstimateHandler {
	return &EstimateHandler{estimator: estimator, cache: c}
}

// --------- Requests ---------

type RenovationEstimateRequest struct {
	RenovationType string `json:"renovationType" binding:"required"`
	SquareFootage  int    `json:"squareFootage" binding:"required,min=1"`
	QualityLevel   string `json:"qualityLevel" binding:"required"`
	Location       string `json:"location" binding:"required"`
	Scope          string `json:"scope" binding:"required"`
}

type ConstructionEstimateRequest struct {
	ConstructionType string `json:"constructionType" binding:"required"`
	SquareFootage    int    `json:"squareFootage" binding:"required,min=1"`
	Stories          string `json:"stories" binding:"required"`
	QualityLevel     string `json:"qualityLevel" binding:"required"`
	Location         string `json:"location" binding:"required"`
	LotSize          string `json:"lotSize" binding:"required"`
	Details          string `json:"details"`
}

// --------- Handlers ---------

func (h *EstimateHandler) Renovation(c *gin.Context) {
	var req RenovationEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctx := c.Request.Context()

	if !h.cache.Allow(ctx, "estimate:"+c.ClientIP(), aiRateLimit, aiRateWindow) {
		httperr.TooManyRequests(c, "rate_limited", "too many estimate requests, slow down")
		return
	}

	key := cache.Key("renovation", req.RenovationType, req.SquareFootage, req.QualityLevel, req.Location, req.Scope)
	if cached, ok := h.cache.Get(ctx, key); ok {
		var result ai.EstimateResult
		if json.Unmarshal([]byte(cached), &result) == nil {
			httpresp.OK(c, result)
			return
		}
	}

	result, err := h.estimator.EstimateRenovation(ctx, ai.RenovationInput{
		RenovationType: req.RenovationType,
		SquareFootage:  req.SquareFootage,
		QualityLevel:   req.QualityLevel,
		Location:       req.Location,
		Scope:          req.Scope,
	})
	if err != nil {
		h.writeAIError(c, err, "failed to generate renovation estimate")
		return
	}

	if b, err := json.Marshal(result); err == nil {
		h.cache.Set(ctx, key, string(b), estimateCacheTTL)
	}

	httpresp.OK(c, result)
}

func (h *EstimateHandler) Construction(c *gin.Context) {
	var req ConstructionEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctx := c.Request.Context()

	if !h.cache.Allow(ctx, "estimate:"+c.ClientIP(), aiRateLimit, aiRateWindow) {
		httperr.TooManyRequests(c, "rate_limited", "too many estimate requests, slow down")
		return
	}

	key := cache.Key("construction", req.ConstructionType, req.SquareFootage, req.Stories, req.QualityLevel, req.Location, req.LotSize, req.Details)
	if cached, ok := h.cache.Get(ctx, key); ok {
		var result ai.EstimateResult
		if json.Unmarshal([]byte(cached), &result) == nil {
			httpresp.OK(c, result)
			return
		}
	}

	result, err := h.estimator.EstimateConstruction(ctx, ai.ConstructionInput{
		ConstructionType: req.ConstructionType,
		SquareFootage:    req.SquareFootage,
		Stories:          req.Stories,
		QualityLevel:     req.QualityLevel,
		Location:         req.Location,
		LotSize:          req.LotSize,
		Details:          req.Details,
	})
	if err != nil {
		h.writeAIError(c, err, "failed to generate construction estimate")
		return
	}

	if b, err := json.Marshal(result); err == nil {
		h.cache.Set(ctx, key, string(b), estimateCacheTTL)
	}

	httpresp.OK(c, result)
}

// writeAIError distinguishes upstream quota exhaustion from everything
// else.
func (h *EstimateHandler) writeAIError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, ai.ErrRateLimited) {
		httperr.Internal(c, "ai_rate_limited", "AI provider rate limit exceeded, please try again later")
		return
	}
	httperr.Internal(c, "ai_error", fallback)
}
