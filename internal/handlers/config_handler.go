package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/RenoBuildCo/reno-marketplace/internal/config"
	"github.com/RenoBuildCo/reno-marketplace/internal/httpresp"
)

type ConfigHandler struct {
	config *config.Config
}

func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{config: cfg}
}

// GetClientConfig exposes the keys the browser client needs. Nothing
// secret goes here.
func (h *ConfigHandler) GetClientConfig(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"maps_api_key": h.config.MapsAPIKey,
	})
}
