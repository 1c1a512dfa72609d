package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/RenoBuildCo/reno-marketplace/internal/httperr"
	"github.com/RenoBuildCo/reno-marketplace/internal/httpresp"
	"github.com/RenoBuildCo/reno-marketplace/internal/store"
)

type MeHandler struct {
	store store.Store
}

func NewMeHandler(s store.Store) *MeHandler {
	return &MeHandler{store: s}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.store.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "user_not_found", "user not found")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "failed to load user")
		return
	}

	httpresp.OK(c, user)
}
