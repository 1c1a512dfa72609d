package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RenoBuildCo/reno-marketplace/internal/httperr"
	"github.com/RenoBuildCo/reno-marketplace/internal/middleware"
)

func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// writeBusiness maps business error codes onto the HTTP taxonomy:
// forbidden -> 403, *_not_found -> 404, invalid_* -> 400, else 500.
func writeBusiness(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "something went wrong")
		return
	}

	switch {
	case be.Code == "forbidden":
		httperr.Forbidden(c, "forbidden", "you do not own this resource")
	case strings.HasSuffix(be.Code, "_not_found"):
		httperr.NotFound(c, be.Code, "resource not found")
	case strings.HasPrefix(be.Code, "invalid_"):
		httperr.BadRequest(c, be.Code, "invalid request")
	default:
		httperr.Internal(c, be.Code, "something went wrong")
	}
}
