package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/renovation-marketplace/internal/audit"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/renovation-marketplace/internal/middleware"
)

type MeHandler struct {
	audit *audit.Logger
}

func NewMeHandler(logger *audit.Logger) *MeHandler {
	return &MeHandler{audit: logger}
}

// Activity lists the caller's own audit trail, newest first.
func (h *MeHandler) Activity(c *gin.Context) {
	who, err := identity.Require(middleware.CurrentIdentity(c))
	if err != nil {
		fail(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, err := h.audit.ListForUser(c.Request.Context(), who.UserID, limit)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, logs)
}
