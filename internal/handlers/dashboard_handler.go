package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/renovation-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/renovation-marketplace/internal/middleware"
	"github.com/BruksfildServices01/renovation-marketplace/internal/usecase/dashboard"
)

type DashboardHandler struct {
	dashboard *dashboard.Dashboard
}

func NewDashboardHandler(d *dashboard.Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboard: d}
}

func (h *DashboardHandler) Landing(c *gin.Context) {
	out, err := h.dashboard.Landing(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *DashboardHandler) Client(c *gin.Context) {
	out, err := h.dashboard.Client(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *DashboardHandler) Pro(c *gin.Context) {
	out, err := h.dashboard.Pro(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, out)
}
