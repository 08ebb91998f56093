package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/flaviorefit/projetos/internal/procurement/service"
)

// DashboardHandler serves the aggregated portfolio views. Both endpoints
// accept the same filter params as the project grid.
type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Overview GET /dashboard/overview
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.svc.Overview(c.Request.Context(), parseCriteria(c))
	if err != nil {
		InternalError(c, "load overview: "+err.Error())
		return
	}
	Success(c, overview)
}

// Timeline GET /dashboard/timeline
func (h *DashboardHandler) Timeline(c *gin.Context) {
	entries, err := h.svc.Timeline(c.Request.Context(), parseCriteria(c))
	if err != nil {
		InternalError(c, "load timeline: "+err.Error())
		return
	}
	Success(c, gin.H{"items": entries})
}
