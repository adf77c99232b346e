package handlers

import (
	"net/http"

	"eventbridge_admin/internal/services"
	"eventbridge_admin/internal/validator"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *validator.Validator, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      NewBaseHandler(base),
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/stats", h.Stats)
		dashboard.GET("/growth", h.Growth)
	}
}

// RegisterAdminRoutes holds the widgets only admins may read.
func (h *DashboardHandler) RegisterAdminRoutes(r *gin.RouterGroup) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/verifications", h.VerificationBreakdown)
	}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) Growth(c *gin.Context) {
	months := ParseQueryInt(c, "months", 12)

	rows, err := h.dashboardService.Growth(months)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"growth": rows})
}

func (h *DashboardHandler) VerificationBreakdown(c *gin.Context) {
	breakdown, err := h.dashboardService.VerificationBreakdown()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}
