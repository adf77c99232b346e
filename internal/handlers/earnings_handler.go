package handlers

import (
	"net/http"

	"eventbridge_admin/internal/services"
	"eventbridge_admin/internal/services/dto"
	"eventbridge_admin/internal/validator"

	"github.com/gin-gonic/gin"
)

type EarningsHandler struct {
	*BaseHandler
	earningsService services.EarningsService
}

func NewEarningsHandler(base *validator.Validator, earningsService services.EarningsService) *EarningsHandler {
	return &EarningsHandler{
		BaseHandler:     NewBaseHandler(base),
		earningsService: earningsService,
	}
}

func (h *EarningsHandler) RegisterRoutes(r *gin.RouterGroup) {
	earnings := r.Group("/earnings")
	{
		earnings.GET("/stats", h.Stats)
		earnings.GET("/chart", h.Chart)
		earnings.GET("/vendors", h.Vendors)
	}
}

func (h *EarningsHandler) Stats(c *gin.Context) {
	stats, err := h.earningsService.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *EarningsHandler) Chart(c *gin.Context) {
	months := ParseQueryInt(c, "months", 12)

	rows, err := h.earningsService.Chart(months)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chart": rows})
}

func (h *EarningsHandler) Vendors(c *gin.Context) {
	var query dto.VendorEarningsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.earningsService.Vendors(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
