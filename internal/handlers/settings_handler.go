package handlers

import (
	"net/http"

	"eventbridge_admin/internal/services"
	"eventbridge_admin/internal/services/dto"
	"eventbridge_admin/internal/validator"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	*BaseHandler
	settingsService services.SettingsService
	auditService    services.AuditService
}

func NewSettingsHandler(base *validator.Validator, settingsService services.SettingsService, auditService services.AuditService) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler:     NewBaseHandler(base),
		settingsService: settingsService,
		auditService:    auditService,
	}
}

func (h *SettingsHandler) RegisterRoutes(r *gin.RouterGroup) {
	settings := r.Group("/settings")
	{
		settings.GET("/general", h.GetGeneral)
		settings.PUT("/general", h.UpdateGeneral)
		settings.GET("/payments", h.GetPayments)
		settings.PUT("/payments", h.UpdatePayments)

		settings.GET("/team", h.ListTeam)
		settings.PATCH("/team/:id", h.UpdateTeamMember)

		settings.GET("/roles", h.ListRoles)
		settings.POST("/roles", h.CreateRole)
		settings.PATCH("/roles/:id", h.UpdateRole)
		settings.DELETE("/roles/:id", h.DeleteRole)

		settings.GET("/audit-logs", h.ListAuditLogs)
	}
}

func (h *SettingsHandler) GetGeneral(c *gin.Context) {
	settings, err := h.settingsService.GetGeneral()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *SettingsHandler) UpdateGeneral(c *gin.Context) {
	actor, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	var req dto.UpdateAdminSettingsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	settings, err := h.settingsService.UpdateGeneral(actor, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *SettingsHandler) GetPayments(c *gin.Context) {
	settings, err := h.settingsService.GetPayments()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *SettingsHandler) UpdatePayments(c *gin.Context) {
	actor, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	var req dto.UpdatePaymentSettingsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	settings, err := h.settingsService.UpdatePayments(actor, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *SettingsHandler) ListTeam(c *gin.Context) {
	team, err := h.settingsService.ListTeam()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": team})
}

func (h *SettingsHandler) UpdateTeamMember(c *gin.Context) {
	actor, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateTeamMemberRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.settingsService.UpdateTeamMember(actor, id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *SettingsHandler) ListRoles(c *gin.Context) {
	roles, err := h.settingsService.ListRoles()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

func (h *SettingsHandler) CreateRole(c *gin.Context) {
	actor, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	var req dto.CreateRoleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	role, err := h.settingsService.CreateRole(actor, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"role": role})
}

func (h *SettingsHandler) UpdateRole(c *gin.Context) {
	actor, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateRoleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	role, err := h.settingsService.UpdateRole(actor, id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

func (h *SettingsHandler) DeleteRole(c *gin.Context) {
	actor, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.settingsService.DeleteRole(actor, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role deleted"})
}

func (h *SettingsHandler) ListAuditLogs(c *gin.Context) {
	var query dto.AuditLogQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}
	query.Limit = limit

	entries, total, err := h.auditService.List(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"logs":  entries,
		"total": total,
		"page":  query.Page,
		"limit": limit,
	})
}
