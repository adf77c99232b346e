package handlers

import (
	"net/http"

	"eventbridge_admin/internal/services"
	"eventbridge_admin/internal/services/dto"
	"eventbridge_admin/internal/validator"

	"github.com/gin-gonic/gin"
)

type SupportHandler struct {
	*BaseHandler
	supportService services.SupportService
}

func NewSupportHandler(base *validator.Validator, supportService services.SupportService) *SupportHandler {
	return &SupportHandler{
		BaseHandler:    NewBaseHandler(base),
		supportService: supportService,
	}
}

func (h *SupportHandler) RegisterRoutes(r *gin.RouterGroup) {
	support := r.Group("/support")
	{
		support.GET("/tickets", h.ListTickets)
		support.POST("/tickets", h.CreateTicket)
		support.GET("/tickets/:id", h.GetTicket)
		support.PATCH("/tickets/:id/status", h.UpdateTicketStatus)
		support.POST("/tickets/:id/messages", h.AddTicketMessage)

		support.GET("/flags", h.ListFlags)
		support.POST("/flags", h.CreateFlag)
		support.GET("/flags/:id", h.GetFlag)
		support.PATCH("/flags/:id/status", h.UpdateFlagStatus)
		support.DELETE("/flags/:id", h.DeleteFlag)
	}
}

func (h *SupportHandler) ListTickets(c *gin.Context) {
	var query dto.TicketListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.supportService.ListTickets(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SupportHandler) CreateTicket(c *gin.Context) {
	actor, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	var req dto.CreateTicketRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ticket, err := h.supportService.CreateTicket(actor, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ticket": ticket})
}

func (h *SupportHandler) GetTicket(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	ticket, err := h.supportService.GetTicket(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

func (h *SupportHandler) UpdateTicketStatus(c *gin.Context) {
	actor, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateTicketStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ticket, err := h.supportService.UpdateTicketStatus(actor, id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

func (h *SupportHandler) AddTicketMessage(c *gin.Context) {
	actor, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateTicketMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ticket, err := h.supportService.AddTicketMessage(actor, id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ticket": ticket})
}

func (h *SupportHandler) ListFlags(c *gin.Context) {
	var query dto.FlagListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.supportService.ListFlags(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SupportHandler) CreateFlag(c *gin.Context) {
	actor, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	var req dto.CreateFlagRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	flag, err := h.supportService.CreateFlag(actor, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"flag": flag})
}

func (h *SupportHandler) GetFlag(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	detail, err := h.supportService.GetFlag(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *SupportHandler) UpdateFlagStatus(c *gin.Context) {
	actor, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateFlagStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	flag, err := h.supportService.UpdateFlagStatus(actor, id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flag": flag})
}

func (h *SupportHandler) DeleteFlag(c *gin.Context) {
	actor, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.supportService.DeleteFlag(actor, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Flag deleted"})
}
