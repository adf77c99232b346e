package handlers

import (
	"net/http"

	"eventbridge_admin/internal/services"
	"eventbridge_admin/internal/services/dto"
	"eventbridge_admin/internal/validator"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	*BaseHandler
	verificationService services.VerificationService
}

func NewVerificationHandler(base *validator.Validator, verificationService services.VerificationService) *VerificationHandler {
	return &VerificationHandler{
		BaseHandler:         NewBaseHandler(base),
		verificationService: verificationService,
	}
}

func (h *VerificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	verifications := r.Group("/verifications")
	{
		verifications.GET("", h.List)
		verifications.GET("/:id", h.Get)
		verifications.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *VerificationHandler) List(c *gin.Context) {
	var query dto.VerificationListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.verificationService.List(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *VerificationHandler) Get(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	verification, err := h.verificationService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"verification": verification})
}

func (h *VerificationHandler) UpdateStatus(c *gin.Context) {
	actor, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateVerificationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	verification, err := h.verificationService.UpdateStatus(actor, id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"verification": verification})
}
