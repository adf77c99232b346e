package handlers

import (
	"net/http"

	"eventbridge_admin/internal/services"
	"eventbridge_admin/internal/services/dto"
	"eventbridge_admin/internal/validator"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *validator.Validator, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(base),
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:id", h.Get)
	}
}

// RegisterAdminRoutes covers the mutations: deactivation and soft delete.
func (h *UserHandler) RegisterAdminRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.PATCH("/:id/status", h.SetStatus)
		users.DELETE("/:id", h.Delete)
	}
}

func (h *UserHandler) List(c *gin.Context) {
	var query dto.UserListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.userService.List(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) SetStatus(c *gin.Context) {
	actor, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateUserStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.SetStatus(actor, id, *req.IsActive)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) Delete(c *gin.Context) {
	actor, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Body is optional here: a bare DELETE records an unexplained removal.
	var req dto.DeleteUserRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.userService.Delete(actor, id, req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
