package handlers

import (
	"net/http"

	"eventbridge_admin/internal/services"
	"eventbridge_admin/internal/services/dto"
	"eventbridge_admin/internal/validator"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *validator.Validator, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(base),
		authService: authService,
	}
}

// RegisterRoutes wires the public endpoints; RegisterProtectedRoutes the
// token-gated ones.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
	}
}

func (h *AuthHandler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.GET("/me", h.Me)
		auth.POST("/logout", h.Logout)
		auth.POST("/change-password", h.ChangePassword)
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.GetActingUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserResponse(user)})
}

// Logout is a formality with stateless tokens: the client drops its copy.
// The endpoint exists so the frontend has a single place to hit.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := h.GetActingUser(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(user, req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
