package middleware

import (
	"strings"

	"eventbridge_admin/internal/auth"
	"eventbridge_admin/internal/logger"
	"eventbridge_admin/internal/models"
	"eventbridge_admin/internal/repositories"
	"eventbridge_admin/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserKey is where the authenticated user lands in the gin context.
	ContextUserKey = "currentUser"
)

// AuthMiddleware verifies the bearer token and re-fetches the user row on
// every request. A token stays structurally valid after deactivation, so the
// live lookup is what makes deactivation take effect on the next request.
func AuthMiddleware(tm *auth.TokenManager, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := tm.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}
		if !user.IsActive {
			apperrors.HandleError(c, apperrors.ErrAccountDeactivated)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))
		c.Next()
	}
}

// RequireAdmin gates a route group to ADMIN accounts. Runs after
// AuthMiddleware; a missing user here means a wiring bug, treated as
// unauthenticated rather than a 500.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if user.AccountType != models.AccountTypeAdmin {
			apperrors.HandleError(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
