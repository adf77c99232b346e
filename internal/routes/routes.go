package routes

import (
	"net/http"
	"time"

	"eventbridge_admin/internal/auth"
	"eventbridge_admin/internal/handlers"
	"eventbridge_admin/internal/middleware"
	"eventbridge_admin/internal/repositories"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all HTTP routes. Login and register are public; reads
// on users, dashboard and support need a valid token; verification review,
// earnings, settings and every mutation of another account are admin-only.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokenManager *auth.TokenManager,
	userRepo repositories.UserRepository,
) {
	ginRouter.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
	}

	authed := ginRouter.Group("/api")
	authed.Use(middleware.AuthMiddleware(tokenManager, userRepo))
	{
		appHandlers.AuthHandler.RegisterProtectedRoutes(authed)
		appHandlers.DashboardHandler.RegisterRoutes(authed)
		appHandlers.UserHandler.RegisterRoutes(authed)
		appHandlers.SupportHandler.RegisterRoutes(authed)
	}

	admin := ginRouter.Group("/api")
	admin.Use(middleware.AuthMiddleware(tokenManager, userRepo), middleware.RequireAdmin())
	{
		appHandlers.DashboardHandler.RegisterAdminRoutes(admin)
		appHandlers.UserHandler.RegisterAdminRoutes(admin)
		appHandlers.VerificationHandler.RegisterRoutes(admin)
		appHandlers.EarningsHandler.RegisterRoutes(admin)
		appHandlers.SettingsHandler.RegisterRoutes(admin)
	}
}
