package routes

import (
	"localink_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route. The mobile and dashboard
// clients call the paths directly, so there is no version prefix.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("")
	{
		appHandlers.AuthHandler.RegisterRoutes(root)
		appHandlers.BusinessHandler.RegisterRoutes(root)
		appHandlers.PostHandler.RegisterRoutes(root)
		appHandlers.EventHandler.RegisterRoutes(root)
		appHandlers.NotificationHandler.RegisterRoutes(root)
		appHandlers.PaymentHandler.RegisterRoutes(root)
		appHandlers.ChatHandler.RegisterRoutes(root)
	}
}
