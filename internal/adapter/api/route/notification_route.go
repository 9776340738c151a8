package route

import (
	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/controller"
	"github.com/carvasys/carvasys-api/pkg/auth"
)

// SetupNotificationRoutes registra as rotas de notificações do portal.
// São por usuário, não por empresa, então ficam fora do escopo de tenant.
func SetupNotificationRoutes(router *gin.RouterGroup, notificationController *controller.NotificationController, jwtService *auth.JWTService) {
	notifications := router.Group("/notifications")
	notifications.Use(auth.JWTAuthMiddleware(jwtService))
	{
		notifications.GET("", notificationController.List)
		notifications.GET("/unread-count", notificationController.UnreadCount)
		notifications.GET("/:id", notificationController.Get)
		notifications.PATCH("/read-all", notificationController.MarkAllAsRead)
		notifications.PATCH("/:id/read", notificationController.MarkAsRead)
		notifications.PATCH("/:id/unread", notificationController.MarkAsUnread)
	}
}
