package route

import (
	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/controller"
)

// SetupFavoredRoutes registra as rotas do livro de fiado dentro do escopo da empresa
func SetupFavoredRoutes(scoped *gin.RouterGroup, favoredController *controller.FavoredController) {
	favored := scoped.Group("/favored")
	{
		favored.POST("", favoredController.Create)
		favored.GET("", favoredController.List)
		favored.GET("/upcoming", favoredController.Upcoming)
		favored.GET("/clients", favoredController.Clients)
		favored.GET("/clients/:client_id/summary", favoredController.Summary)
		favored.GET("/:id", favoredController.Get)
		favored.PUT("/:id", favoredController.Update)
		favored.DELETE("/:id", favoredController.Delete)
		favored.POST("/:id/pay", favoredController.Pay)
	}
}
