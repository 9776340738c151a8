package route

import (
	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/controller"
)

// SetupClientRoutes registra as rotas de clientes dentro do escopo da empresa
func SetupClientRoutes(scoped *gin.RouterGroup, clientController *controller.ClientController) {
	clients := scoped.Group("/clients")
	{
		clients.POST("", clientController.Create)
		clients.GET("", clientController.List)
		clients.GET("/:id", clientController.Get)
		clients.PUT("/:id", clientController.Update)
		clients.DELETE("/:id", clientController.Detach)
	}
}
