package route

import (
	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/controller"
)

// SetupOrderRoutes registra as rotas de pedidos dentro do escopo da empresa
func SetupOrderRoutes(scoped *gin.RouterGroup, orderController *controller.OrderController) {
	orders := scoped.Group("/orders")
	{
		orders.POST("", orderController.Create)
		orders.GET("", orderController.List)
		orders.GET("/:id", orderController.Get)
		orders.PATCH("/:id/approve", orderController.Approve)
		orders.PATCH("/:id/ship", orderController.Ship)
		orders.PATCH("/:id/deliver", orderController.Deliver)
		orders.PATCH("/:id/cancel", orderController.Cancel)
	}
}
