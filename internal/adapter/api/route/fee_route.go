package route

import (
	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/controller"
)

// SetupFeeRoutes registra as rotas de taxas dentro do escopo da empresa
func SetupFeeRoutes(scoped *gin.RouterGroup, feeController *controller.FeeController) {
	fees := scoped.Group("/fees")
	{
		fees.POST("", feeController.Create)
		fees.GET("", feeController.List)
		fees.GET("/:id", feeController.Get)
		fees.PUT("/:id", feeController.Update)
		fees.DELETE("/:id", feeController.Delete)
	}
}
