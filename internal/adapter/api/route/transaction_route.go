package route

import (
	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/controller"
)

// SetupTransactionRoutes registra as rotas de vendas dentro do escopo da empresa
func SetupTransactionRoutes(scoped *gin.RouterGroup, transactionController *controller.TransactionController) {
	transactions := scoped.Group("/transactions")
	{
		transactions.POST("", transactionController.Create)
		transactions.GET("", transactionController.List)
		transactions.GET("/:id", transactionController.Get)
	}
}
