package route

import (
	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/controller"
)

// SetupPaymentRoutes registra as rotas de pagamento dentro do escopo da empresa
func SetupPaymentRoutes(scoped *gin.RouterGroup, paymentController *controller.PaymentController) {
	payments := scoped.Group("/payments")
	{
		payments.POST("/create-intent", paymentController.CreateIntent)
		payments.POST("/confirm", paymentController.Confirm)
	}
}
