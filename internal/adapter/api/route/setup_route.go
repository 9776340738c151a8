package route

import (
	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/controller"
	"github.com/carvasys/carvasys-api/pkg/auth"
)

// Controllers reúne os controllers usados na montagem das rotas
type Controllers struct {
	Auth         *controller.AuthController
	Company      *controller.CompanyController
	Client       *controller.ClientController
	Category     *controller.CategoryController
	Product      *controller.ProductController
	Fee          *controller.FeeController
	Transaction  *controller.TransactionController
	Order        *controller.OrderController
	Favored      *controller.FavoredController
	Notification *controller.NotificationController
	Payment      *controller.PaymentController
}

// SetupRoutes registra todas as rotas da API sob /api/v1. As rotas
// escopadas por empresa passam pela autenticação JWT e pelo middleware
// de resolução de tenant, nessa ordem, para que a checagem de vínculo
// conheça o cliente autenticado.
func SetupRoutes(router *gin.Engine, jwtService *auth.JWTService, tenantMiddleware gin.HandlerFunc, c Controllers) {
	api := router.Group("/api/v1")

	SetupAuthRoutes(api, c.Auth, jwtService)
	SetupCompanyRoutes(api, c.Company, jwtService, tenantMiddleware)
	SetupNotificationRoutes(api, c.Notification, jwtService)

	scoped := api.Group("/companies/:company")
	scoped.Use(auth.JWTAuthMiddleware(jwtService), tenantMiddleware)
	{
		SetupClientRoutes(scoped, c.Client)
		SetupCategoryRoutes(scoped, c.Category)
		SetupProductRoutes(scoped, c.Product)
		SetupFeeRoutes(scoped, c.Fee)
		SetupTransactionRoutes(scoped, c.Transaction)
		SetupOrderRoutes(scoped, c.Order)
		SetupFavoredRoutes(scoped, c.Favored)
		SetupPaymentRoutes(scoped, c.Payment)
	}
}
