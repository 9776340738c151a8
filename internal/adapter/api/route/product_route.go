package route

import (
	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/controller"
)

// SetupProductRoutes registra as rotas do catálogo dentro do escopo da empresa
func SetupProductRoutes(scoped *gin.RouterGroup, productController *controller.ProductController) {
	products := scoped.Group("/products")
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", productController.Update)
		products.DELETE("/:id", productController.Delete)
	}
}
