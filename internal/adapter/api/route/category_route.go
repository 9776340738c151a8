package route

import (
	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/controller"
)

// SetupCategoryRoutes registra as rotas de categorias dentro do escopo da empresa
func SetupCategoryRoutes(scoped *gin.RouterGroup, categoryController *controller.CategoryController) {
	categories := scoped.Group("/categories")
	{
		categories.POST("", categoryController.Create)
		categories.GET("", categoryController.List)
		categories.GET("/:id", categoryController.Get)
		categories.PUT("/:id", categoryController.Update)
		categories.DELETE("/:id", categoryController.Delete)
	}
}
