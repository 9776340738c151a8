package route

import (
	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/controller"
	"github.com/carvasys/carvasys-api/pkg/auth"
)

// SetupCompanyRoutes configura as rotas de empresas. A listagem e a
// consulta são públicas (vitrine do marketplace); escrita requer
// autenticação e vínculo com a empresa.
func SetupCompanyRoutes(router *gin.RouterGroup, companyController *controller.CompanyController, jwtService *auth.JWTService, tenantMiddleware gin.HandlerFunc) {
	companies := router.Group("/companies")
	{
		companies.GET("", companyController.List)
		companies.POST("", auth.JWTAuthMiddleware(jwtService), companyController.Create)
		companies.GET("/:company", tenantMiddleware, companyController.Get)
		companies.PUT("/:company", auth.JWTAuthMiddleware(jwtService), tenantMiddleware, companyController.Update)
		companies.PATCH("/:company/status", auth.JWTAuthMiddleware(jwtService), tenantMiddleware, companyController.UpdateStatus)
	}

	router.GET("/my-companies", auth.JWTAuthMiddleware(jwtService), companyController.ListMine)
}
