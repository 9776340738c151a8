package route

import (
	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/controller"
	"github.com/carvasys/carvasys-api/pkg/auth"
)

// SetupAuthRoutes configura as rotas de autenticação do portal do cliente
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, jwtService *auth.JWTService) {
	authRouter := router.Group("/auth")
	{
		// Cadastro e login não requerem autenticação
		authRouter.POST("/register", authController.Register)
		authRouter.POST("/login", authController.Login)

		// Dados do usuário autenticado
		authRouter.GET("/me", auth.JWTAuthMiddleware(jwtService), authController.Me)
		authRouter.POST("/logout", auth.JWTAuthMiddleware(jwtService), authController.Logout)
	}
}
