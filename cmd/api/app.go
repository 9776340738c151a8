package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/carvasys/carvasys-api/docs"
	"github.com/carvasys/carvasys-api/internal/adapter/api/controller"
	"github.com/carvasys/carvasys-api/internal/adapter/api/route"
	"github.com/carvasys/carvasys-api/internal/adapter/repository"
	"github.com/carvasys/carvasys-api/internal/infrastructure/database"
	"github.com/carvasys/carvasys-api/pkg/auth"
	"github.com/carvasys/carvasys-api/pkg/logger"
	"github.com/carvasys/carvasys-api/pkg/payment"
	"github.com/carvasys/carvasys-api/pkg/tenant"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo com todas as
// dependências montadas
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar com o banco de dados: %w", err)
	}

	// Criar repositórios
	companyRepo := repository.NewCompanyRepository(db)
	clientRepo := repository.NewClientRepository(db)
	clientUserRepo := repository.NewClientUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	feeRepo := repository.NewFeeRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	favoredRepo := repository.NewFavoredRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Criar serviços
	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, fmt.Errorf("erro ao configurar JWT: %w", err)
	}

	stripeService, err := payment.NewStripeService()
	if err != nil {
		return nil, fmt.Errorf("erro ao configurar Stripe: %w", err)
	}

	// Criar middleware de tenant
	resolver := repository.NewCompanyResolver(companyRepo)
	tenantMiddleware := tenant.Middleware(resolver)

	// Criar controllers
	controllers := route.Controllers{
		Auth:         controller.NewAuthController(clientUserRepo, clientRepo, jwtService, log),
		Company:      controller.NewCompanyController(companyRepo, log),
		Client:       controller.NewClientController(clientRepo, log),
		Category:     controller.NewCategoryController(categoryRepo, log),
		Product:      controller.NewProductController(productRepo, categoryRepo, log),
		Fee:          controller.NewFeeController(feeRepo, log),
		Transaction:  controller.NewTransactionController(transactionRepo, productRepo, categoryRepo, feeRepo, clientRepo, log),
		Order:        controller.NewOrderController(orderRepo, productRepo, feeRepo, clientUserRepo, notificationRepo, log),
		Favored:      controller.NewFavoredController(favoredRepo, clientRepo, productRepo, categoryRepo, clientUserRepo, notificationRepo, log),
		Notification: controller.NewNotificationController(notificationRepo, log),
		Payment:      controller.NewPaymentController(stripeService, favoredRepo, log),
	}

	// Configurar router
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// Configurar CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Registrar rotas da API
	route.SetupRoutes(router, jwtService, tenantMiddleware, controllers)

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("iniciando servidor", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
