package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/dto"
	"github.com/carvasys/carvasys-api/internal/adapter/repository"
	clientdomain "github.com/carvasys/carvasys-api/internal/domain/client"
	"github.com/carvasys/carvasys-api/internal/domain/clientuser"
	"github.com/carvasys/carvasys-api/pkg/auth"
	"github.com/carvasys/carvasys-api/pkg/logger"
)

// AuthController gerencia as requisições de autenticação do portal do cliente
type AuthController struct {
	clientUserRepo clientuser.Repository
	clientRepo     clientdomain.Repository
	jwtService     *auth.JWTService
	logger         logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(clientUserRepo clientuser.Repository, clientRepo clientdomain.Repository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		clientUserRepo: clientUserRepo,
		clientRepo:     clientRepo,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// Register cadastra um novo usuário no portal do cliente
// @Summary Registrar usuário
// @Description Cria o cliente (se o documento for inédito) e a identidade de acesso ao portal
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Dados de cadastro"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	// Reaproveita o cadastro do cliente quando o documento já existe
	cli, err := c.clientRepo.FindByDocument(ctx, req.Document)
	if err != nil {
		if !errors.Is(err, repository.ErrClientNotFound) {
			c.logger.Error("erro ao buscar cliente por documento", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
			return
		}

		cli, err = clientdomain.NewClient(req.Name, clientdomain.DocumentType(req.DocumentType), req.Document)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar cliente", err.Error()))
			return
		}
		cli.Email = req.Email
		cli.Phone = req.Phone

		if err := c.clientRepo.Create(ctx, cli); err != nil {
			c.logger.Error("erro ao criar cliente", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar cliente", err.Error()))
			return
		}
	}

	user, err := clientuser.NewClientUser(cli.ID, req.Email, req.Password)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar usuário", err.Error()))
		return
	}
	user.DocumentType = string(cli.DocumentType)
	user.DocumentNumber = cli.Document

	if err := c.clientUserRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrClientUserDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "email já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao criar usuário do portal", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar usuário", err.Error()))
		return
	}

	token, err := c.jwtService.GenerateToken(user)
	if err != nil {
		c.logger.Error("erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(c.jwtService.Expiration()),
		User:      dto.ToClientUserResponse(user),
	})
}

// Login autentica um usuário do portal do cliente
// @Summary Login
// @Description Autentica o usuário e retorna um token JWT. Após 5 tentativas falhadas a conta é bloqueada por 30 minutos
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 423 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	user, err := c.clientUserRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrClientUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", ""))
			return
		}
		c.logger.Error("erro ao buscar usuário do portal", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar usuário", err.Error()))
		return
	}

	if user.IsLocked() {
		ctx.JSON(http.StatusLocked, dto.NewErrorResponse(http.StatusLocked, "conta bloqueada temporariamente", clientuser.ErrAccountLocked.Error()))
		return
	}

	if !user.CheckPassword(req.Password) {
		user.RegisterFailedLogin()
		if err := c.clientUserRepo.UpdateLoginState(ctx, user); err != nil {
			c.logger.Error("erro ao registrar tentativa de login", "error", err)
		}
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", ""))
		return
	}

	user.RegisterSuccessfulLogin()
	if err := c.clientUserRepo.UpdateLoginState(ctx, user); err != nil {
		c.logger.Error("erro ao registrar login", "error", err)
	}

	token, err := c.jwtService.GenerateToken(user)
	if err != nil {
		c.logger.Error("erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(c.jwtService.Expiration()),
		User:      dto.ToClientUserResponse(user),
	})
}

// Me retorna o usuário autenticado
// @Summary Usuário autenticado
// @Description Retorna os dados do usuário do token
// @Tags auth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.ClientUserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := ctx.GetInt64("client_user_id")

	user, err := c.clientUserRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrClientUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "usuário não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar usuário do portal", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientUserResponse(user))
}

// Logout encerra a sessão do usuário do portal
// @Summary Logout
// @Description Encerra a sessão. Os tokens são stateless, então o cliente deve descartar o token após a chamada
// @Tags auth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("sessão encerrada", nil))
}
