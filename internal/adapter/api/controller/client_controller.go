package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/dto"
	"github.com/carvasys/carvasys-api/internal/adapter/repository"
	clientdomain "github.com/carvasys/carvasys-api/internal/domain/client"
	"github.com/carvasys/carvasys-api/pkg/logger"
	"github.com/carvasys/carvasys-api/pkg/tenant"
)

// ClientController gerencia as requisições de clientes dentro de uma empresa
type ClientController struct {
	clientRepo clientdomain.Repository
	logger     logger.Logger
}

// NewClientController cria uma nova instância de ClientController
func NewClientController(clientRepo clientdomain.Repository, logger logger.Logger) *ClientController {
	return &ClientController{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// List retorna os clientes com vínculo ativo na empresa
// @Summary Listar clientes da empresa
// @Description Retorna os clientes vinculados à empresa, paginados
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.ClientListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/clients [get]
func (c *ClientController) List(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	page, size = dto.NormalizePagination(page, size)

	offset := (page - 1) * size

	clients, err := c.clientRepo.ListByCompany(ctx, companyID, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar clientes", err.Error()))
		return
	}

	total, err := c.clientRepo.CountByCompany(ctx, companyID)
	if err != nil {
		c.logger.Error("erro ao contar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(clients, total, page, size))
}

// Get retorna um cliente pelo UUID
// @Summary Buscar cliente
// @Description Retorna os dados de um cliente pelo UUID
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/clients/{id} [get]
func (c *ClientController) Get(ctx *gin.Context) {
	uuid := ctx.Param("id")

	cli, err := c.clientRepo.FindByUUID(ctx, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(cli))
}

// Create cadastra um cliente e o vincula à empresa
// @Summary Criar cliente na empresa
// @Description Cria o cliente (ou reaproveita pelo documento) e ativa o vínculo com a empresa
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/clients [post]
func (c *ClientController) Create(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

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

	if err := c.clientRepo.AttachCompany(ctx, cli.ID, companyID); err != nil {
		c.logger.Error("erro ao vincular cliente à empresa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao vincular cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(cli))
}

// Update atualiza os dados cadastrais de um cliente
// @Summary Atualizar cliente
// @Description Atualiza nome, email e telefone do cliente
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID do cliente"
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/clients/{id} [put]
func (c *ClientController) Update(ctx *gin.Context) {
	uuid := ctx.Param("id")

	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cli, err := c.clientRepo.FindByUUID(ctx, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	if err := cli.Update(req.Name, req.Email, req.Phone); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar cliente", err.Error()))
		return
	}

	if err := c.clientRepo.Update(ctx, cli); err != nil {
		c.logger.Error("erro ao atualizar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(cli))
}

// Detach desativa o vínculo do cliente com a empresa
// @Summary Desvincular cliente
// @Description Desativa o vínculo do cliente com a empresa sem remover o cadastro
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/clients/{id} [delete]
func (c *ClientController) Detach(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	cli, err := c.clientRepo.FindByUUID(ctx, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	if err := c.clientRepo.DetachCompany(ctx, cli.ID, companyID); err != nil {
		c.logger.Error("erro ao desvincular cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao desvincular cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("vínculo desativado", nil))
}
