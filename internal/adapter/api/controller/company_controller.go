package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/dto"
	"github.com/carvasys/carvasys-api/internal/adapter/repository"
	companydomain "github.com/carvasys/carvasys-api/internal/domain/company"
	"github.com/carvasys/carvasys-api/pkg/logger"
	"github.com/carvasys/carvasys-api/pkg/tenant"
)

// CompanyController gerencia as requisições relacionadas a empresas
type CompanyController struct {
	companyRepo companydomain.Repository
	logger      logger.Logger
}

// NewCompanyController cria uma nova instância de CompanyController
func NewCompanyController(companyRepo companydomain.Repository, logger logger.Logger) *CompanyController {
	return &CompanyController{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// Create cria uma nova empresa
// @Summary Criar empresa
// @Description Cria uma nova empresa no marketplace
// @Tags companies
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company body dto.CompanyRequest true "Dados da empresa"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [post]
func (c *CompanyController) Create(ctx *gin.Context) {
	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	comp, err := companydomain.NewCompany(req.Name, companydomain.MarketplaceType(req.MarketplaceType))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar empresa", err.Error()))
		return
	}
	comp.LogoURL = req.LogoURL

	if err := c.companyRepo.Create(ctx, comp); err != nil {
		c.logger.Error("erro ao criar empresa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar empresa", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCompanyResponse(comp))
}

// List retorna a lista de empresas
// @Summary Listar empresas
// @Description Retorna a lista de empresas paginada
// @Tags companies
// @Accept json
// @Produce json
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.CompanyListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [get]
func (c *CompanyController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	page, size = dto.NormalizePagination(page, size)

	offset := (page - 1) * size

	companies, err := c.companyRepo.List(ctx, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar empresas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar empresas", err.Error()))
		return
	}

	total, err := c.companyRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar empresas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar empresas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyListResponse(companies, total, page, size))
}

// ListMine retorna as empresas vinculadas ao cliente autenticado
// @Summary Minhas empresas
// @Description Retorna as empresas às quais o cliente autenticado tem vínculo ativo
// @Tags companies
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.CompanyListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /my-companies [get]
func (c *CompanyController) ListMine(ctx *gin.Context) {
	clientID := ctx.GetInt64("client_id")

	companies, err := c.companyRepo.ListByClient(ctx, clientID)
	if err != nil {
		c.logger.Error("erro ao listar empresas do cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar empresas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyListResponse(companies, len(companies), 1, len(companies)))
}

// Get retorna a empresa resolvida pela rota
// @Summary Buscar empresa
// @Description Retorna os dados da empresa identificada por UUID ou ID numérico
// @Tags companies
// @Accept json
// @Produce json
// @Param company path string true "UUID ou ID da empresa"
// @Success 200 {object} dto.CompanyResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /companies/{company} [get]
func (c *CompanyController) Get(ctx *gin.Context) {
	comp, ok := tenant.CompanyFromContext(ctx.Request.Context())
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "empresa não encontrada", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyResponse(comp))
}

// Update atualiza os metadados da empresa
// @Summary Atualizar empresa
// @Description Atualiza nome, segmento e logo da empresa
// @Tags companies
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param company body dto.CompanyRequest true "Dados da empresa"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company} [put]
func (c *CompanyController) Update(ctx *gin.Context) {
	comp, ok := tenant.CompanyFromContext(ctx.Request.Context())
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "empresa não encontrada", ""))
		return
	}

	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	comp.Name = req.Name
	comp.UpdateMetadata(companydomain.MarketplaceType(req.MarketplaceType), req.LogoURL)

	if err := c.companyRepo.Update(ctx, comp); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "empresa não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar empresa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar empresa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyResponse(comp))
}

// UpdateStatus ativa ou desativa a empresa
// @Summary Atualizar status da empresa
// @Description Altera o status da empresa entre active e inactive
// @Tags companies
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param status body dto.CompanyStatusRequest true "Novo status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/status [patch]
func (c *CompanyController) UpdateStatus(ctx *gin.Context) {
	comp, ok := tenant.CompanyFromContext(ctx.Request.Context())
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "empresa não encontrada", ""))
		return
	}

	var req dto.CompanyStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.companyRepo.UpdateStatus(ctx, comp.ID, req.Status); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "empresa não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar status da empresa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar status", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("status atualizado", nil))
}
