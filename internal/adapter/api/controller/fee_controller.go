package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/dto"
	"github.com/carvasys/carvasys-api/internal/adapter/repository"
	feedomain "github.com/carvasys/carvasys-api/internal/domain/fee"
	"github.com/carvasys/carvasys-api/pkg/logger"
	"github.com/carvasys/carvasys-api/pkg/tenant"
)

// FeeController gerencia as requisições de taxas da empresa
type FeeController struct {
	feeRepo feedomain.Repository
	logger  logger.Logger
}

// NewFeeController cria uma nova instância de FeeController
func NewFeeController(feeRepo feedomain.Repository, logger logger.Logger) *FeeController {
	return &FeeController{
		feeRepo: feeRepo,
		logger:  logger,
	}
}

// Create cria uma nova taxa
// @Summary Criar taxa
// @Description Cria uma nova taxa (percentual ou fixa) na empresa
// @Tags fees
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param fee body dto.FeeRequest true "Dados da taxa"
// @Success 201 {object} dto.FeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/fees [post]
func (c *FeeController) Create(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	var req dto.FeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	f, err := feedomain.NewFee(companyID, req.Description, req.Amount, feedomain.Type(req.Type))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar taxa", err.Error()))
		return
	}

	if err := c.feeRepo.Create(ctx, f); err != nil {
		c.logger.Error("erro ao criar taxa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar taxa", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFeeResponse(f))
}

// List retorna as taxas da empresa
// @Summary Listar taxas
// @Description Retorna as taxas cadastradas na empresa
// @Tags fees
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.FeeListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/fees [get]
func (c *FeeController) List(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "50"))
	page, size = dto.NormalizePagination(page, size)

	offset := (page - 1) * size

	fees, err := c.feeRepo.ListByCompany(ctx, companyID, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar taxas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar taxas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFeeListResponse(fees))
}

// Get retorna uma taxa pelo UUID
// @Summary Buscar taxa
// @Description Retorna os dados de uma taxa pelo UUID
// @Tags fees
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID da taxa"
// @Success 200 {object} dto.FeeResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/fees/{id} [get]
func (c *FeeController) Get(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	f, err := c.feeRepo.FindByUUID(ctx, companyID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrFeeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "taxa não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar taxa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar taxa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFeeResponse(f))
}

// Update atualiza uma taxa
// @Summary Atualizar taxa
// @Description Atualiza descrição, valor e tipo de uma taxa
// @Tags fees
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID da taxa"
// @Param fee body dto.FeeRequest true "Dados da taxa"
// @Success 200 {object} dto.FeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/fees/{id} [put]
func (c *FeeController) Update(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	var req dto.FeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	f, err := c.feeRepo.FindByUUID(ctx, companyID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrFeeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "taxa não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar taxa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar taxa", err.Error()))
		return
	}

	if err := f.Update(req.Description, req.Amount, feedomain.Type(req.Type)); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar taxa", err.Error()))
		return
	}

	if err := c.feeRepo.Update(ctx, f); err != nil {
		c.logger.Error("erro ao atualizar taxa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar taxa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFeeResponse(f))
}

// Delete remove uma taxa
// @Summary Remover taxa
// @Description Remove uma taxa da empresa
// @Tags fees
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID da taxa"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/fees/{id} [delete]
func (c *FeeController) Delete(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	f, err := c.feeRepo.FindByUUID(ctx, companyID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrFeeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "taxa não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar taxa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar taxa", err.Error()))
		return
	}

	if err := c.feeRepo.Delete(ctx, companyID, f.ID); err != nil {
		c.logger.Error("erro ao remover taxa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover taxa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("taxa removida", nil))
}
