package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/dto"
	"github.com/carvasys/carvasys-api/internal/adapter/repository"
	categorydomain "github.com/carvasys/carvasys-api/internal/domain/category"
	"github.com/carvasys/carvasys-api/pkg/logger"
	"github.com/carvasys/carvasys-api/pkg/tenant"
)

// CategoryController gerencia as requisições de categorias de produtos
type CategoryController struct {
	categoryRepo categorydomain.Repository
	logger       logger.Logger
}

// NewCategoryController cria uma nova instância de CategoryController
func NewCategoryController(categoryRepo categorydomain.Repository, logger logger.Logger) *CategoryController {
	return &CategoryController{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create cria uma nova categoria
// @Summary Criar categoria
// @Description Cria uma nova categoria de produtos na empresa
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cat, err := categorydomain.NewCategory(companyID, req.Name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar categoria", err.Error()))
		return
	}

	if err := c.categoryRepo.Create(ctx, cat); err != nil {
		if errors.Is(err, repository.ErrCategoryDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "categoria já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao criar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(cat))
}

// List retorna as categorias da empresa
// @Summary Listar categorias
// @Description Retorna as categorias de produtos da empresa
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.CategoryListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "50"))
	page, size = dto.NormalizePagination(page, size)

	offset := (page - 1) * size

	categories, err := c.categoryRepo.ListByCompany(ctx, companyID, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar categorias", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories))
}

// Get retorna uma categoria pelo UUID
// @Summary Buscar categoria
// @Description Retorna os dados de uma categoria pelo UUID
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/categories/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	cat, err := c.categoryRepo.FindByUUID(ctx, companyID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

// Update renomeia uma categoria
// @Summary Atualizar categoria
// @Description Atualiza o nome de uma categoria
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID da categoria"
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cat, err := c.categoryRepo.FindByUUID(ctx, companyID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar categoria", err.Error()))
		return
	}

	if err := cat.Rename(req.Name); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar categoria", err.Error()))
		return
	}

	if err := c.categoryRepo.Update(ctx, cat); err != nil {
		if errors.Is(err, repository.ErrCategoryDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "categoria já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

// Delete remove uma categoria
// @Summary Remover categoria
// @Description Remove uma categoria da empresa
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID da categoria"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	cat, err := c.categoryRepo.FindByUUID(ctx, companyID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar categoria", err.Error()))
		return
	}

	if err := c.categoryRepo.Delete(ctx, companyID, cat.ID); err != nil {
		c.logger.Error("erro ao remover categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("categoria removida", nil))
}
