package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/dto"
	"github.com/carvasys/carvasys-api/internal/adapter/repository"
	categorydomain "github.com/carvasys/carvasys-api/internal/domain/category"
	productdomain "github.com/carvasys/carvasys-api/internal/domain/product"
	"github.com/carvasys/carvasys-api/pkg/logger"
	"github.com/carvasys/carvasys-api/pkg/tenant"
)

// ProductController gerencia as requisições do catálogo de produtos
type ProductController struct {
	productRepo  productdomain.Repository
	categoryRepo categorydomain.Repository
	logger       logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, categoryRepo categorydomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// resolveCategory valida e traduz o UUID de categoria do corpo para o ID
// interno, escopado na empresa
func (c *ProductController) resolveCategory(ctx *gin.Context, companyID int64, categoryID *int64) (*int64, bool) {
	if categoryID == nil {
		return nil, true
	}

	cat, err := c.categoryRepo.FindByID(ctx, companyID, *categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "categoria não encontrada na empresa", err.Error()))
			return nil, false
		}
		c.logger.Error("erro ao buscar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar categoria", err.Error()))
		return nil, false
	}

	return &cat.ID, true
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto no catálogo da empresa
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	categoryID, ok := c.resolveCategory(ctx, companyID, req.CategoryID)
	if !ok {
		return
	}

	prod, err := productdomain.NewProduct(companyID, req.Name, req.Amount, req.Discounts, req.Quantity)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}
	prod.Description = req.Description
	prod.Image = req.Image
	prod.CategoryID = categoryID
	prod.SetFavoredPricing(req.FavoredPrice)

	if err := c.productRepo.Create(ctx, prod); err != nil {
		c.logger.Error("erro ao criar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(prod))
}

// List retorna os produtos da empresa
// @Summary Listar produtos
// @Description Retorna os produtos da empresa com filtros por categoria, nome e disponibilidade para fiado
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param category_id query int false "Filtrar por categoria"
// @Param name query string false "Filtrar por nome"
// @Param active query bool false "Somente ativos"
// @Param for_favored query bool false "Somente disponíveis para fiado"
// @Success 200 {object} dto.ProductListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/products [get]
func (c *ProductController) List(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	page, size = dto.NormalizePagination(page, size)

	offset := (page - 1) * size

	filter := productdomain.Filter{
		Name:       ctx.Query("name"),
		OnlyActive: ctx.Query("active") == "true",
	}

	if v := ctx.Query("category_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.CategoryID = &id
		}
	}

	if v := ctx.Query("for_favored"); v != "" {
		forFavored := v == "true"
		filter.ForFavored = &forFavored
	}

	products, err := c.productRepo.ListByCompany(ctx, companyID, filter, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	total, err := c.productRepo.CountByCompany(ctx, companyID, filter)
	if err != nil {
		c.logger.Error("erro ao contar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, page, size))
}

// Get retorna um produto pelo UUID
// @Summary Buscar produto
// @Description Retorna os dados de um produto pelo UUID
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	prod, err := c.productRepo.FindByUUID(ctx, companyID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(prod))
}

// Update atualiza um produto
// @Summary Atualizar produto
// @Description Atualiza os dados do produto, recalculando o total a partir de valor e descontos
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	prod, err := c.productRepo.FindByUUID(ctx, companyID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	categoryID, ok := c.resolveCategory(ctx, companyID, req.CategoryID)
	if !ok {
		return
	}

	if err := prod.Update(req.Name, req.Description, req.Image, categoryID, req.Quantity); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar produto", err.Error()))
		return
	}

	if err := prod.SetPricing(req.Amount, req.Discounts); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar preços", err.Error()))
		return
	}
	prod.SetFavoredPricing(req.FavoredPrice)

	if err := c.productRepo.Update(ctx, prod); err != nil {
		c.logger.Error("erro ao atualizar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(prod))
}

// Delete remove um produto
// @Summary Remover produto
// @Description Remove um produto do catálogo da empresa
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	prod, err := c.productRepo.FindByUUID(ctx, companyID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	if err := c.productRepo.Delete(ctx, companyID, prod.ID); err != nil {
		c.logger.Error("erro ao remover produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto removido", nil))
}
