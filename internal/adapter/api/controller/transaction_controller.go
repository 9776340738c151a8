package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/dto"
	"github.com/carvasys/carvasys-api/internal/adapter/repository"
	categorydomain "github.com/carvasys/carvasys-api/internal/domain/category"
	clientdomain "github.com/carvasys/carvasys-api/internal/domain/client"
	feedomain "github.com/carvasys/carvasys-api/internal/domain/fee"
	productdomain "github.com/carvasys/carvasys-api/internal/domain/product"
	transactiondomain "github.com/carvasys/carvasys-api/internal/domain/transaction"
	"github.com/carvasys/carvasys-api/pkg/logger"
	"github.com/carvasys/carvasys-api/pkg/tenant"
)

// TransactionController gerencia os registros de venda no ponto de venda
type TransactionController struct {
	transactionRepo transactiondomain.Repository
	productRepo     productdomain.Repository
	categoryRepo    categorydomain.Repository
	feeRepo         feedomain.Repository
	clientRepo      clientdomain.Repository
	logger          logger.Logger
}

// NewTransactionController cria uma nova instância de TransactionController
func NewTransactionController(
	transactionRepo transactiondomain.Repository,
	productRepo productdomain.Repository,
	categoryRepo categorydomain.Repository,
	feeRepo feedomain.Repository,
	clientRepo clientdomain.Repository,
	logger logger.Logger,
) *TransactionController {
	return &TransactionController{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		feeRepo:         feeRepo,
		clientRepo:      clientRepo,
		logger:          logger,
	}
}

// Create registra uma venda
// @Summary Registrar venda
// @Description Registra uma venda no ponto de venda. Os nomes de categoria e cliente são copiados como snapshot e não acompanham alterações futuras
// @Tags transactions
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param transaction body dto.TransactionRequest true "Dados da venda"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/transactions [post]
func (c *TransactionController) Create(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	var snapshot transactiondomain.Snapshot
	var productID, feeID, clientID, categoryID *int64
	var feeAmount float64

	if req.ProductUUID != "" {
		prod, err := c.productRepo.FindByUUID(ctx, companyID, req.ProductUUID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "produto não encontrado na empresa", err.Error()))
				return
			}
			c.logger.Error("erro ao buscar produto", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
			return
		}
		productID = &prod.ID
		categoryID = prod.CategoryID

		if prod.CategoryID != nil {
			cat, err := c.categoryRepo.FindByID(ctx, companyID, *prod.CategoryID)
			if err == nil {
				snapshot.CategoryName = cat.Name
			}
		}
	}

	if req.FeeUUID != "" {
		f, err := c.feeRepo.FindByUUID(ctx, companyID, req.FeeUUID)
		if err != nil {
			if errors.Is(err, repository.ErrFeeNotFound) {
				ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "taxa não encontrada na empresa", err.Error()))
				return
			}
			c.logger.Error("erro ao buscar taxa", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar taxa", err.Error()))
			return
		}
		feeID = &f.ID
		feeAmount = f.Apply(req.Amount - req.Discounts)
	}

	if req.ClientUUID != "" {
		cli, err := c.clientRepo.FindByUUID(ctx, req.ClientUUID)
		if err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "cliente não encontrado", err.Error()))
				return
			}
			c.logger.Error("erro ao buscar cliente", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
			return
		}
		clientID = &cli.ID
		snapshot.ClientName = cli.Name
	}

	trans, err := transactiondomain.NewTransaction(companyID, req.Name, req.Amount, req.Discounts, feeAmount, req.Quantity, snapshot)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar transação", err.Error()))
		return
	}
	trans.Description = req.Description
	trans.ProductID = productID
	trans.FeeID = feeID
	trans.ClientID = clientID
	trans.CategoryID = categoryID

	if err := c.transactionRepo.Create(ctx, trans); err != nil {
		c.logger.Error("erro ao criar transação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar transação", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(trans))
}

// List retorna as vendas da empresa
// @Summary Listar vendas
// @Description Retorna as vendas da empresa com filtros por cliente e período
// @Tags transactions
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param client_id query int false "Filtrar por cliente"
// @Param date_from query string false "Data inicial (RFC3339)"
// @Param date_to query string false "Data final (RFC3339)"
// @Success 200 {object} dto.TransactionListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/transactions [get]
func (c *TransactionController) List(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	page, size = dto.NormalizePagination(page, size)

	offset := (page - 1) * size

	filter := transactiondomain.Filter{}

	if v := ctx.Query("client_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.ClientID = &id
		}
	}

	if v := ctx.Query("date_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.DateFrom = &t
		}
	}

	if v := ctx.Query("date_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.DateTo = &t
		}
	}

	transactions, err := c.transactionRepo.ListByCompany(ctx, companyID, filter, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar transações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar transações", err.Error()))
		return
	}

	total, err := c.transactionRepo.CountByCompany(ctx, companyID, filter)
	if err != nil {
		c.logger.Error("erro ao contar transações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar transações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(transactions, total, page, size))
}

// Get retorna uma venda pelo UUID
// @Summary Buscar venda
// @Description Retorna os dados de uma venda pelo UUID
// @Tags transactions
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID da venda"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/transactions/{id} [get]
func (c *TransactionController) Get(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	trans, err := c.transactionRepo.FindByUUID(ctx, companyID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "transação não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar transação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar transação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(trans))
}
