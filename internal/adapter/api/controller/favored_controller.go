package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/dto"
	"github.com/carvasys/carvasys-api/internal/adapter/repository"
	categorydomain "github.com/carvasys/carvasys-api/internal/domain/category"
	clientdomain "github.com/carvasys/carvasys-api/internal/domain/client"
	"github.com/carvasys/carvasys-api/internal/domain/clientuser"
	favoreddomain "github.com/carvasys/carvasys-api/internal/domain/favored"
	notificationdomain "github.com/carvasys/carvasys-api/internal/domain/notification"
	productdomain "github.com/carvasys/carvasys-api/internal/domain/product"
	"github.com/carvasys/carvasys-api/pkg/logger"
	"github.com/carvasys/carvasys-api/pkg/tenant"
)

// FavoredController gerencia o livro de fiado de uma empresa
type FavoredController struct {
	favoredRepo      favoreddomain.Repository
	clientRepo       clientdomain.Repository
	productRepo      productdomain.Repository
	categoryRepo     categorydomain.Repository
	clientUserRepo   clientuser.Repository
	notificationRepo notificationdomain.Repository
	logger           logger.Logger
}

// NewFavoredController cria uma nova instância de FavoredController
func NewFavoredController(
	favoredRepo favoreddomain.Repository,
	clientRepo clientdomain.Repository,
	productRepo productdomain.Repository,
	categoryRepo categorydomain.Repository,
	clientUserRepo clientuser.Repository,
	notificationRepo notificationdomain.Repository,
	logger logger.Logger,
) *FavoredController {
	return &FavoredController{
		favoredRepo:      favoredRepo,
		clientRepo:       clientRepo,
		productRepo:      productRepo,
		categoryRepo:     categoryRepo,
		clientUserRepo:   clientUserRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// notifyPayment avisa as identidades de portal do cliente sobre o pagamento
func (c *FavoredController) notifyPayment(ctx *gin.Context, t *favoreddomain.Transaction, amount float64) {
	users, err := c.clientUserRepo.ListByClient(ctx, t.ClientID)
	if err != nil {
		c.logger.Error("erro ao listar usuários do cliente para notificação", "error", err)
		return
	}

	title := "Pagamento registrado"
	message := fmt.Sprintf("Pagamento de R$ %.2f registrado no lançamento %s", amount, t.Name)

	for _, u := range users {
		n, err := notificationdomain.NewNotification(u.ID, t.CompanyID, notificationdomain.TypePaymentReceived, title, message, "")
		if err != nil {
			continue
		}
		if err := c.notificationRepo.Create(ctx, n); err != nil {
			c.logger.Error("erro ao criar notificação de pagamento", "error", err)
		}
	}
}

// Create cria um lançamento no livro de fiado
// @Summary Criar lançamento de fiado
// @Description Registra mercadoria entregue contra promessa de pagamento. Valores omitidos assumem o valor do campo irmão presente
// @Tags favored
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param favored body dto.FavoredRequest true "Dados do lançamento"
// @Success 201 {object} dto.FavoredResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/favored [post]
func (c *FavoredController) Create(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	var req dto.FavoredRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

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

	snapshot := favoreddomain.Snapshot{ClientName: cli.Name}
	var productID, categoryID *int64

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

	trans, err := favoreddomain.NewTransaction(companyID, cli.ID, req.Name, req.Amount, req.TotalAmount, req.FavoredTotal, req.PaidAmount, req.Quantity, snapshot)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar lançamento", err.Error()))
		return
	}
	trans.Description = req.Description
	trans.ProductID = productID
	trans.CategoryID = categoryID
	trans.SetDueDate(req.DueDate)

	if err := c.favoredRepo.Create(ctx, trans); err != nil {
		c.logger.Error("erro ao criar lançamento de fiado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFavoredResponse(trans))
}

// List retorna os lançamentos de fiado da empresa
// @Summary Listar lançamentos de fiado
// @Description Retorna os lançamentos da empresa com filtros por cliente, situação e período
// @Tags favored
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param client_id query int false "Filtrar por cliente"
// @Param open query bool false "Somente lançamentos em aberto"
// @Param date_from query string false "Data inicial (RFC3339)"
// @Param date_to query string false "Data final (RFC3339)"
// @Success 200 {object} dto.FavoredListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/favored [get]
func (c *FavoredController) List(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	page, size = dto.NormalizePagination(page, size)

	offset := (page - 1) * size

	filter := favoreddomain.Filter{
		OnlyOpen: ctx.Query("open") == "true",
	}

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

	transactions, err := c.favoredRepo.ListByCompany(ctx, companyID, filter, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar lançamentos de fiado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lançamentos", err.Error()))
		return
	}

	total, err := c.favoredRepo.CountByCompany(ctx, companyID, filter)
	if err != nil {
		c.logger.Error("erro ao contar lançamentos de fiado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar lançamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFavoredListResponse(transactions, total, page, size))
}

// Get retorna um lançamento pelo UUID
// @Summary Buscar lançamento de fiado
// @Description Retorna os dados de um lançamento pelo UUID
// @Tags favored
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID do lançamento"
// @Success 200 {object} dto.FavoredResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/favored/{id} [get]
func (c *FavoredController) Get(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	trans, err := c.favoredRepo.FindByUUID(ctx, companyID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrFavoredNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar lançamento de fiado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFavoredResponse(trans))
}

// Update atualiza um lançamento de fiado
// @Summary Atualizar lançamento de fiado
// @Description Atualiza os dados do lançamento mantendo o defaulting de valores
// @Tags favored
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID do lançamento"
// @Param favored body dto.FavoredUpdateRequest true "Dados do lançamento"
// @Success 200 {object} dto.FavoredResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/favored/{id} [put]
func (c *FavoredController) Update(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	var req dto.FavoredUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	trans, err := c.favoredRepo.FindByUUID(ctx, companyID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrFavoredNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar lançamento de fiado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamento", err.Error()))
		return
	}

	if err := trans.Update(req.Name, req.Description, req.Amount, req.FavoredTotal, req.Quantity); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar lançamento", err.Error()))
		return
	}
	trans.SetDueDate(req.DueDate)

	if err := c.favoredRepo.Update(ctx, trans); err != nil {
		c.logger.Error("erro ao atualizar lançamento de fiado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFavoredResponse(trans))
}

// Delete remove um lançamento de fiado
// @Summary Remover lançamento de fiado
// @Description Remove um lançamento do livro de fiado da empresa
// @Tags favored
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID do lançamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/favored/{id} [delete]
func (c *FavoredController) Delete(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	trans, err := c.favoredRepo.FindByUUID(ctx, companyID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrFavoredNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar lançamento de fiado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamento", err.Error()))
		return
	}

	if err := c.favoredRepo.Delete(ctx, companyID, trans.ID); err != nil {
		c.logger.Error("erro ao remover lançamento de fiado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("lançamento removido", nil))
}

// Pay registra um pagamento parcial ou total do lançamento
// @Summary Registrar pagamento
// @Description Registra um pagamento sobre o lançamento. Rejeita valores não positivos e valores acima do saldo devedor
// @Tags favored
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID do lançamento"
// @Param payment body dto.FavoredPaymentRequest true "Valor do pagamento"
// @Success 200 {object} dto.FavoredResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/favored/{id}/pay [post]
func (c *FavoredController) Pay(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	var req dto.FavoredPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	trans, err := c.favoredRepo.RegisterPayment(ctx, companyID, uuid, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrFavoredNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", err.Error()))
		case errors.Is(err, favoreddomain.ErrInvalidPayment), errors.Is(err, favoreddomain.ErrPaymentExceedsDebt):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "pagamento rejeitado", err.Error()))
		default:
			c.logger.Error("erro ao registrar pagamento", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar pagamento", err.Error()))
		}
		return
	}

	c.notifyPayment(ctx, trans, req.Amount)

	ctx.JSON(http.StatusOK, dto.ToFavoredResponse(trans))
}

// Summary retorna o resumo do fiado de um cliente
// @Summary Resumo do fiado
// @Description Agrega dívida total, pagamentos, saldo e valor vencido do cliente na empresa
// @Tags favored
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param client_id path int true "ID do cliente"
// @Success 200 {object} dto.FavoredSummaryResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/favored/clients/{client_id}/summary [get]
func (c *FavoredController) Summary(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	clientID, err := strconv.ParseInt(ctx.Param("client_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id de cliente inválido", err.Error()))
		return
	}

	summary, err := c.favoredRepo.SummaryByClient(ctx, companyID, clientID)
	if err != nil {
		c.logger.Error("erro ao montar resumo do fiado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar resumo", err.Error()))
		return
	}

	overdue, err := c.favoredRepo.OverdueAmount(ctx, companyID, clientID, time.Now())
	if err != nil {
		c.logger.Error("erro ao calcular saldo vencido", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular saldo vencido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.FavoredSummaryResponse{
		TotalDebt:        summary.TotalDebt,
		TotalPaid:        summary.TotalPaid,
		RemainingBalance: summary.RemainingBalance,
		OverdueAmount:    overdue,
		TotalItems:       summary.TotalItems,
		OpenEntries:      summary.OpenEntries,
	})
}

// Clients retorna a visão por cliente do livro de fiado
// @Summary Clientes do fiado
// @Description Lista os clientes da empresa com lançamentos no fiado e seus agregados
// @Tags favored
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Success 200 {array} dto.FavoredClientResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/favored/clients [get]
func (c *FavoredController) Clients(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	aggregates, err := c.favoredRepo.ClientsWithTransactions(ctx, companyID)
	if err != nil {
		c.logger.Error("erro ao listar clientes do fiado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar clientes", err.Error()))
		return
	}

	responses := make([]dto.FavoredClientResponse, len(aggregates))
	for i, a := range aggregates {
		responses[i] = dto.ToFavoredClientResponse(a)
	}

	ctx.JSON(http.StatusOK, responses)
}

// Upcoming retorna os próximos vencimentos do cliente autenticado
// @Summary Próximos vencimentos
// @Description Lista os lançamentos em aberto do cliente autenticado ordenados por vencimento
// @Tags favored
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param limit query int false "Quantidade máxima"
// @Success 200 {object} dto.FavoredListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/favored/upcoming [get]
func (c *FavoredController) Upcoming(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	clientID := ctx.GetInt64("client_id")

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "5"))
	if limit < 1 || limit > 100 {
		limit = 5
	}

	transactions, err := c.favoredRepo.ListUpcoming(ctx, companyID, clientID, limit)
	if err != nil {
		c.logger.Error("erro ao listar vencimentos do fiado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vencimentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFavoredListResponse(transactions, len(transactions), 1, limit))
}
