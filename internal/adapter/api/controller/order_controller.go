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
	"github.com/carvasys/carvasys-api/internal/domain/clientuser"
	feedomain "github.com/carvasys/carvasys-api/internal/domain/fee"
	notificationdomain "github.com/carvasys/carvasys-api/internal/domain/notification"
	orderdomain "github.com/carvasys/carvasys-api/internal/domain/order"
	productdomain "github.com/carvasys/carvasys-api/internal/domain/product"
	"github.com/carvasys/carvasys-api/pkg/logger"
	"github.com/carvasys/carvasys-api/pkg/tenant"
)

// OrderController gerencia o ciclo de vida de pedidos de uma empresa
type OrderController struct {
	orderRepo        orderdomain.Repository
	productRepo      productdomain.Repository
	feeRepo          feedomain.Repository
	clientUserRepo   clientuser.Repository
	notificationRepo notificationdomain.Repository
	logger           logger.Logger
}

// NewOrderController cria uma nova instância de OrderController
func NewOrderController(
	orderRepo orderdomain.Repository,
	productRepo productdomain.Repository,
	feeRepo feedomain.Repository,
	clientUserRepo clientuser.Repository,
	notificationRepo notificationdomain.Repository,
	logger logger.Logger,
) *OrderController {
	return &OrderController{
		orderRepo:        orderRepo,
		productRepo:      productRepo,
		feeRepo:          feeRepo,
		clientUserRepo:   clientUserRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// notifyStatusChange cria uma notificação de mudança de status para cada
// identidade de portal do cliente. Falhas aqui não abortam a requisição.
func (c *OrderController) notifyStatusChange(ctx *gin.Context, o *orderdomain.Order) {
	users, err := c.clientUserRepo.ListByClient(ctx, o.ClientID)
	if err != nil {
		c.logger.Error("erro ao listar usuários do cliente para notificação", "error", err)
		return
	}

	title := fmt.Sprintf("Pedido %s", o.Status)
	message := fmt.Sprintf("Seu pedido %s mudou para o status %s", o.UUID, o.Status)

	for _, u := range users {
		n, err := notificationdomain.NewNotification(u.ID, o.CompanyID, notificationdomain.TypeOrderStatus, title, message, "")
		if err != nil {
			continue
		}
		if err := c.notificationRepo.Create(ctx, n); err != nil {
			c.logger.Error("erro ao criar notificação de pedido", "error", err)
		}
	}
}

// Create cria um novo pedido
// @Summary Criar pedido
// @Description Cria um pedido multi-item. Nome e preço unitário dos produtos são copiados como snapshot no momento da compra
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param order body dto.OrderRequest true "Dados do pedido"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	clientID := ctx.GetInt64("client_id")

	var req dto.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	o := orderdomain.NewOrder(companyID, clientID, req.Notes)

	for _, itemReq := range req.Items {
		prod, err := c.productRepo.FindByUUID(ctx, companyID, itemReq.ProductUUID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "produto não encontrado na empresa", err.Error()))
				return
			}
			c.logger.Error("erro ao buscar produto", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
			return
		}

		// Produtos de fiado usam o preço próprio quando configurado
		unitPrice := prod.TotalAmount
		if prod.IsForFavored && prod.FavoredPrice != nil {
			unitPrice = *prod.FavoredPrice
		}

		item, err := orderdomain.NewItem(prod.ID, prod.Name, itemReq.Quantity, unitPrice, itemReq.DiscountPercent)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao montar item do pedido", err.Error()))
			return
		}
		o.AddItem(item)
	}

	o.RecalculateTotal()

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
		o.FeeAmount = f.Apply(o.Subtotal)
		o.RecalculateTotal()
	}

	if err := c.orderRepo.Create(ctx, o); err != nil {
		c.logger.Error("erro ao criar pedido", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar pedido", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(o))
}

// List retorna os pedidos da empresa
// @Summary Listar pedidos
// @Description Retorna os pedidos da empresa com filtros por cliente, status e período
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param client_id query int false "Filtrar por cliente"
// @Param status query string false "Filtrar por status"
// @Param date_from query string false "Data inicial (RFC3339)"
// @Param date_to query string false "Data final (RFC3339)"
// @Success 200 {object} dto.OrderListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	page, size = dto.NormalizePagination(page, size)

	offset := (page - 1) * size

	filter := orderdomain.Filter{}

	if v := ctx.Query("client_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.ClientID = &id
		}
	}

	if v := ctx.Query("status"); v != "" {
		status := orderdomain.Status(v)
		filter.Status = &status
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

	orders, err := c.orderRepo.ListByCompany(ctx, companyID, filter, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar pedidos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar pedidos", err.Error()))
		return
	}

	total, err := c.orderRepo.CountByCompany(ctx, companyID, filter)
	if err != nil {
		c.logger.Error("erro ao contar pedidos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar pedidos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders, total, page, size))
}

// Get retorna um pedido pelo UUID
// @Summary Buscar pedido
// @Description Retorna o pedido com seus itens pelo UUID
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	o, err := c.orderRepo.FindByUUID(ctx, companyID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "pedido não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar pedido", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar pedido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// transition aplica uma transição de status e persiste o resultado
func (c *OrderController) transition(ctx *gin.Context, apply func(*orderdomain.Order) error) {
	companyID := tenant.CompanyID(ctx.Request.Context())
	uuid := ctx.Param("id")

	o, err := c.orderRepo.FindByUUID(ctx, companyID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "pedido não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar pedido", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar pedido", err.Error()))
		return
	}

	if err := apply(o); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "transição de status inválida", err.Error()))
		return
	}

	if err := c.orderRepo.UpdateStatus(ctx, o); err != nil {
		c.logger.Error("erro ao atualizar status do pedido", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar pedido", err.Error()))
		return
	}

	c.notifyStatusChange(ctx, o)

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// Approve aprova o pedido
// @Summary Aprovar pedido
// @Description Move o pedido de pending para processing
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/orders/{id}/approve [patch]
func (c *OrderController) Approve(ctx *gin.Context) {
	c.transition(ctx, func(o *orderdomain.Order) error { return o.Approve() })
}

// Ship marca o pedido como enviado
// @Summary Enviar pedido
// @Description Move o pedido de processing para shipped
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/orders/{id}/ship [patch]
func (c *OrderController) Ship(ctx *gin.Context) {
	c.transition(ctx, func(o *orderdomain.Order) error { return o.Ship() })
}

// Deliver marca o pedido como entregue
// @Summary Entregar pedido
// @Description Move o pedido de shipped para delivered
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/orders/{id}/deliver [patch]
func (c *OrderController) Deliver(ctx *gin.Context) {
	c.transition(ctx, func(o *orderdomain.Order) error { return o.Deliver() })
}

// Cancel cancela o pedido
// @Summary Cancelar pedido
// @Description Cancela o pedido a partir de qualquer estado não terminal
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param id path string true "UUID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/orders/{id}/cancel [patch]
func (c *OrderController) Cancel(ctx *gin.Context) {
	c.transition(ctx, func(o *orderdomain.Order) error { return o.Cancel() })
}
