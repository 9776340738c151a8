package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/dto"
	"github.com/carvasys/carvasys-api/internal/adapter/repository"
	favoreddomain "github.com/carvasys/carvasys-api/internal/domain/favored"
	"github.com/carvasys/carvasys-api/pkg/logger"
	"github.com/carvasys/carvasys-api/pkg/payment"
	"github.com/carvasys/carvasys-api/pkg/tenant"
)

// PaymentController faz a ponte entre o livro de fiado e o provedor de
// pagamento. A intenção é criada no provedor e, após confirmada, o valor
// é baixado no lançamento correspondente.
type PaymentController struct {
	stripeService *payment.StripeService
	favoredRepo   favoreddomain.Repository
	logger        logger.Logger
}

// NewPaymentController cria uma nova instância de PaymentController
func NewPaymentController(stripeService *payment.StripeService, favoredRepo favoreddomain.Repository, logger logger.Logger) *PaymentController {
	return &PaymentController{
		stripeService: stripeService,
		favoredRepo:   favoredRepo,
		logger:        logger,
	}
}

// CreateIntent cria uma intenção de pagamento no provedor
// @Summary Criar intenção de pagamento
// @Description Cria uma intenção de pagamento no provedor para quitar (parcial ou totalmente) um lançamento de fiado
// @Tags payments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param intent body dto.PaymentIntentRequest true "Dados da intenção"
// @Success 201 {object} dto.PaymentIntentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/payments/create-intent [post]
func (c *PaymentController) CreateIntent(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	var req dto.PaymentIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	trans, err := c.favoredRepo.FindByUUID(ctx, companyID, req.FavoredUUID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoredNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar lançamento de fiado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamento", err.Error()))
		return
	}

	if req.Amount > trans.RemainingBalance() {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "pagamento rejeitado", favoreddomain.ErrPaymentExceedsDebt.Error()))
		return
	}

	intent, err := c.stripeService.CreateIntent(req.Amount,
		fmt.Sprintf("Pagamento de fiado: %s", trans.Name),
		map[string]string{
			"favored_uuid": trans.UUID,
			"company_id":   fmt.Sprintf("%d", trans.CompanyID),
		})
	if err != nil {
		c.logger.Error("erro ao criar intenção de pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar intenção de pagamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.PaymentIntentResponse{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       intent.Status,
		Amount:       intent.Amount,
	})
}

// Confirm verifica a intenção no provedor e baixa o valor no lançamento
// @Summary Confirmar pagamento
// @Description Consulta a intenção no provedor e, se concluída, registra o pagamento no lançamento de fiado
// @Tags payments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company path string true "UUID ou ID da empresa"
// @Param confirm body dto.PaymentConfirmRequest true "Dados da confirmação"
// @Success 200 {object} dto.FavoredResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 402 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company}/payments/confirm [post]
func (c *PaymentController) Confirm(ctx *gin.Context) {
	companyID := tenant.CompanyID(ctx.Request.Context())

	var req dto.PaymentConfirmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	intent, err := c.stripeService.RetrieveIntent(req.IntentID)
	if err != nil {
		c.logger.Error("erro ao consultar intenção de pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar intenção de pagamento", err.Error()))
		return
	}

	if !intent.Succeeded() {
		ctx.JSON(http.StatusPaymentRequired, dto.NewErrorResponse(http.StatusPaymentRequired, "pagamento não concluído no provedor", intent.Status))
		return
	}

	trans, err := c.favoredRepo.RegisterPayment(ctx, companyID, req.FavoredUUID, intent.Amount)
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

	ctx.JSON(http.StatusOK, dto.ToFavoredResponse(trans))
}
