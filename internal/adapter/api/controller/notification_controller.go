package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/dto"
	"github.com/carvasys/carvasys-api/internal/adapter/repository"
	notificationdomain "github.com/carvasys/carvasys-api/internal/domain/notification"
	"github.com/carvasys/carvasys-api/pkg/logger"
)

// NotificationController gerencia as notificações do usuário do portal
type NotificationController struct {
	notificationRepo notificationdomain.Repository
	logger           logger.Logger
}

// NewNotificationController cria uma nova instância de NotificationController
func NewNotificationController(notificationRepo notificationdomain.Repository, logger logger.Logger) *NotificationController {
	return &NotificationController{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// List retorna as notificações do usuário autenticado
// @Summary Listar notificações
// @Description Retorna as notificações do usuário, opcionalmente só as não lidas
// @Tags notifications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param unread query bool false "Somente não lidas"
// @Success 200 {object} dto.NotificationListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	userID := ctx.GetInt64("client_user_id")

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	page, size = dto.NormalizePagination(page, size)

	offset := (page - 1) * size
	onlyUnread := ctx.Query("unread") == "true"

	notifications, err := c.notificationRepo.ListByUser(ctx, userID, onlyUnread, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar notificações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar notificações", err.Error()))
		return
	}

	unread, err := c.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		c.logger.Error("erro ao contar notificações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar notificações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications, unread, len(notifications), page, size))
}

// UnreadCount retorna a quantidade de notificações não lidas
// @Summary Contar não lidas
// @Description Retorna a quantidade de notificações não lidas do usuário
// @Tags notifications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/unread-count [get]
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	userID := ctx.GetInt64("client_user_id")

	count, err := c.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		c.logger.Error("erro ao contar notificações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar notificações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("notificações não lidas", gin.H{"unread_count": count}))
}

// Get retorna uma notificação do usuário pelo UUID
// @Summary Buscar notificação
// @Description Retorna uma notificação do usuário autenticado
// @Tags notifications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "UUID da notificação"
// @Success 200 {object} dto.NotificationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/{id} [get]
func (c *NotificationController) Get(ctx *gin.Context) {
	userID := ctx.GetInt64("client_user_id")
	uuid := ctx.Param("id")

	n, err := c.notificationRepo.FindByUUID(ctx, userID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "notificação não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar notificação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar notificação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationResponse(n))
}

// MarkAsRead marca uma notificação como lida
// @Summary Marcar como lida
// @Description Marca a notificação como lida. Marcar de novo não tem efeito
// @Tags notifications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "UUID da notificação"
// @Success 200 {object} dto.NotificationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/{id}/read [patch]
func (c *NotificationController) MarkAsRead(ctx *gin.Context) {
	userID := ctx.GetInt64("client_user_id")
	uuid := ctx.Param("id")

	n, err := c.notificationRepo.FindByUUID(ctx, userID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "notificação não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar notificação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar notificação", err.Error()))
		return
	}

	n.MarkAsRead()

	if err := c.notificationRepo.Update(ctx, n); err != nil {
		c.logger.Error("erro ao atualizar notificação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar notificação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationResponse(n))
}

// MarkAsUnread marca uma notificação como não lida
// @Summary Marcar como não lida
// @Description Volta a notificação para o estado não lida
// @Tags notifications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "UUID da notificação"
// @Success 200 {object} dto.NotificationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/{id}/unread [patch]
func (c *NotificationController) MarkAsUnread(ctx *gin.Context) {
	userID := ctx.GetInt64("client_user_id")
	uuid := ctx.Param("id")

	n, err := c.notificationRepo.FindByUUID(ctx, userID, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "notificação não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar notificação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar notificação", err.Error()))
		return
	}

	n.MarkAsUnread()

	if err := c.notificationRepo.Update(ctx, n); err != nil {
		c.logger.Error("erro ao atualizar notificação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar notificação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationResponse(n))
}

// MarkAllAsRead marca todas as notificações do usuário como lidas
// @Summary Marcar todas como lidas
// @Description Marca todas as notificações não lidas do usuário como lidas
// @Tags notifications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/read-all [patch]
func (c *NotificationController) MarkAllAsRead(ctx *gin.Context) {
	userID := ctx.GetInt64("client_user_id")

	if err := c.notificationRepo.MarkAllAsRead(ctx, userID); err != nil {
		c.logger.Error("erro ao marcar notificações como lidas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao marcar notificações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("notificações marcadas como lidas", nil))
}
