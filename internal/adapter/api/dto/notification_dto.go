package dto

import (
	"time"

	"github.com/carvasys/carvasys-api/internal/domain/notification"
)

// NotificationResponse representa a resposta de notificação
type NotificationResponse struct {
	ID        int64      `json:"id"`
	UUID      string     `json:"uuid"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	ActionURL string     `json:"action_url,omitempty"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// NotificationListResponse representa a resposta de lista de notificações
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
	Pagination    Pagination             `json:"pagination"`
}

// ToNotificationResponse converte uma entidade Notification para NotificationResponse
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UUID:      n.UUID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		ActionURL: n.ActionURL,
		Read:      n.IsRead(),
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationListResponse converte uma lista de notificações para NotificationListResponse
func ToNotificationListResponse(notifications []*notification.Notification, unreadCount, total, page, size int) NotificationListResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = ToNotificationResponse(n)
	}

	return NotificationListResponse{
		Notifications: responses,
		UnreadCount:   unreadCount,
		Pagination:    NewPagination(total, page, size),
	}
}
