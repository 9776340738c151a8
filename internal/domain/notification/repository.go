package notification

import (
	"context"
)

// Repository define a interface para operações de repositório de notificações
type Repository interface {
	// Create cria uma nova notificação
	Create(ctx context.Context, n *Notification) error

	// FindByUUID busca uma notificação pelo UUID de um usuário do portal
	FindByUUID(ctx context.Context, clientUserID int64, uuid string) (*Notification, error)

	// ListByUser lista as notificações de um usuário, opcionalmente só não lidas
	ListByUser(ctx context.Context, clientUserID int64, onlyUnread bool, limit, offset int) ([]*Notification, error)

	// CountUnread conta as notificações não lidas de um usuário
	CountUnread(ctx context.Context, clientUserID int64) (int, error)

	// Update persiste alterações de leitura da notificação
	Update(ctx context.Context, n *Notification) error

	// MarkAllAsRead marca todas as notificações do usuário como lidas
	MarkAllAsRead(ctx context.Context, clientUserID int64) error
}
