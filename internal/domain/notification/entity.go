package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyTitle = errors.New("título não pode ser vazio")

// Type define o tipo de evento que originou a notificação
type Type string

const (
	TypeOrderStatus     Type = "order_status"
	TypePaymentReceived Type = "payment_received"
	TypeDebtReminder    Type = "debt_reminder"
	TypeGeneral         Type = "general"
)

// Notification representa um aviso do sistema para um usuário do portal.
// Criada por eventos do sistema e mutada apenas por marcação de leitura;
// nunca removida pelo fluxo normal.
type Notification struct {
	ID           int64      `json:"id"`
	UUID         string     `json:"uuid"`
	ClientUserID int64      `json:"client_user_id"`
	CompanyID    int64      `json:"company_id"`
	Type         Type       `json:"type"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	ActionURL    string     `json:"action_url"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewNotification cria uma nova notificação não lida
func NewNotification(clientUserID, companyID int64, notifType Type, title, message, actionURL string) (*Notification, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	if notifType == "" {
		notifType = TypeGeneral
	}

	now := time.Now()
	return &Notification{
		UUID:         uuid.New().String(),
		ClientUserID: clientUserID,
		CompanyID:    companyID,
		Type:         notifType,
		Title:        title,
		Message:      message,
		ActionURL:    actionURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsRead verifica se a notificação já foi lida
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// MarkAsRead marca a notificação como lida
func (n *Notification) MarkAsRead() {
	if n.IsRead() {
		return
	}
	now := time.Now()
	n.ReadAt = &now
	n.UpdatedAt = now
}

// MarkAsUnread marca a notificação como não lida
func (n *Notification) MarkAsUnread() {
	n.ReadAt = nil
	n.UpdatedAt = time.Now()
}
