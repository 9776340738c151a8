package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carvasys/carvasys-api/internal/domain/notification"
)

// Erros específicos do repositório
var ErrNotificationNotFound = errors.New("notificação não encontrada")

const notificationColumns = `id, uuid, client_user_id, company_id, type, title,
	message, action_url, read_at, created_at, updated_at`

// NotificationRepository implementa a interface notification.Repository
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository cria uma nova instância de NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) notification.Repository {
	return &NotificationRepository{
		db: db,
	}
}

// Create implementa notification.Repository.Create
func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO notifications (
			uuid, client_user_id, company_id, type, title, message,
			action_url, read_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		n.UUID, n.ClientUserID, n.CompanyID, n.Type, n.Title, n.Message,
		n.ActionURL, n.ReadAt, n.CreatedAt, n.UpdatedAt).Scan(&n.ID)

	if err != nil {
		return fmt.Errorf("erro ao criar notificação: %w", err)
	}

	return nil
}

func (r *NotificationRepository) scanNotification(row pgx.Row) (*notification.Notification, error) {
	var n notification.Notification

	err := row.Scan(
		&n.ID, &n.UUID, &n.ClientUserID, &n.CompanyID, &n.Type, &n.Title,
		&n.Message, &n.ActionURL, &n.ReadAt, &n.CreatedAt, &n.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("erro ao buscar notificação: %w", err)
	}

	return &n, nil
}

// FindByUUID implementa notification.Repository.FindByUUID
func (r *NotificationRepository) FindByUUID(ctx context.Context, clientUserID int64, uuid string) (*notification.Notification, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+notificationColumns+` FROM notifications
		WHERE client_user_id = $1 AND uuid = $2`, clientUserID, uuid)
	return r.scanNotification(row)
}

// ListByUser implementa notification.Repository.ListByUser
func (r *NotificationRepository) ListByUser(ctx context.Context, clientUserID int64, onlyUnread bool, limit, offset int) ([]*notification.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
		WHERE client_user_id = $1`
	if onlyUnread {
		query += ` AND read_at IS NULL`
	}
	query += ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, clientUserID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar notificações: %w", err)
	}
	defer rows.Close()

	notifications := make([]*notification.Notification, 0)
	for rows.Next() {
		n, err := r.scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer notificações: %w", err)
	}

	return notifications, nil
}

// CountUnread implementa notification.Repository.CountUnread
func (r *NotificationRepository) CountUnread(ctx context.Context, clientUserID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications
		WHERE client_user_id = $1 AND read_at IS NULL`, clientUserID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar notificações: %w", err)
	}

	return count, nil
}

// Update implementa notification.Repository.Update
func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE notifications SET
			read_at = $1, updated_at = $2
		WHERE client_user_id = $3 AND id = $4`,
		n.ReadAt, n.UpdatedAt, n.ClientUserID, n.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar notificação: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllAsRead implementa notification.Repository.MarkAllAsRead
func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, clientUserID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notifications SET
			read_at = NOW(), updated_at = NOW()
		WHERE client_user_id = $1 AND read_at IS NULL`, clientUserID)

	if err != nil {
		return fmt.Errorf("erro ao marcar notificações como lidas: %w", err)
	}

	return nil
}
