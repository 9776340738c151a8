package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carvasys/carvasys-api/internal/domain/clientuser"
)

// Erros específicos do repositório
var (
	ErrClientUserNotFound     = errors.New("usuário do portal não encontrado")
	ErrClientUserDuplicateKey = errors.New("usuário com mesmo email já existe")
)

const clientUserColumns = `id, uuid, client_id, email, password, document_type,
	document_number, last_login_at, login_attempts, locked_until, preferences,
	created_at, updated_at`

// ClientUserRepository implementa a interface clientuser.Repository
type ClientUserRepository struct {
	db *pgxpool.Pool
}

// NewClientUserRepository cria uma nova instância de ClientUserRepository
func NewClientUserRepository(db *pgxpool.Pool) clientuser.Repository {
	return &ClientUserRepository{
		db: db,
	}
}

// Create implementa clientuser.Repository.Create
func (r *ClientUserRepository) Create(ctx context.Context, u *clientuser.ClientUser) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO client_users (
			uuid, client_id, email, password, document_type, document_number,
			last_login_at, login_attempts, locked_until, preferences,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		u.UUID, u.ClientID, u.Email, u.Password, u.DocumentType,
		u.DocumentNumber, u.LastLoginAt, u.LoginAttempts, u.LockedUntil,
		u.Preferences, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrClientUserDuplicateKey
		}
		return fmt.Errorf("erro ao criar usuário do portal: %w", err)
	}

	return nil
}

func (r *ClientUserRepository) scanClientUser(row pgx.Row) (*clientuser.ClientUser, error) {
	var u clientuser.ClientUser

	err := row.Scan(
		&u.ID, &u.UUID, &u.ClientID, &u.Email, &u.Password, &u.DocumentType,
		&u.DocumentNumber, &u.LastLoginAt, &u.LoginAttempts, &u.LockedUntil,
		&u.Preferences, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientUserNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário do portal: %w", err)
	}

	return &u, nil
}

// FindByID implementa clientuser.Repository.FindByID
func (r *ClientUserRepository) FindByID(ctx context.Context, id int64) (*clientuser.ClientUser, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+clientUserColumns+` FROM client_users WHERE id = $1`, id)
	return r.scanClientUser(row)
}

// FindByUUID implementa clientuser.Repository.FindByUUID
func (r *ClientUserRepository) FindByUUID(ctx context.Context, uuid string) (*clientuser.ClientUser, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+clientUserColumns+` FROM client_users WHERE uuid = $1`, uuid)
	return r.scanClientUser(row)
}

// FindByEmail implementa clientuser.Repository.FindByEmail
func (r *ClientUserRepository) FindByEmail(ctx context.Context, email string) (*clientuser.ClientUser, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+clientUserColumns+` FROM client_users WHERE email = $1`, email)
	return r.scanClientUser(row)
}

// ListByClient implementa clientuser.Repository.ListByClient
func (r *ClientUserRepository) ListByClient(ctx context.Context, clientID int64) ([]*clientuser.ClientUser, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+clientUserColumns+` FROM client_users
		WHERE client_id = $1
		ORDER BY id`, clientID)

	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários do portal: %w", err)
	}
	defer rows.Close()

	users := make([]*clientuser.ClientUser, 0)
	for rows.Next() {
		u, err := r.scanClientUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer usuários do portal: %w", err)
	}

	return users, nil
}

// Update implementa clientuser.Repository.Update
func (r *ClientUserRepository) Update(ctx context.Context, u *clientuser.ClientUser) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE client_users SET
			email = $1, password = $2, document_type = $3, document_number = $4,
			preferences = $5, updated_at = $6
		WHERE id = $7`,
		u.Email, u.Password, u.DocumentType, u.DocumentNumber, u.Preferences,
		u.UpdatedAt, u.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar usuário do portal: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrClientUserNotFound
	}

	return nil
}

// UpdateLoginState implementa clientuser.Repository.UpdateLoginState
func (r *ClientUserRepository) UpdateLoginState(ctx context.Context, u *clientuser.ClientUser) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE client_users SET
			login_attempts = $1, locked_until = $2, last_login_at = $3,
			updated_at = $4
		WHERE id = $5`,
		u.LoginAttempts, u.LockedUntil, u.LastLoginAt, u.UpdatedAt, u.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar estado de login: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrClientUserNotFound
	}

	return nil
}
