package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carvasys/carvasys-api/internal/domain/client"
)

// Erros específicos do repositório
var (
	ErrClientNotFound     = errors.New("cliente não encontrado")
	ErrClientDuplicateKey = errors.New("cliente com mesmo documento já existe")
)

const clientColumns = `id, uuid, name, document_type, document, email, phone,
	active, created_at, updated_at`

// ClientRepository implementa a interface client.Repository
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository cria uma nova instância de ClientRepository
func NewClientRepository(db *pgxpool.Pool) client.Repository {
	return &ClientRepository{
		db: db,
	}
}

// Create implementa client.Repository.Create
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO clients (
			uuid, name, document_type, document, email, phone, active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		c.UUID, c.Name, c.DocumentType, c.Document, c.Email, c.Phone,
		c.Active, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrClientDuplicateKey
		}
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

func (r *ClientRepository) scanClient(row pgx.Row) (*client.Client, error) {
	var c client.Client

	err := row.Scan(
		&c.ID, &c.UUID, &c.Name, &c.DocumentType, &c.Document, &c.Email,
		&c.Phone, &c.Active, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return &c, nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*client.Client, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	return r.scanClient(row)
}

// FindByUUID implementa client.Repository.FindByUUID
func (r *ClientRepository) FindByUUID(ctx context.Context, uuid string) (*client.Client, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE uuid = $1`, uuid)
	return r.scanClient(row)
}

// FindByDocument implementa client.Repository.FindByDocument
func (r *ClientRepository) FindByDocument(ctx context.Context, document string) (*client.Client, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE document = $1`, document)
	return r.scanClient(row)
}

// ListByCompany implementa client.Repository.ListByCompany. Apenas
// clientes com vínculo ativo na empresa são retornados.
func (r *ClientRepository) ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*client.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.uuid, c.name, c.document_type, c.document, c.email,
			c.phone, c.active, c.created_at, c.updated_at
		FROM clients c
		INNER JOIN client_company cc ON cc.client_id = c.id
		WHERE cc.company_id = $1 AND cc.is_active = true
		ORDER BY c.name
		LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client
	for rows.Next() {
		var c client.Client
		err := rows.Scan(
			&c.ID, &c.UUID, &c.Name, &c.DocumentType, &c.Document, &c.Email,
			&c.Phone, &c.Active, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		clients = append(clients, &c)
	}

	return clients, rows.Err()
}

// CountByCompany implementa client.Repository.CountByCompany
func (r *ClientRepository) CountByCompany(ctx context.Context, companyID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*)
		FROM clients c
		INNER JOIN client_company cc ON cc.client_id = c.id
		WHERE cc.company_id = $1 AND cc.is_active = true`,
		companyID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return count, nil
}

// Update implementa client.Repository.Update
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE clients SET
			name = $1, email = $2, phone = $3, active = $4, updated_at = $5
		WHERE id = $6`,
		c.Name, c.Email, c.Phone, c.Active, c.UpdatedAt, c.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// AttachCompany implementa client.Repository.AttachCompany. Reativa o
// vínculo caso já exista desativado.
func (r *ClientRepository) AttachCompany(ctx context.Context, clientID, companyID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO client_company (client_id, company_id, is_active, created_at, updated_at)
		VALUES ($1, $2, true, NOW(), NOW())
		ON CONFLICT (client_id, company_id)
		DO UPDATE SET is_active = true, updated_at = NOW()`,
		clientID, companyID)

	if err != nil {
		return fmt.Errorf("erro ao vincular cliente à empresa: %w", err)
	}

	return nil
}

// DetachCompany implementa client.Repository.DetachCompany. O vínculo é
// desativado, nunca removido.
func (r *ClientRepository) DetachCompany(ctx context.Context, clientID, companyID int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE client_company SET is_active = false, updated_at = NOW()
		WHERE client_id = $1 AND company_id = $2`,
		clientID, companyID)

	if err != nil {
		return fmt.Errorf("erro ao desvincular cliente da empresa: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}
