package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carvasys/carvasys-api/internal/domain/company"
)

// Erros específicos do repositório
var (
	ErrCompanyNotFound      = errors.New("empresa não encontrada")
	ErrCompanyDuplicateKey  = errors.New("empresa com mesmo nome já existe")
	ErrCompanyDatabaseError = errors.New("erro de banco de dados")
)

const companyColumns = `id, uuid, name, status, marketplace_type, rating, logo_url,
	foundation_date, created_at, updated_at`

// CompanyRepository implementa a interface company.Repository
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository cria uma nova instância de CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) company.Repository {
	return &CompanyRepository{
		db: db,
	}
}

// Create implementa company.Repository.Create
func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO companies (
			uuid, name, status, marketplace_type, rating, logo_url,
			foundation_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		c.UUID, c.Name, c.Status, c.MarketplaceType, c.Rating, c.LogoURL,
		c.FoundationDate, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrCompanyDuplicateKey
		}
		return fmt.Errorf("erro ao criar empresa: %w", err)
	}

	return nil
}

func (r *CompanyRepository) scanCompany(row pgx.Row) (*company.Company, error) {
	var c company.Company

	err := row.Scan(
		&c.ID, &c.UUID, &c.Name, &c.Status, &c.MarketplaceType, &c.Rating,
		&c.LogoURL, &c.FoundationDate, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("erro ao buscar empresa: %w", err)
	}

	return &c, nil
}

// FindByID implementa company.Repository.FindByID
func (r *CompanyRepository) FindByID(ctx context.Context, id int64) (*company.Company, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	return r.scanCompany(row)
}

// FindByUUID implementa company.Repository.FindByUUID
func (r *CompanyRepository) FindByUUID(ctx context.Context, uuid string) (*company.Company, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE uuid = $1`, uuid)
	return r.scanCompany(row)
}

// FindByKey implementa company.Repository.FindByKey. A rota aceita tanto
// UUID quanto ID numérico como identificador da empresa.
func (r *CompanyRepository) FindByKey(ctx context.Context, key string) (*company.Company, error) {
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		return r.FindByID(ctx, id)
	}
	return r.FindByUUID(ctx, key)
}

// List implementa company.Repository.List
func (r *CompanyRepository) List(ctx context.Context, limit, offset int) ([]*company.Company, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+companyColumns+` FROM companies ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar empresas: %w", err)
	}
	defer rows.Close()

	return r.collectCompanies(rows)
}

// ListByClient implementa company.Repository.ListByClient
func (r *CompanyRepository) ListByClient(ctx context.Context, clientID int64) ([]*company.Company, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.uuid, c.name, c.status, c.marketplace_type, c.rating,
			c.logo_url, c.foundation_date, c.created_at, c.updated_at
		FROM companies c
		INNER JOIN client_company cc ON cc.company_id = c.id
		WHERE cc.client_id = $1 AND cc.is_active = true
		ORDER BY c.name`,
		clientID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar empresas do cliente: %w", err)
	}
	defer rows.Close()

	return r.collectCompanies(rows)
}

func (r *CompanyRepository) collectCompanies(rows pgx.Rows) ([]*company.Company, error) {
	var companies []*company.Company
	for rows.Next() {
		var c company.Company
		err := rows.Scan(
			&c.ID, &c.UUID, &c.Name, &c.Status, &c.MarketplaceType, &c.Rating,
			&c.LogoURL, &c.FoundationDate, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler empresa: %w", err)
		}
		companies = append(companies, &c)
	}

	return companies, rows.Err()
}

// Update implementa company.Repository.Update
func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE companies SET
			name = $1, status = $2, marketplace_type = $3, rating = $4,
			logo_url = $5, foundation_date = $6, updated_at = $7
		WHERE id = $8`,
		c.Name, c.Status, c.MarketplaceType, c.Rating, c.LogoURL,
		c.FoundationDate, c.UpdatedAt, c.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar empresa: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCompanyNotFound
	}

	return nil
}

// UpdateStatus implementa company.Repository.UpdateStatus
func (r *CompanyRepository) UpdateStatus(ctx context.Context, id int64, status company.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE companies SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)

	if err != nil {
		return fmt.Errorf("erro ao atualizar status da empresa: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCompanyNotFound
	}

	return nil
}

// Count implementa company.Repository.Count
func (r *CompanyRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar empresas: %w", err)
	}
	return count, nil
}

// HasActiveMembership implementa company.Repository.HasActiveMembership
func (r *CompanyRepository) HasActiveMembership(ctx context.Context, companyID, clientID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM client_company
			WHERE company_id = $1 AND client_id = $2 AND is_active = true
		)`,
		companyID, clientID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("erro ao verificar vínculo do cliente: %w", err)
	}

	return exists, nil
}
