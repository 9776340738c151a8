package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carvasys/carvasys-api/internal/domain/category"
)

// Erros específicos do repositório
var (
	ErrCategoryNotFound     = errors.New("categoria não encontrada")
	ErrCategoryDuplicateKey = errors.New("categoria com mesmo nome já existe na empresa")
)

const categoryColumns = `id, uuid, company_id, name, active, created_at, updated_at`

// CategoryRepository implementa a interface category.Repository
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository cria uma nova instância de CategoryRepository
func NewCategoryRepository(db *pgxpool.Pool) category.Repository {
	return &CategoryRepository{
		db: db,
	}
}

// Create implementa category.Repository.Create
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO product_categories (
			uuid, company_id, name, active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		c.UUID, c.CompanyID, c.Name, c.Active, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrCategoryDuplicateKey
		}
		return fmt.Errorf("erro ao criar categoria: %w", err)
	}

	return nil
}

func (r *CategoryRepository) scanCategory(row pgx.Row) (*category.Category, error) {
	var c category.Category

	err := row.Scan(
		&c.ID, &c.UUID, &c.CompanyID, &c.Name, &c.Active, &c.CreatedAt,
		&c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar categoria: %w", err)
	}

	return &c, nil
}

// FindByUUID implementa category.Repository.FindByUUID
func (r *CategoryRepository) FindByUUID(ctx context.Context, companyID int64, uuid string) (*category.Category, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM product_categories
		WHERE company_id = $1 AND uuid = $2`, companyID, uuid)
	return r.scanCategory(row)
}

// FindByID implementa category.Repository.FindByID
func (r *CategoryRepository) FindByID(ctx context.Context, companyID, id int64) (*category.Category, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM product_categories
		WHERE company_id = $1 AND id = $2`, companyID, id)
	return r.scanCategory(row)
}

// ListByCompany implementa category.Repository.ListByCompany
func (r *CategoryRepository) ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*category.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+categoryColumns+` FROM product_categories
		WHERE company_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3`, companyID, limit, offset)

	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	categories := make([]*category.Category, 0)
	for rows.Next() {
		c, err := r.scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer categorias: %w", err)
	}

	return categories, nil
}

// Update implementa category.Repository.Update
func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE product_categories SET
			name = $1, active = $2, updated_at = $3
		WHERE company_id = $4 AND id = $5`,
		c.Name, c.Active, c.UpdatedAt, c.CompanyID, c.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrCategoryDuplicateKey
		}
		return fmt.Errorf("erro ao atualizar categoria: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// Delete implementa category.Repository.Delete
func (r *CategoryRepository) Delete(ctx context.Context, companyID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM product_categories WHERE company_id = $1 AND id = $2`,
		companyID, id)

	if err != nil {
		return fmt.Errorf("erro ao remover categoria: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
