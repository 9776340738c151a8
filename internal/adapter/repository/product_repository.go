package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carvasys/carvasys-api/internal/domain/product"
)

// Erros específicos do repositório
var ErrProductNotFound = errors.New("produto não encontrado")

const productColumns = `id, uuid, company_id, category_id, name, description,
	amount, discounts, total_amount, quantity, image, active, is_for_favored,
	favored_price, created_at, updated_at`

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO products (
			uuid, company_id, category_id, name, description, amount,
			discounts, total_amount, quantity, image, active, is_for_favored,
			favored_price, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`,
		p.UUID, p.CompanyID, p.CategoryID, p.Name, p.Description, p.Amount,
		p.Discounts, p.TotalAmount, p.Quantity, p.Image, p.Active,
		p.IsForFavored, p.FavoredPrice, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)

	if err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

func (r *ProductRepository) scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product

	err := row.Scan(
		&p.ID, &p.UUID, &p.CompanyID, &p.CategoryID, &p.Name, &p.Description,
		&p.Amount, &p.Discounts, &p.TotalAmount, &p.Quantity, &p.Image,
		&p.Active, &p.IsForFavored, &p.FavoredPrice, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return &p, nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, companyID, id int64) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE company_id = $1 AND id = $2`, companyID, id)
	return r.scanProduct(row)
}

// FindByUUID implementa product.Repository.FindByUUID
func (r *ProductRepository) FindByUUID(ctx context.Context, companyID int64, uuid string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE company_id = $1 AND uuid = $2`, companyID, uuid)
	return r.scanProduct(row)
}

// buildFilter monta as cláusulas de filtro compartilhadas entre listagem e contagem.
// O primeiro argumento posicional é sempre company_id.
func (r *ProductRepository) buildFilter(companyID int64, filter product.Filter) (string, []interface{}) {
	where := []string{"company_id = $1"}
	args := []interface{}{companyID}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	if filter.OnlyActive {
		where = append(where, "active = true")
	}

	if filter.ForFavored != nil {
		args = append(args, *filter.ForFavored)
		where = append(where, fmt.Sprintf("is_for_favored = $%d", len(args)))
	}

	return strings.Join(where, " AND "), args
}

// ListByCompany implementa product.Repository.ListByCompany
func (r *ProductRepository) ListByCompany(ctx context.Context, companyID int64, filter product.Filter, limit, offset int) ([]*product.Product, error) {
	where, args := r.buildFilter(companyID, filter)

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM products WHERE %s ORDER BY name LIMIT $%d OFFSET $%d`,
		productColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*product.Product, 0)
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer produtos: %w", err)
	}

	return products, nil
}

// CountByCompany implementa product.Repository.CountByCompany
func (r *ProductRepository) CountByCompany(ctx context.Context, companyID int64, filter product.Filter) (int, error) {
	where, args := r.buildFilter(companyID, filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM products WHERE %s`, where),
		args...).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET
			category_id = $1, name = $2, description = $3, amount = $4,
			discounts = $5, total_amount = $6, quantity = $7, image = $8,
			active = $9, is_for_favored = $10, favored_price = $11,
			updated_at = $12
		WHERE company_id = $13 AND id = $14`,
		p.CategoryID, p.Name, p.Description, p.Amount, p.Discounts,
		p.TotalAmount, p.Quantity, p.Image, p.Active, p.IsForFavored,
		p.FavoredPrice, p.UpdatedAt, p.CompanyID, p.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, companyID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM products WHERE company_id = $1 AND id = $2`,
		companyID, id)

	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}
