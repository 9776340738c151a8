package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carvasys/carvasys-api/internal/domain/fee"
)

// Erros específicos do repositório
var ErrFeeNotFound = errors.New("taxa não encontrada")

const feeColumns = `id, uuid, company_id, description, amount, type, created_at, updated_at`

// FeeRepository implementa a interface fee.Repository
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository cria uma nova instância de FeeRepository
func NewFeeRepository(db *pgxpool.Pool) fee.Repository {
	return &FeeRepository{
		db: db,
	}
}

// Create implementa fee.Repository.Create
func (r *FeeRepository) Create(ctx context.Context, f *fee.Fee) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO fees (
			uuid, company_id, description, amount, type, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		f.UUID, f.CompanyID, f.Description, f.Amount, f.Type, f.CreatedAt,
		f.UpdatedAt).Scan(&f.ID)

	if err != nil {
		return fmt.Errorf("erro ao criar taxa: %w", err)
	}

	return nil
}

func (r *FeeRepository) scanFee(row pgx.Row) (*fee.Fee, error) {
	var f fee.Fee

	err := row.Scan(
		&f.ID, &f.UUID, &f.CompanyID, &f.Description, &f.Amount, &f.Type,
		&f.CreatedAt, &f.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFeeNotFound
		}
		return nil, fmt.Errorf("erro ao buscar taxa: %w", err)
	}

	return &f, nil
}

// FindByID implementa fee.Repository.FindByID
func (r *FeeRepository) FindByID(ctx context.Context, companyID, id int64) (*fee.Fee, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+feeColumns+` FROM fees
		WHERE company_id = $1 AND id = $2`, companyID, id)
	return r.scanFee(row)
}

// FindByUUID implementa fee.Repository.FindByUUID
func (r *FeeRepository) FindByUUID(ctx context.Context, companyID int64, uuid string) (*fee.Fee, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+feeColumns+` FROM fees
		WHERE company_id = $1 AND uuid = $2`, companyID, uuid)
	return r.scanFee(row)
}

// ListByCompany implementa fee.Repository.ListByCompany
func (r *FeeRepository) ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*fee.Fee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+feeColumns+` FROM fees
		WHERE company_id = $1
		ORDER BY description
		LIMIT $2 OFFSET $3`, companyID, limit, offset)

	if err != nil {
		return nil, fmt.Errorf("erro ao listar taxas: %w", err)
	}
	defer rows.Close()

	fees := make([]*fee.Fee, 0)
	for rows.Next() {
		f, err := r.scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer taxas: %w", err)
	}

	return fees, nil
}

// Update implementa fee.Repository.Update
func (r *FeeRepository) Update(ctx context.Context, f *fee.Fee) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE fees SET
			description = $1, amount = $2, type = $3, updated_at = $4
		WHERE company_id = $5 AND id = $6`,
		f.Description, f.Amount, f.Type, f.UpdatedAt, f.CompanyID, f.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar taxa: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrFeeNotFound
	}

	return nil
}

// Delete implementa fee.Repository.Delete
func (r *FeeRepository) Delete(ctx context.Context, companyID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM fees WHERE company_id = $1 AND id = $2`,
		companyID, id)

	if err != nil {
		return fmt.Errorf("erro ao remover taxa: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrFeeNotFound
	}

	return nil
}
