package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carvasys/carvasys-api/internal/domain/transaction"
)

// Erros específicos do repositório
var ErrTransactionNotFound = errors.New("transação não encontrada")

const transactionColumns = `id, uuid, company_id, product_id, fee_id, client_id,
	category_id, name, description, amount, discounts, fees, total_amount,
	quantity, category_name, client_name, active, created_at, updated_at`

// TransactionRepository implementa a interface transaction.Repository
type TransactionRepository struct {
	db *pgxpool.Pool
}

// NewTransactionRepository cria uma nova instância de TransactionRepository
func NewTransactionRepository(db *pgxpool.Pool) transaction.Repository {
	return &TransactionRepository{
		db: db,
	}
}

// Create implementa transaction.Repository.Create
func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO transactions (
			uuid, company_id, product_id, fee_id, client_id, category_id,
			name, description, amount, discounts, fees, total_amount,
			quantity, category_name, client_name, active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id`,
		t.UUID, t.CompanyID, t.ProductID, t.FeeID, t.ClientID, t.CategoryID,
		t.Name, t.Description, t.Amount, t.Discounts, t.Fees, t.TotalAmount,
		t.Quantity, t.Snapshot.CategoryName, t.Snapshot.ClientName, t.Active,
		t.CreatedAt, t.UpdatedAt).Scan(&t.ID)

	if err != nil {
		return fmt.Errorf("erro ao criar transação: %w", err)
	}

	return nil
}

func (r *TransactionRepository) scanTransaction(row pgx.Row) (*transaction.Transaction, error) {
	var t transaction.Transaction

	err := row.Scan(
		&t.ID, &t.UUID, &t.CompanyID, &t.ProductID, &t.FeeID, &t.ClientID,
		&t.CategoryID, &t.Name, &t.Description, &t.Amount, &t.Discounts,
		&t.Fees, &t.TotalAmount, &t.Quantity, &t.Snapshot.CategoryName,
		&t.Snapshot.ClientName, &t.Active, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("erro ao buscar transação: %w", err)
	}

	return &t, nil
}

// FindByUUID implementa transaction.Repository.FindByUUID
func (r *TransactionRepository) FindByUUID(ctx context.Context, companyID int64, uuid string) (*transaction.Transaction, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		WHERE company_id = $1 AND uuid = $2`, companyID, uuid)
	return r.scanTransaction(row)
}

func (r *TransactionRepository) buildFilter(companyID int64, filter transaction.Filter) (string, []interface{}) {
	where := []string{"company_id = $1"}
	args := []interface{}{companyID}

	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		where = append(where, fmt.Sprintf("client_id = $%d", len(args)))
	}

	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)))
	}

	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		where = append(where, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	return strings.Join(where, " AND "), args
}

// ListByCompany implementa transaction.Repository.ListByCompany
func (r *TransactionRepository) ListByCompany(ctx context.Context, companyID int64, filter transaction.Filter, limit, offset int) ([]*transaction.Transaction, error) {
	where, args := r.buildFilter(companyID, filter)

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM transactions WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		transactionColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar transações: %w", err)
	}
	defer rows.Close()

	transactions := make([]*transaction.Transaction, 0)
	for rows.Next() {
		t, err := r.scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer transações: %w", err)
	}

	return transactions, nil
}

// CountByCompany implementa transaction.Repository.CountByCompany
func (r *TransactionRepository) CountByCompany(ctx context.Context, companyID int64, filter transaction.Filter) (int, error) {
	where, args := r.buildFilter(companyID, filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM transactions WHERE %s`, where),
		args...).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar transações: %w", err)
	}

	return count, nil
}
