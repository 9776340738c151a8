package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carvasys/carvasys-api/internal/domain/favored"
	"github.com/carvasys/carvasys-api/internal/infrastructure/database"
)

// Erros específicos do repositório
var ErrFavoredNotFound = errors.New("lançamento de fiado não encontrado")

const favoredColumns = `id, uuid, company_id, client_id, product_id, category_id,
	name, description, amount, discounts, total_amount, favored_total,
	favored_paid_amount, quantity, image, due_date, active, category_name,
	client_name, created_at, updated_at`

// FavoredRepository implementa a interface favored.Repository
type FavoredRepository struct {
	db *pgxpool.Pool
}

// NewFavoredRepository cria uma nova instância de FavoredRepository
func NewFavoredRepository(db *pgxpool.Pool) favored.Repository {
	return &FavoredRepository{
		db: db,
	}
}

// Create implementa favored.Repository.Create
func (r *FavoredRepository) Create(ctx context.Context, t *favored.Transaction) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO favored_transactions (
			uuid, company_id, client_id, product_id, category_id, name,
			description, amount, discounts, total_amount, favored_total,
			favored_paid_amount, quantity, image, due_date, active,
			category_name, client_name, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id`,
		t.UUID, t.CompanyID, t.ClientID, t.ProductID, t.CategoryID, t.Name,
		t.Description, t.Amount, t.Discounts, t.TotalAmount, t.FavoredTotal,
		t.FavoredPaidAmount, t.Quantity, t.Image, t.DueDate, t.Active,
		t.Snapshot.CategoryName, t.Snapshot.ClientName, t.CreatedAt,
		t.UpdatedAt).Scan(&t.ID)

	if err != nil {
		return fmt.Errorf("erro ao criar lançamento de fiado: %w", err)
	}

	return nil
}

func (r *FavoredRepository) scanTransaction(row pgx.Row) (*favored.Transaction, error) {
	var t favored.Transaction

	err := row.Scan(
		&t.ID, &t.UUID, &t.CompanyID, &t.ClientID, &t.ProductID, &t.CategoryID,
		&t.Name, &t.Description, &t.Amount, &t.Discounts, &t.TotalAmount,
		&t.FavoredTotal, &t.FavoredPaidAmount, &t.Quantity, &t.Image,
		&t.DueDate, &t.Active, &t.Snapshot.CategoryName, &t.Snapshot.ClientName,
		&t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFavoredNotFound
		}
		return nil, fmt.Errorf("erro ao buscar lançamento de fiado: %w", err)
	}

	return &t, nil
}

// FindByUUID implementa favored.Repository.FindByUUID
func (r *FavoredRepository) FindByUUID(ctx context.Context, companyID int64, uuid string) (*favored.Transaction, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+favoredColumns+` FROM favored_transactions
		WHERE company_id = $1 AND uuid = $2`, companyID, uuid)
	return r.scanTransaction(row)
}

func (r *FavoredRepository) buildFilter(companyID int64, filter favored.Filter) (string, []interface{}) {
	where := []string{"company_id = $1"}
	args := []interface{}{companyID}

	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		where = append(where, fmt.Sprintf("client_id = $%d", len(args)))
	}

	if filter.OnlyOpen {
		where = append(where, "favored_paid_amount < favored_total")
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

// ListByCompany implementa favored.Repository.ListByCompany
func (r *FavoredRepository) ListByCompany(ctx context.Context, companyID int64, filter favored.Filter, limit, offset int) ([]*favored.Transaction, error) {
	where, args := r.buildFilter(companyID, filter)

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM favored_transactions WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		favoredColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lançamentos de fiado: %w", err)
	}
	defer rows.Close()

	transactions := make([]*favored.Transaction, 0)
	for rows.Next() {
		t, err := r.scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer lançamentos de fiado: %w", err)
	}

	return transactions, nil
}

// CountByCompany implementa favored.Repository.CountByCompany
func (r *FavoredRepository) CountByCompany(ctx context.Context, companyID int64, filter favored.Filter) (int, error) {
	where, args := r.buildFilter(companyID, filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM favored_transactions WHERE %s`, where),
		args...).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar lançamentos de fiado: %w", err)
	}

	return count, nil
}

// ListUpcoming implementa favored.Repository.ListUpcoming
func (r *FavoredRepository) ListUpcoming(ctx context.Context, companyID, clientID int64, limit int) ([]*favored.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+favoredColumns+` FROM favored_transactions
		WHERE company_id = $1 AND client_id = $2
			AND favored_paid_amount < favored_total
			AND due_date IS NOT NULL
		ORDER BY due_date
		LIMIT $3`, companyID, clientID, limit)

	if err != nil {
		return nil, fmt.Errorf("erro ao listar vencimentos do fiado: %w", err)
	}
	defer rows.Close()

	transactions := make([]*favored.Transaction, 0)
	for rows.Next() {
		t, err := r.scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer vencimentos do fiado: %w", err)
	}

	return transactions, nil
}

// Update implementa favored.Repository.Update
func (r *FavoredRepository) Update(ctx context.Context, t *favored.Transaction) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE favored_transactions SET
			name = $1, description = $2, amount = $3, discounts = $4,
			total_amount = $5, favored_total = $6, quantity = $7, image = $8,
			due_date = $9, active = $10, updated_at = $11
		WHERE company_id = $12 AND id = $13`,
		t.Name, t.Description, t.Amount, t.Discounts, t.TotalAmount,
		t.FavoredTotal, t.Quantity, t.Image, t.DueDate, t.Active, t.UpdatedAt,
		t.CompanyID, t.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar lançamento de fiado: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrFavoredNotFound
	}

	return nil
}

// Delete implementa favored.Repository.Delete
func (r *FavoredRepository) Delete(ctx context.Context, companyID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM favored_transactions WHERE company_id = $1 AND id = $2`,
		companyID, id)

	if err != nil {
		return fmt.Errorf("erro ao remover lançamento de fiado: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrFavoredNotFound
	}

	return nil
}

// RegisterPayment implementa favored.Repository.RegisterPayment. A linha é
// travada com SELECT FOR UPDATE antes da validação do pagamento, de modo
// que dois pagamentos simultâneos sobre o mesmo lançamento não se percam.
func (r *FavoredRepository) RegisterPayment(ctx context.Context, companyID int64, uuid string, amount float64) (*favored.Transaction, error) {
	var result *favored.Transaction

	err := database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			`SELECT `+favoredColumns+` FROM favored_transactions
			WHERE company_id = $1 AND uuid = $2
			FOR UPDATE`, companyID, uuid)

		t, err := r.scanTransaction(row)
		if err != nil {
			return err
		}

		if err := t.RegisterPayment(amount); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx,
			`UPDATE favored_transactions SET
				favored_paid_amount = $1, updated_at = $2
			WHERE company_id = $3 AND id = $4`,
			t.FavoredPaidAmount, t.UpdatedAt, t.CompanyID, t.ID)

		if err != nil {
			return fmt.Errorf("erro ao registrar pagamento: %w", err)
		}

		if tag.RowsAffected() == 0 {
			return ErrFavoredNotFound
		}

		result = t
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// SummaryByClient implementa favored.Repository.SummaryByClient
func (r *FavoredRepository) SummaryByClient(ctx context.Context, companyID, clientID int64) (*favored.Summary, error) {
	var s favored.Summary

	err := r.db.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(favored_total), 0),
			COALESCE(SUM(favored_paid_amount), 0),
			COALESCE(SUM(favored_total - favored_paid_amount), 0),
			COUNT(*),
			COUNT(*) FILTER (WHERE favored_paid_amount < favored_total)
		FROM favored_transactions
		WHERE company_id = $1 AND client_id = $2`,
		companyID, clientID).Scan(
		&s.TotalDebt, &s.TotalPaid, &s.RemainingBalance, &s.TotalItems,
		&s.OpenEntries)

	if err != nil {
		return nil, fmt.Errorf("erro ao montar resumo do fiado: %w", err)
	}

	return &s, nil
}

// OverdueAmount implementa favored.Repository.OverdueAmount
func (r *FavoredRepository) OverdueAmount(ctx context.Context, companyID, clientID int64, reference time.Time) (float64, error) {
	var amount float64

	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(favored_total - favored_paid_amount), 0)
		FROM favored_transactions
		WHERE company_id = $1 AND client_id = $2
			AND favored_paid_amount < favored_total
			AND due_date IS NOT NULL AND due_date < $3`,
		companyID, clientID, reference).Scan(&amount)

	if err != nil {
		return 0, fmt.Errorf("erro ao calcular saldo vencido: %w", err)
	}

	return amount, nil
}

// ClientsWithTransactions implementa favored.Repository.ClientsWithTransactions
func (r *FavoredRepository) ClientsWithTransactions(ctx context.Context, companyID int64) ([]*favored.ClientAggregate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT
			c.id, c.uuid, c.name, c.document_number,
			COUNT(ft.id),
			COALESCE(SUM(ft.favored_total), 0),
			COALESCE(SUM(ft.favored_paid_amount), 0)
		FROM clients c
		JOIN favored_transactions ft ON ft.client_id = c.id
		WHERE ft.company_id = $1
		GROUP BY c.id, c.uuid, c.name, c.document_number
		ORDER BY c.name`, companyID)

	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes do fiado: %w", err)
	}
	defer rows.Close()

	aggregates := make([]*favored.ClientAggregate, 0)
	for rows.Next() {
		var a favored.ClientAggregate
		err := rows.Scan(
			&a.ClientID, &a.ClientUUID, &a.ClientName, &a.Document,
			&a.TransactionCount, &a.TotalDebt, &a.PaidAmount)
		if err != nil {
			return nil, fmt.Errorf("erro ao listar clientes do fiado: %w", err)
		}
		aggregates = append(aggregates, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer clientes do fiado: %w", err)
	}

	return aggregates, nil
}
