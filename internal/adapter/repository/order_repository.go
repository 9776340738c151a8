package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carvasys/carvasys-api/internal/domain/order"
	"github.com/carvasys/carvasys-api/internal/infrastructure/database"
)

// Erros específicos do repositório
var ErrOrderNotFound = errors.New("pedido não encontrado")

const orderColumns = `id, uuid, company_id, client_id, subtotal, discount_amount,
	fee_amount, total_amount, status, notes, confirmed_at, shipped_at,
	delivered_at, cancelled_at, created_at, updated_at`

const orderItemColumns = `id, uuid, order_id, product_id, product_name, quantity,
	unit_price, discount_percent, discount_amount, total_amount, created_at,
	updated_at`

// OrderRepository implementa a interface order.Repository
type OrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository cria uma nova instância de OrderRepository
func NewOrderRepository(db *pgxpool.Pool) order.Repository {
	return &OrderRepository{
		db: db,
	}
}

// Create implementa order.Repository.Create. O pedido e seus itens são
// persistidos na mesma transação: ou tudo entra, ou nada entra.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO orders (
				uuid, company_id, client_id, subtotal, discount_amount,
				fee_amount, total_amount, status, notes, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id`,
			o.UUID, o.CompanyID, o.ClientID, o.Subtotal, o.DiscountAmount,
			o.FeeAmount, o.TotalAmount, o.Status, o.Notes, o.CreatedAt,
			o.UpdatedAt).Scan(&o.ID)

		if err != nil {
			return fmt.Errorf("erro ao criar pedido: %w", err)
		}

		for _, item := range o.Items {
			item.OrderID = o.ID
			err := tx.QueryRow(ctx,
				`INSERT INTO order_items (
					uuid, order_id, product_id, product_name, quantity,
					unit_price, discount_percent, discount_amount, total_amount,
					created_at, updated_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
				RETURNING id`,
				item.UUID, item.OrderID, item.ProductID, item.ProductName,
				item.Quantity, item.UnitPrice, item.DiscountPercent,
				item.DiscountAmount, item.TotalAmount, item.CreatedAt,
				item.UpdatedAt).Scan(&item.ID)

			if err != nil {
				return fmt.Errorf("erro ao criar item do pedido: %w", err)
			}
		}

		return nil
	})
}

func (r *OrderRepository) scanOrder(row pgx.Row) (*order.Order, error) {
	var o order.Order

	err := row.Scan(
		&o.ID, &o.UUID, &o.CompanyID, &o.ClientID, &o.Subtotal,
		&o.DiscountAmount, &o.FeeAmount, &o.TotalAmount, &o.Status, &o.Notes,
		&o.ConfirmedAt, &o.ShippedAt, &o.DeliveredAt, &o.CancelledAt,
		&o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar pedido: %w", err)
	}

	return &o, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orderID int64) ([]*order.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderItemColumns+` FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)

	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens do pedido: %w", err)
	}
	defer rows.Close()

	items := make([]*order.Item, 0)
	for rows.Next() {
		var item order.Item
		err := rows.Scan(
			&item.ID, &item.UUID, &item.OrderID, &item.ProductID,
			&item.ProductName, &item.Quantity, &item.UnitPrice,
			&item.DiscountPercent, &item.DiscountAmount, &item.TotalAmount,
			&item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar itens do pedido: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer itens do pedido: %w", err)
	}

	return items, nil
}

// FindByUUID implementa order.Repository.FindByUUID
func (r *OrderRepository) FindByUUID(ctx context.Context, companyID int64, uuid string) (*order.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders
		WHERE company_id = $1 AND uuid = $2`, companyID, uuid)

	o, err := r.scanOrder(row)
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return o, nil
}

func (r *OrderRepository) buildFilter(companyID int64, filter order.Filter) (string, []interface{}) {
	where := []string{"company_id = $1"}
	args := []interface{}{companyID}

	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		where = append(where, fmt.Sprintf("client_id = $%d", len(args)))
	}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
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

// ListByCompany implementa order.Repository.ListByCompany. Os itens de cada
// pedido são carregados junto para evitar viagens extras no chamador.
func (r *OrderRepository) ListByCompany(ctx context.Context, companyID int64, filter order.Filter, limit, offset int) ([]*order.Order, error) {
	where, args := r.buildFilter(companyID, filter)

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM orders WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		orderColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos: %w", err)
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer pedidos: %w", err)
	}

	for _, o := range orders {
		items, err := r.loadItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}

	return orders, nil
}

// CountByCompany implementa order.Repository.CountByCompany
func (r *OrderRepository) CountByCompany(ctx context.Context, companyID int64, filter order.Filter) (int, error) {
	where, args := r.buildFilter(companyID, filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM orders WHERE %s`, where),
		args...).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar pedidos: %w", err)
	}

	return count, nil
}

// UpdateStatus implementa order.Repository.UpdateStatus
func (r *OrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET
			status = $1, confirmed_at = $2, shipped_at = $3, delivered_at = $4,
			cancelled_at = $5, updated_at = $6
		WHERE company_id = $7 AND id = $8`,
		o.Status, o.ConfirmedAt, o.ShippedAt, o.DeliveredAt, o.CancelledAt,
		o.UpdatedAt, o.CompanyID, o.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar status do pedido: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// UpdateTotals implementa order.Repository.UpdateTotals
func (r *OrderRepository) UpdateTotals(ctx context.Context, o *order.Order) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET
			subtotal = $1, discount_amount = $2, fee_amount = $3,
			total_amount = $4, updated_at = $5
		WHERE company_id = $6 AND id = $7`,
		o.Subtotal, o.DiscountAmount, o.FeeAmount, o.TotalAmount, o.UpdatedAt,
		o.CompanyID, o.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar totais do pedido: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}
