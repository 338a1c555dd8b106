package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastrom/tienda-api/internal/domain/entity"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
	"github.com/jcastrom/tienda-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = "id, user_id, date, subtotal, created_at"

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
// Las líneas viven en order_products y se insertan junto con la cabecera.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta el pedido y sus líneas. Llamar dentro de una transacción para
// que cabecera y líneas aparezcan juntas o no aparezcan.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (user_id, date, subtotal, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.UserID, order.Date, order.Subtotal, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, line := range order.Lines {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO order_products (order_id, product_id, quantity) VALUES ($1, $2, $3)`,
			order.ID, line.ProductID, line.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un pedido con sus líneas.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.UserID, &o.Date, &o.Subtotal, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	lines, err := r.linesFor(o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

// List lista pedidos según filtros, orden y paginación, con sus líneas.
func (r *OrderRepo) List(opts listing.Options) ([]*entity.Order, error) {
	query, args := buildListQuery(`SELECT `+orderColumns+` FROM orders`, opts)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Date, &o.Subtotal, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		lines, err := r.linesFor(o.ID)
		if err != nil {
			return nil, err
		}
		o.Lines = lines
	}
	return list, nil
}

func (r *OrderRepo) linesFor(orderID int64) ([]entity.OrderLine, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT product_id, quantity FROM order_products WHERE order_id = $1 ORDER BY product_id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ProductID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// Delete elimina un pedido y sus líneas.
func (r *OrderRepo) Delete(id int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM order_products WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete order lines: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// DeleteByUserID elimina todos los pedidos del usuario (líneas incluidas) y
// devuelve cuántos pedidos borró. Llamar dentro de la transacción del borrado
// en cascada del usuario.
func (r *OrderRepo) DeleteByUserID(userID int64) (int64, error) {
	ctx := context.Background()
	_, err := r.q.Exec(ctx,
		`DELETE FROM order_products WHERE order_id IN (SELECT id FROM orders WHERE user_id = $1)`,
		userID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete order lines by user: %w", err)
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM orders WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete orders by user: %w", err)
	}
	return tag.RowsAffected(), nil
}
