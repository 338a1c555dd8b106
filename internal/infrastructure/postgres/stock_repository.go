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

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = "id, product_id, quantity, updated_at"

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste el registro de stock de un producto recién creado.
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (product_id, quantity, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		stock.ProductID, stock.Quantity, stock.UpdatedAt,
	).Scan(&stock.ID)
	if err != nil {
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByProductID obtiene el stock de un producto (relación uno a uno).
func (r *StockRepo) GetByProductID(productID int64) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE product_id = $1`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// List lista stocks según filtros, orden y paginación.
func (r *StockRepo) List(opts listing.Options) ([]*entity.Stock, error) {
	query, args := buildListQuery(`SELECT `+stockColumns+` FROM stocks`, opts)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByProductIDForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE).
func (r *StockRepo) GetByProductIDForUpdate(productID int64) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE product_id = $1 FOR UPDATE`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return s, nil
}

// AdjustQuantity suma delta a la cantidad y devuelve la fila actualizada.
func (r *StockRepo) AdjustQuantity(productID int64, delta int64) (*entity.Stock, error) {
	query := `
		UPDATE stocks SET quantity = quantity + $2, updated_at = now()
		WHERE product_id = $1
		RETURNING ` + stockColumns
	s, err := scanStock(r.q.QueryRow(context.Background(), query, productID, delta))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("adjust stock quantity: %w", err)
	}
	return s, nil
}
