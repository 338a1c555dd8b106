package repository

import (
	"github.com/jcastrom/tienda-api/internal/domain/entity"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
)

// StockRepository define el puerto para el registro Stock (uno a uno con Product).
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Create(stock *entity.Stock) error
	GetByProductID(productID int64) (*entity.Stock, error)
	List(opts listing.Options) ([]*entity.Stock, error)
	GetByProductIDForUpdate(productID int64) (*entity.Stock, error)
	// AdjustQuantity suma delta a la cantidad y devuelve la fila actualizada.
	AdjustQuantity(productID int64, delta int64) (*entity.Stock, error)
}
