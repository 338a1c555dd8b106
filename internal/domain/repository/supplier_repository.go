package repository

import (
	"github.com/jcastrom/tienda-api/internal/domain/entity"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	GetByID(id int64) (*entity.Supplier, error)
	List(opts listing.Options) ([]*entity.Supplier, error)
	GetByIDForUpdate(id int64) (*entity.Supplier, error)
	// AdjustStock suma delta (puede ser negativo) al stock y devuelve la fila actualizada.
	AdjustStock(id int64, delta int64) (*entity.Supplier, error)
}
