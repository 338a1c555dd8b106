package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinProductPrice precio mínimo aceptado al crear o actualizar un producto.
var MinProductPrice = decimal.NewFromInt(500)

// MinInitialStock cantidad mínima de stock al crear un producto.
const MinInitialStock = 10

// Product representa un producto publicado por un Supplier.
// La cantidad disponible vive en el registro Stock relacionado (uno a uno).
type Product struct {
	ID         int64
	SupplierID int64
	Name       string
	Price      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProductFields whitelist de atributos de Product para sortBy.
func ProductFields() []string {
	return []string{"id", "supplierId", "name", "price", "createdAt", "updatedAt"}
}
