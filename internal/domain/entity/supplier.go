package entity

import "time"

// Supplier representa un proveedor con su inventario propio (stock).
// Stock solo lo decrementa la operación de reabastecimiento.
type Supplier struct {
	ID        int64
	Name      string
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupplierFields whitelist de atributos de Supplier para sortBy.
func SupplierFields() []string {
	return []string{"id", "name", "stock", "createdAt", "updatedAt"}
}
