package entity

import "time"

// Stock representa la cantidad disponible de un producto (uno a uno con Product).
// Quantity solo lo incrementa la operación de reabastecimiento y lo consumen los pedidos.
type Stock struct {
	ID        int64
	ProductID int64
	Quantity  int64
	UpdatedAt time.Time
}

// StockFields whitelist de atributos de Stock para sortBy.
func StockFields() []string {
	return []string{"id", "productId", "quantity", "updatedAt"}
}
