package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine una línea de pedido: producto y cantidad.
type OrderLine struct {
	ProductID int64
	Quantity  int64
}

// Order representa un pedido de un usuario. Subtotal siempre se recalcula
// con el precio vigente del producto; nunca se acepta del cliente.
type Order struct {
	ID        int64
	UserID    int64
	Date      time.Time
	Subtotal  decimal.Decimal
	Lines     []OrderLine
	CreatedAt time.Time
}

// OrderFields whitelist de atributos de Order para sortBy.
func OrderFields() []string {
	return []string{"id", "userId", "date", "subtotal", "createdAt"}
}
