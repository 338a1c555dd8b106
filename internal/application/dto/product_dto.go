package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto con su stock inicial.
type CreateProductRequest struct {
	Name  string `json:"name" form:"name"`
	Price string `json:"price" form:"price"`
	Stock string `json:"stock" form:"stock"`
}

// ProductResponse salida de un producto. Stock refleja la cantidad del
// registro Stock relacionado cuando se conoce.
type ProductResponse struct {
	ID         int64           `json:"id"`
	SupplierID int64           `json:"supplierId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int64           `json:"stock,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
