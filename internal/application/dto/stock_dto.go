package dto

import "time"

// StockResponse salida del registro Stock de un producto.
type StockResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Quantity  int64     `json:"quantity"`
	UpdatedAt time.Time `json:"updatedAt"`
}
