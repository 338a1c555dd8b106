package dto

import "github.com/shopspring/decimal"

// OrderLineRequest una línea de pedido tal como llega del transporte.
type OrderLineRequest struct {
	ProductID string `json:"productId" form:"productId"`
	Quantity  string `json:"quantity" form:"quantity"`
}

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	UserID   string             `json:"userId" form:"userId"`
	Products []OrderLineRequest `json:"products" form:"products"`
}

// OrderLineResponse una línea de pedido en la respuesta.
type OrderLineResponse struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// OrderResponse salida de un pedido. Date se presenta como dd/mm/yyyy,
// formato heredado del contrato original.
type OrderResponse struct {
	ID       int64               `json:"id"`
	UserID   int64               `json:"userId"`
	Date     string              `json:"date"`
	Subtotal decimal.Decimal     `json:"subtotal"`
	Products []OrderLineResponse `json:"products"`
}
