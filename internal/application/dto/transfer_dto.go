package dto

// TransferPointsRequest entrada de la transferencia de puntos entre usuarios.
type TransferPointsRequest struct {
	Amount     string `json:"amount" form:"amount"`
	SenderID   string `json:"senderId" form:"senderId"`
	ReceiverID string `json:"receiverId" form:"receiverId"`
}

// TransferPointsResponse las dos filas actualizadas más el mensaje que nombra al destino.
type TransferPointsResponse struct {
	Message  string
	Sender   UserResponse
	Receiver UserResponse
}

// ReplenishStockRequest entrada del reabastecimiento proveedor -> stock de producto.
type ReplenishStockRequest struct {
	Amount     string `json:"amount" form:"amount"`
	SupplierID string `json:"supplierId" form:"supplierId"`
	ProductID  string `json:"productId" form:"productId"`
}

// ReplenishStockResponse proveedor y stock actualizados más el mensaje.
type ReplenishStockResponse struct {
	Message  string
	Supplier SupplierResponse
	Stock    StockResponse
}
