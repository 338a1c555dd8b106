package entity

import "time"

// Tipos de movimiento de saldo registrados en la auditoría de transferencias.
const (
	TransferKindPoint = "POINT" // usuario -> usuario (point)
	TransferKindStock = "STOCK" // proveedor -> stock de producto
)

// Transfer es el registro de auditoría de una transferencia de saldo.
// Se inserta dentro de la misma transacción que muta ambos saldos.
type Transfer struct {
	ID            int64
	TransactionID string // uuid
	Kind          string // POINT | STOCK
	SourceID      int64
	DestinationID int64
	Amount        int64
	CreatedAt     time.Time
}
