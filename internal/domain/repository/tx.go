package repository

import "context"

// Tx agrupa los repositorios atados a una misma transacción de BD.
type Tx struct {
	Users     UserRepository
	Suppliers SupplierRepository
	Products  ProductRepository
	Stocks    StockRepository
	Orders    OrderRepository
	Transfers TransferRepository
}

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios
// atados a esa tx. Garantiza atomicidad: Commit si fn retorna nil, Rollback si no.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx Tx) error) error
}
