package repository

import "github.com/jcastrom/tienda-api/internal/domain/entity"

// TransferRepository define el puerto para la auditoría de transferencias de saldo.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
}
