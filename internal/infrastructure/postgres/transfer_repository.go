package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcastrom/tienda-api/internal/domain/entity"
	"github.com/jcastrom/tienda-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de auditoría de transferencias.
// Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste el registro de auditoría de una transferencia.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	if transfer.TransactionID == "" {
		transfer.TransactionID = uuid.New().String()
	}
	query := `
		INSERT INTO transfers (transaction_id, kind, source_id, destination_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		transfer.TransactionID, transfer.Kind, transfer.SourceID, transfer.DestinationID,
		transfer.Amount, transfer.CreatedAt,
	).Scan(&transfer.ID)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}
