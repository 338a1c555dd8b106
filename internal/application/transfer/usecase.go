// Package transfer implementa la operación central de transferencia de saldo:
// mover una cantidad fija y validada desde un campo numérico de una entidad
// hacia el campo relacionado de otra, como unidad atómica todo-o-nada.
//
// Las dos instancias concretas del dominio — puntos usuario->usuario y
// reabastecimiento proveedor->stock de producto — comparten la misma rutina
// move(), parametrizada por el par débito/crédito y la búsqueda opcional del
// registro secundario.
//
// Las precondiciones se chequean todas antes de abrir la transacción (cada una
// corta con su propio error); dentro de la transacción ambas filas de saldo se
// bloquean con SELECT FOR UPDATE y el saldo origen se verifica de nuevo bajo
// el lock, de modo que read-committed es garantía suficiente del store.
package transfer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcastrom/tienda-api/internal/application/auth"
	"github.com/jcastrom/tienda-api/internal/application/dto"
	"github.com/jcastrom/tienda-api/internal/domain"
	"github.com/jcastrom/tienda-api/internal/domain/entity"
	"github.com/jcastrom/tienda-api/internal/domain/repository"
	"github.com/jcastrom/tienda-api/internal/domain/validate"
)

// UseCase ejecuta transferencias de saldo entre entidades.
type UseCase struct {
	runner    repository.TxRunner
	users     repository.UserRepository
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
	stocks    repository.StockRepository
}

// NewUseCase construye el caso de uso de transferencias.
func NewUseCase(
	runner repository.TxRunner,
	users repository.UserRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	stocks repository.StockRepository,
) *UseCase {
	return &UseCase{
		runner:    runner,
		users:     users,
		suppliers: suppliers,
		products:  products,
		stocks:    stocks,
	}
}

// movement parametriza el par (entidad, campo de saldo) de una transferencia.
// debit bloquea la fila origen, re-verifica el saldo y aplica el débito;
// credit aplica el crédito en el destino o en su registro secundario.
type movement struct {
	kind          string
	amount        int64
	sourceID      int64
	destinationID int64
	debit         func(tx repository.Tx) error
	credit        func(tx repository.Tx) error
}

// move ejecuta débito, crédito y el registro de auditoría dentro de una sola
// transacción. Ambos efectos se confirman juntos o ninguno.
func (uc *UseCase) move(ctx context.Context, m movement) error {
	return uc.runner.Run(ctx, func(tx repository.Tx) error {
		if err := m.debit(tx); err != nil {
			return err
		}
		if err := m.credit(tx); err != nil {
			return err
		}
		return tx.Transfers.Create(&entity.Transfer{
			TransactionID: uuid.New().String(),
			Kind:          m.kind,
			SourceID:      m.sourceID,
			DestinationID: m.destinationID,
			Amount:        m.amount,
			CreatedAt:     time.Now(),
		})
	})
}

// TransferPoints mueve puntos de un usuario a otro.
// Escalera de precondiciones, cada una corta con su error propio:
// amount numérico y > 0, ids numéricos, emisor existe, receptor existe,
// puntos del emisor >= amount.
func (uc *UseCase) TransferPoints(ctx context.Context, in dto.TransferPointsRequest) (*dto.TransferPointsResponse, error) {
	if res := validate.Transfer(in.Amount, in.SenderID, in.ReceiverID, "Sender", "Receiver"); !res.OK() {
		return nil, res.Err()
	}
	amount := validate.Int(in.Amount)
	senderID := validate.Int(in.SenderID)
	receiverID := validate.Int(in.ReceiverID)

	sender, err := uc.users.GetByID(senderID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, domain.NotFoundf("Sender with ID: %d is not found", senderID)
	}
	receiver, err := uc.users.GetByID(receiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, domain.NotFoundf("Receiver with ID: %d is not found", receiverID)
	}
	if sender.Point < amount {
		return nil, domain.ErrPointInsufficient
	}

	var updatedSender, updatedReceiver *entity.User
	err = uc.move(ctx, movement{
		kind:          entity.TransferKindPoint,
		amount:        amount,
		sourceID:      senderID,
		destinationID: receiverID,
		debit: func(tx repository.Tx) error {
			locked, err := tx.Users.GetByIDForUpdate(senderID)
			if err != nil {
				return err
			}
			if locked == nil {
				return domain.NotFoundf("Sender with ID: %d is not found", senderID)
			}
			if locked.Point < amount {
				return domain.ErrPointInsufficient
			}
			updatedSender, err = tx.Users.AdjustPoint(senderID, -amount)
			return err
		},
		credit: func(tx repository.Tx) error {
			var err error
			updatedReceiver, err = tx.Users.AdjustPoint(receiverID, amount)
			return err
		},
	})
	if err != nil {
		return nil, err
	}
	return &dto.TransferPointsResponse{
		Message:  "Point has been transferred to " + receiver.Name,
		Sender:   *auth.ToUserResponse(updatedSender),
		Receiver: *auth.ToUserResponse(updatedReceiver),
	}, nil
}

// ReplenishStock mueve inventario del proveedor hacia el registro Stock del
// producto. Misma escalera que los puntos, más la existencia del registro
// secundario (la fila Stock atada al producto destino).
func (uc *UseCase) ReplenishStock(ctx context.Context, in dto.ReplenishStockRequest) (*dto.ReplenishStockResponse, error) {
	if res := validate.Transfer(in.Amount, in.SupplierID, in.ProductID, "Supplier", "Product"); !res.OK() {
		return nil, res.Err()
	}
	amount := validate.Int(in.Amount)
	supplierID := validate.Int(in.SupplierID)
	productID := validate.Int(in.ProductID)

	supplier, err := uc.suppliers.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.NotFoundf("Supplier with ID: %d is not found", supplierID)
	}
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFoundf("Product with ID: %d is not found", productID)
	}
	stock, err := uc.stocks.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.NotFoundf("Stock with ID: %d is not found", productID)
	}
	if supplier.Stock < amount {
		return nil, domain.ErrStockInsufficient
	}

	var updatedSupplier *entity.Supplier
	var updatedStock *entity.Stock
	err = uc.move(ctx, movement{
		kind:          entity.TransferKindStock,
		amount:        amount,
		sourceID:      supplierID,
		destinationID: productID,
		debit: func(tx repository.Tx) error {
			locked, err := tx.Suppliers.GetByIDForUpdate(supplierID)
			if err != nil {
				return err
			}
			if locked == nil {
				return domain.NotFoundf("Supplier with ID: %d is not found", supplierID)
			}
			if locked.Stock < amount {
				return domain.ErrStockInsufficient
			}
			updatedSupplier, err = tx.Suppliers.AdjustStock(supplierID, -amount)
			return err
		},
		credit: func(tx repository.Tx) error {
			locked, err := tx.Stocks.GetByProductIDForUpdate(productID)
			if err != nil {
				return err
			}
			if locked == nil {
				return domain.NotFoundf("Stock with ID: %d is not found", productID)
			}
			updatedStock, err = tx.Stocks.AdjustQuantity(productID, amount)
			return err
		},
	})
	if err != nil {
		return nil, err
	}
	return &dto.ReplenishStockResponse{
		Message: product.Name + " stock has been updated",
		Supplier: dto.SupplierResponse{
			ID:        updatedSupplier.ID,
			Name:      updatedSupplier.Name,
			Stock:     updatedSupplier.Stock,
			CreatedAt: updatedSupplier.CreatedAt,
			UpdatedAt: updatedSupplier.UpdatedAt,
		},
		Stock: dto.StockResponse{
			ID:        updatedStock.ID,
			ProductID: updatedStock.ProductID,
			Quantity:  updatedStock.Quantity,
			UpdatedAt: updatedStock.UpdatedAt,
		},
	}, nil
}
