package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastrom/tienda-api/internal/application/dto"
	"github.com/jcastrom/tienda-api/internal/domain"
	"github.com/jcastrom/tienda-api/internal/domain/entity"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
	"github.com/jcastrom/tienda-api/internal/domain/repository"
	"github.com/jcastrom/tienda-api/internal/domain/validate"
)

// orderDateLayout formato heredado para presentar la fecha del pedido.
const orderDateLayout = "02/01/2006"

// OrderUseCase creación, listado y borrado de pedidos.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	runner   repository.TxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	runner repository.TxRunner,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, runner: runner}
}

// Create crea un pedido del usuario autenticado. El subtotal se recalcula
// siempre con el precio vigente de cada producto; el pedido y sus líneas se
// insertan en una sola transacción.
func (uc *OrderUseCase) Create(ctx context.Context, userID int64, lines []dto.OrderLineRequest) (*dto.OrderResponse, error) {
	if len(lines) == 0 {
		return nil, domain.BadRequest("Products can't be empty")
	}
	subtotal := decimal.Zero
	orderLines := make([]entity.OrderLine, 0, len(lines))
	for _, line := range lines {
		res := validate.OrderLine(line.ProductID, line.Quantity)
		if !res.OK() {
			return nil, res.Err()
		}
		productID := validate.Int(line.ProductID)
		quantity := validate.Int(line.Quantity)
		product, err := uc.products.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.NotFoundf("Product with ID: %d is not found", productID)
		}
		subtotal = subtotal.Add(product.Price.Mul(decimal.NewFromInt(quantity)))
		orderLines = append(orderLines, entity.OrderLine{ProductID: productID, Quantity: quantity})
	}
	now := time.Now()
	order := &entity.Order{
		UserID:    userID,
		Date:      now,
		Subtotal:  subtotal,
		Lines:     orderLines,
		CreatedAt: now,
	}
	err := uc.runner.Run(ctx, func(tx repository.Tx) error {
		return tx.Orders.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista pedidos según las opciones ya validadas.
func (uc *OrderUseCase) List(opts listing.Options) ([]dto.OrderResponse, error) {
	list, err := uc.orders.List(opts)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items, nil
}

// GetByID devuelve un pedido por su identificador.
func (uc *OrderUseCase) GetByID(id int64) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFoundf("Order with ID: %d is not found", id)
	}
	return toOrderResponse(order), nil
}

// Delete elimina un pedido. Solo el dueño del pedido puede borrarlo. Las
// líneas y la cabecera caen en una sola transacción.
func (uc *OrderUseCase) Delete(ctx context.Context, loggedInID, id int64) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFoundf("Order with ID: %d is not found", id)
	}
	if order.UserID != loggedInID {
		return nil, domain.NotFoundf("Can't delete order with ID: %d", id)
	}
	err = uc.runner.Run(ctx, func(tx repository.Tx) error {
		return tx.Orders.Delete(id)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return &dto.OrderResponse{
		ID:       o.ID,
		UserID:   o.UserID,
		Date:     o.Date.Format(orderDateLayout),
		Subtotal: o.Subtotal,
		Products: lines,
	}
}
