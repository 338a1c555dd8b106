package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastrom/tienda-api/internal/application/dto"
	"github.com/jcastrom/tienda-api/internal/application/transfer"
	"github.com/jcastrom/tienda-api/internal/domain"
)

// TransferHandler maneja las dos transferencias de saldo: puntos entre
// usuarios y reabastecimiento proveedor -> stock de producto.
type TransferHandler struct {
	uc *transfer.UseCase
}

// NewTransferHandler construye el handler de transferencias.
func NewTransferHandler(uc *transfer.UseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// TransferPoints godoc
// @Summary      Transferir puntos entre usuarios
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferPointsRequest  true  "amount, senderId, receiverId"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorEnvelope
// @Failure      404  {object}  dto.ErrorEnvelope
// @Security     BearerAuth
// @Router       /api/v1/transfer-points [put]
func (h *TransferHandler) TransferPoints(c *fiber.Ctx) error {
	var in dto.TransferPointsRequest
	if err := c.BodyParser(&in); err != nil {
		return Error(c, domain.BadRequest("Request body is invalid"))
	}
	out, err := h.uc.TransferPoints(c.Context(), in)
	if err != nil {
		return Error(c, err)
	}
	return Success(c, fiber.StatusCreated, out.Message, 2, fiber.Map{
		"sender":   out.Sender,
		"receiver": out.Receiver,
	})
}

// ReplenishStock godoc
// @Summary      Reabastecer el stock de un producto desde su proveedor
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReplenishStockRequest  true  "amount, supplierId, productId"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorEnvelope
// @Failure      404  {object}  dto.ErrorEnvelope
// @Security     BearerAuth
// @Router       /api/v1/suppliers/stock [put]
func (h *TransferHandler) ReplenishStock(c *fiber.Ctx) error {
	var in dto.ReplenishStockRequest
	if err := c.BodyParser(&in); err != nil {
		return Error(c, domain.BadRequest("Request body is invalid"))
	}
	out, err := h.uc.ReplenishStock(c.Context(), in)
	if err != nil {
		return Error(c, err)
	}
	return Success(c, fiber.StatusCreated, out.Message, 2, fiber.Map{
		"supplier": out.Supplier,
		"stock":    out.Stock,
	})
}
