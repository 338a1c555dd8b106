package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastrom/tienda-api/internal/application/dto"
	"github.com/jcastrom/tienda-api/internal/application/usecase"
	"github.com/jcastrom/tienda-api/internal/domain"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
	"github.com/jcastrom/tienda-api/internal/domain/validate"
)

// OrderHandler maneja listado, creación y borrado de pedidos.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Produce      json
// @Param        userId  query  int     false  "filtrar por usuario"
// @Param        sortBy  query  string  false  "campo de orden"
// @Param        sort    query  string  false  "asc | desc"
// @Param        limit   query  int     false  "máximo de filas"
// @Param        offset  query  int     false  "filas a saltar"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorEnvelope
// @Security     BearerAuth
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	userID := c.Query("userId")
	sortBy := c.Query("sortBy")
	sort := c.Query("sort")
	limit := c.Query("limit")
	offset := c.Query("offset")

	if res := validate.OrdersQuery(userID, sortBy, sort, limit, offset); !res.OK() {
		return Error(c, res.Err())
	}
	opts := listing.Parse(sortBy, sort, limit, offset)
	if userID != "" {
		opts = opts.WithEq("userId", validate.Int(userID))
	}
	orders, err := h.uc.List(opts)
	if err != nil {
		return Error(c, err)
	}
	return Success(c, fiber.StatusOK, "Orders retrieved successfully", len(orders), fiber.Map{"orders": orders})
}

// GetByID godoc
// @Summary      Obtener un pedido
// @Tags         orders
// @Produce      json
// @Param        id  path  int  true  "id del pedido"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorEnvelope
// @Security     BearerAuth
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if res := validate.NumericID("Order", id); !res.OK() {
		return Error(c, res.Err())
	}
	order, err := h.uc.GetByID(validate.Int(id))
	if err != nil {
		return Error(c, err)
	}
	return Success(c, fiber.StatusOK, "Order retrieved successfully", 1, fiber.Map{"order": order})
}

// Create godoc
// @Summary      Crear un pedido del usuario autenticado
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "products: [{productId, quantity}]"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorEnvelope
// @Failure      404  {object}  dto.ErrorEnvelope
// @Security     BearerAuth
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return Error(c, domain.BadRequest("Request body is invalid"))
	}
	order, err := h.uc.Create(c.Context(), GetUserID(c), in.Products)
	if err != nil {
		return Error(c, err)
	}
	return Success(c, fiber.StatusCreated, "Order created successfully", 1, fiber.Map{"order": order})
}

// Delete godoc
// @Summary      Borrar un pedido propio
// @Tags         orders
// @Produce      json
// @Param        id  path  int  true  "id del pedido"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorEnvelope
// @Security     BearerAuth
// @Router       /api/v1/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if res := validate.NumericID("Order", id); !res.OK() {
		return Error(c, res.Err())
	}
	order, err := h.uc.Delete(c.Context(), GetUserID(c), validate.Int(id))
	if err != nil {
		return Error(c, err)
	}
	return Success(c, fiber.StatusOK, "Order deleted successfully", 1, fiber.Map{"order": order})
}
