package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastrom/tienda-api/internal/application/usecase"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
	"github.com/jcastrom/tienda-api/internal/domain/validate"
)

// StockHandler maneja el listado de stocks.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler de stocks.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar stocks
// @Tags         stocks
// @Produce      json
// @Param        minQuantity  query  int     false  "cantidad mínima"
// @Param        maxQuantity  query  int     false  "cantidad máxima"
// @Param        productId    query  int     false  "filtrar por producto"
// @Param        sortBy       query  string  false  "campo de orden"
// @Param        sort         query  string  false  "asc | desc"
// @Param        limit        query  int     false  "máximo de filas"
// @Param        offset       query  int     false  "filas a saltar"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorEnvelope
// @Router       /api/v1/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	minQuantity := c.Query("minQuantity")
	maxQuantity := c.Query("maxQuantity")
	productID := c.Query("productId")
	sortBy := c.Query("sortBy")
	sort := c.Query("sort")
	limit := c.Query("limit")
	offset := c.Query("offset")

	if res := validate.StocksQuery(minQuantity, maxQuantity, productID, sortBy, sort, limit, offset); !res.OK() {
		return Error(c, res.Err())
	}
	opts := listing.Parse(sortBy, sort, limit, offset)
	if minQuantity != "" {
		opts = opts.WithGte("quantity", validate.Int(minQuantity))
	}
	if maxQuantity != "" {
		opts = opts.WithLte("quantity", validate.Int(maxQuantity))
	}
	if productID != "" {
		opts = opts.WithEq("productId", validate.Int(productID))
	}
	stocks, err := h.uc.List(opts)
	if err != nil {
		return Error(c, err)
	}
	return Success(c, fiber.StatusOK, "Stocks retrieved successfully", len(stocks), fiber.Map{"stocks": stocks})
}
