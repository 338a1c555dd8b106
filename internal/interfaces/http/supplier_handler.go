package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastrom/tienda-api/internal/application/usecase"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
	"github.com/jcastrom/tienda-api/internal/domain/validate"
)

// SupplierHandler maneja el listado de proveedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler de proveedores.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Produce      json
// @Param        supplierId    query  int     false  "filtrar por id"
// @Param        supplierName  query  string  false  "filtrar por nombre"
// @Param        sortBy        query  string  false  "campo de orden"
// @Param        sort          query  string  false  "asc | desc"
// @Param        limit         query  int     false  "máximo de filas"
// @Param        offset        query  int     false  "filas a saltar"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorEnvelope
// @Router       /api/v1/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	supplierID := c.Query("supplierId")
	supplierName := c.Query("supplierName")
	sortBy := c.Query("sortBy")
	sort := c.Query("sort")
	limit := c.Query("limit")
	offset := c.Query("offset")

	if res := validate.SuppliersQuery(supplierID, sortBy, sort, limit, offset); !res.OK() {
		return Error(c, res.Err())
	}
	opts := listing.Parse(sortBy, sort, limit, offset)
	if supplierID != "" {
		opts = opts.WithEq("id", validate.Int(supplierID))
	}
	if supplierName != "" {
		opts = opts.WithEq("name", supplierName)
	}
	suppliers, err := h.uc.List(opts)
	if err != nil {
		return Error(c, err)
	}
	return Success(c, fiber.StatusOK, "Suppliers retrieved successfully", len(suppliers), fiber.Map{"suppliers": suppliers})
}
