package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jcastrom/tienda-api/internal/application/dto"
	"github.com/jcastrom/tienda-api/internal/application/usecase"
	"github.com/jcastrom/tienda-api/internal/domain"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
	"github.com/jcastrom/tienda-api/internal/domain/validate"
)

// ProductHandler maneja listado y creación de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        minPrice    query  number  false  "precio mínimo"
// @Param        maxPrice    query  number  false  "precio máximo"
// @Param        supplierId  query  int     false  "filtrar por proveedor"
// @Param        sortBy      query  string  false  "campo de orden"
// @Param        sort        query  string  false  "asc | desc"
// @Param        limit       query  int     false  "máximo de filas"
// @Param        offset      query  int     false  "filas a saltar"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorEnvelope
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	minPrice := c.Query("minPrice")
	maxPrice := c.Query("maxPrice")
	supplierID := c.Query("supplierId")
	sortBy := c.Query("sortBy")
	sort := c.Query("sort")
	limit := c.Query("limit")
	offset := c.Query("offset")

	if res := validate.ProductsQuery(minPrice, maxPrice, supplierID, sortBy, sort, limit, offset); !res.OK() {
		return Error(c, res.Err())
	}
	opts := listing.Parse(sortBy, sort, limit, offset)
	if minPrice != "" {
		d, _ := decimal.NewFromString(minPrice)
		opts = opts.WithGte("price", d)
	}
	if maxPrice != "" {
		d, _ := decimal.NewFromString(maxPrice)
		opts = opts.WithLte("price", d)
	}
	if supplierID != "" {
		opts = opts.WithEq("supplierId", validate.Int(supplierID))
	}
	products, err := h.uc.List(opts)
	if err != nil {
		return Error(c, err)
	}
	return Success(c, fiber.StatusOK, "Products retrieved successfully", len(products), fiber.Map{"products": products})
}

// Create godoc
// @Summary      Crear producto con su stock inicial (solo supplier)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, price, stock"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorEnvelope
// @Failure      404  {object}  dto.ErrorEnvelope
// @Security     BearerAuth
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return Error(c, domain.BadRequest("Request body is invalid"))
	}
	if res := validate.ProductCreation(in.Name, in.Price, in.Stock); !res.OK() {
		return Error(c, res.Err())
	}
	price, err := decimal.NewFromString(in.Price)
	if err != nil {
		return Error(c, domain.BadRequest("Price must be numeric and greater than 500"))
	}
	product, err := h.uc.Create(c.Context(), GetUserID(c), in.Name, price, validate.Int(in.Stock))
	if err != nil {
		return Error(c, err)
	}
	return Success(c, fiber.StatusCreated, "Products created successfully", 1, fiber.Map{"product": product})
}
