package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastrom/tienda-api/internal/application/auth"
	"github.com/jcastrom/tienda-api/internal/application/transfer"
	"github.com/jcastrom/tienda-api/internal/application/usecase"
	"github.com/jcastrom/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	UserUC     *usecase.UserUseCase
	SupplierUC *usecase.SupplierUseCase
	ProductUC  *usecase.ProductUseCase
	StockUC    *usecase.StockUseCase
	OrderUC    *usecase.OrderUseCase
	TransferUC *transfer.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)
	supplierOnly := RequireRole(entity.RoleSupplier)

	// Users (registro, login y listado públicos; el resto protegido)
	userHandler := NewUserHandler(deps.AuthUC, deps.UserUC)
	api.Get("/users", userHandler.List)
	api.Post("/users", userHandler.Register)
	api.Post("/users/login", userHandler.Login)
	api.Put("/users/:id", authRequired, userHandler.Update)
	api.Delete("/users/:id", authRequired, adminOnly, userHandler.Delete)

	// Transferencia de puntos (protegido)
	transferHandler := NewTransferHandler(deps.TransferUC)
	api.Put("/transfer-points", authRequired, transferHandler.TransferPoints)

	// Suppliers (listado público; reabastecimiento solo supplier)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	api.Get("/suppliers", supplierHandler.List)
	api.Put("/suppliers/stock", authRequired, supplierOnly, transferHandler.ReplenishStock)

	// Products (listado público; creación solo supplier)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)
	api.Post("/products", authRequired, supplierOnly, productHandler.Create)

	// Stocks (público)
	stockHandler := NewStockHandler(deps.StockUC)
	api.Get("/stocks", stockHandler.List)

	// Orders (protegido)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := api.Group("/orders", authRequired)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/", orderHandler.Create)
	orders.Delete("/:id", orderHandler.Delete)
}
