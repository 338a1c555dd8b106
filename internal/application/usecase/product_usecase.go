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
)

// ProductUseCase creación y listado de productos. El producto y su registro
// Stock nacen juntos en una misma transacción.
type ProductUseCase struct {
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	runner    repository.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
	runner repository.TxRunner,
) *ProductUseCase {
	return &ProductUseCase{products: products, suppliers: suppliers, runner: runner}
}

// Create crea el producto del proveedor autenticado junto con su fila Stock.
func (uc *ProductUseCase) Create(ctx context.Context, supplierID int64, name string, price decimal.Decimal, stock int64) (*dto.ProductResponse, error) {
	supplier, err := uc.suppliers.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.NotFoundf("Supplier with ID: %d is not found", supplierID)
	}
	now := time.Now()
	product := &entity.Product{
		SupplierID: supplierID,
		Name:       name,
		Price:      price,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = uc.runner.Run(ctx, func(tx repository.Tx) error {
		if err := tx.Products.Create(product); err != nil {
			return err
		}
		return tx.Stocks.Create(&entity.Stock{
			ProductID: product.ID,
			Quantity:  stock,
			UpdatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	out.Stock = stock
	return &out, nil
}

// List lista productos según las opciones ya validadas (rango de precio incluido).
func (uc *ProductUseCase) List(opts listing.Options) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(opts)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:         p.ID,
		SupplierID: p.SupplierID,
		Name:       p.Name,
		Price:      p.Price,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
