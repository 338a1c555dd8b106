package usecase

import (
	"github.com/jcastrom/tienda-api/internal/application/dto"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
	"github.com/jcastrom/tienda-api/internal/domain/repository"
)

// StockUseCase listado de stocks.
type StockUseCase struct {
	stocks repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stocks repository.StockRepository) *StockUseCase {
	return &StockUseCase{stocks: stocks}
}

// List lista stocks según las opciones ya validadas (rango de cantidad incluido).
func (uc *StockUseCase) List(opts listing.Options) ([]dto.StockResponse, error) {
	list, err := uc.stocks.List(opts)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.StockResponse{
			ID:        s.ID,
			ProductID: s.ProductID,
			Quantity:  s.Quantity,
			UpdatedAt: s.UpdatedAt,
		})
	}
	return items, nil
}
