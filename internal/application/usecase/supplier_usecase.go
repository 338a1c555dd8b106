package usecase

import (
	"github.com/jcastrom/tienda-api/internal/application/dto"
	"github.com/jcastrom/tienda-api/internal/domain/entity"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
	"github.com/jcastrom/tienda-api/internal/domain/repository"
)

// SupplierUseCase listado de proveedores.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(suppliers repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers}
}

// List lista proveedores según las opciones ya validadas.
func (uc *SupplierUseCase) List(opts listing.Options) ([]dto.SupplierResponse, error) {
	list, err := uc.suppliers.List(opts)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSupplierResponse(s))
	}
	return items, nil
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Stock:     s.Stock,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
