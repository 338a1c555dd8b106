package repository

import (
	"github.com/jcastrom/tienda-api/internal/domain/entity"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
)

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	// Create inserta el pedido y sus líneas.
	Create(order *entity.Order) error
	GetByID(id int64) (*entity.Order, error)
	List(opts listing.Options) ([]*entity.Order, error)
	Delete(id int64) error
	// DeleteByUserID elimina todos los pedidos del usuario y devuelve cuántos borró.
	DeleteByUserID(userID int64) (int64, error)
}
