package repository

import (
	"github.com/jcastrom/tienda-api/internal/domain/entity"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(opts listing.Options) ([]*entity.User, error)
	Delete(id int64) error
	// GetByIDForUpdate bloquea la fila para update (SELECT FOR UPDATE);
	// solo tiene sentido dentro de una transacción.
	GetByIDForUpdate(id int64) (*entity.User, error)
	// AdjustPoint suma delta (puede ser negativo) al point y devuelve la fila actualizada.
	AdjustPoint(id int64, delta int64) (*entity.User, error)
}
