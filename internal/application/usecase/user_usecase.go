package usecase

import (
	"context"
	"time"

	"github.com/jcastrom/tienda-api/internal/application/auth"
	"github.com/jcastrom/tienda-api/internal/application/dto"
	"github.com/jcastrom/tienda-api/internal/domain"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
	"github.com/jcastrom/tienda-api/internal/domain/repository"
)

// UserUseCase listado, actualización y borrado en cascada de usuarios.
type UserUseCase struct {
	users  repository.UserRepository
	runner repository.TxRunner
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, runner repository.TxRunner) *UserUseCase {
	return &UserUseCase{users: users, runner: runner}
}

// List lista usuarios según las opciones ya validadas en el borde.
func (uc *UserUseCase) List(opts listing.Options) ([]dto.UserResponse, error) {
	list, err := uc.users.List(opts)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

// Update actualiza nombre y email. Solo el propio usuario puede actualizarse;
// el email no puede chocar con el de otro usuario registrado.
func (uc *UserUseCase) Update(loggedInID, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	target, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		// A diferencia del login (400), el destino ausente de un update es 404.
		return nil, domain.NotFound("This account is not found")
	}
	if loggedInID != target.ID {
		return nil, domain.NotFoundf("Can't update user with ID: %d", target.ID)
	}
	byEmail, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if byEmail != nil && byEmail.ID != target.ID {
		return nil, domain.BadRequest("This email has been already registered with another user")
	}
	target.Name = in.Name
	target.Email = in.Email
	target.UpdatedAt = time.Now()
	if err := uc.users.Update(target); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(target), nil
}

// Delete elimina al usuario y todos sus pedidos en una sola transacción:
// o desaparecen ambos o no desaparece ninguno.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFoundf("User with ID: %d is not found", id)
	}
	err = uc.runner.Run(ctx, func(tx repository.Tx) error {
		if _, err := tx.Orders.DeleteByUserID(id); err != nil {
			return err
		}
		return tx.Users.Delete(id)
	})
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}
